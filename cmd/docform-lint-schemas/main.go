package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-docform/pkg/contract"
	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/profileurl"
	"github.com/goliatone/go-docform/pkg/schema"
	"github.com/goliatone/go-docform/pkg/validation"
)

type violation struct {
	form     model.FormType
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [schema-dir]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint form schemas against the validators and the generation contract.\nWithout a directory the embedded schemas are linted.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	var fsys fs.FS = schema.EmbeddedFS()
	if dir := flag.Arg(0); dir != "" {
		fsys = os.DirFS(dir)
	}

	store, err := schema.LoadFS(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load schemas: %v\n", err)
		os.Exit(1)
	}

	c, err := contract.Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load contract: %v\n", err)
		os.Exit(1)
	}

	var violations []violation
	for _, formType := range store.Types() {
		form, _ := store.Form(formType)
		violations = append(violations, lintForm(c, form)...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].form == violations[j].form {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].form < violations[j].form
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.form, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintForm(c *contract.Contract, form model.FormSchema) []violation {
	var result []violation
	report := func(location, message string) {
		result = append(result, violation{form: form.Type, location: location, message: message})
	}

	if _, err := c.ForForm(form.Type); err != nil {
		report("contract", err.Error())
	}

	for _, id := range checkedFields(form.Type) {
		field, ok := form.Field(id)
		if !ok {
			report("fields > "+id, "validated field is not declared")
			continue
		}
		if !field.Required && isRequiredByValidator(form.Type, id) {
			report("fields > "+id, "validator requires the field but the schema does not mark it required")
		}
	}

	for _, field := range form.Fields {
		if _, ok := profileurl.ServiceFor(field.ID); ok && field.Kind != model.FieldKindURL {
			report("fields > "+field.ID, fmt.Sprintf("profile link must be a url field, found %q", field.Kind))
		}
	}

	if len(form.Tracked) == 0 && len(form.RequiredIDs()) == 0 {
		report("tracked", "no tracked or required fields: progress would stay at 0%")
	}
	return result
}

func checkedFields(formType model.FormType) []string {
	switch formType {
	case model.FormTypeResume:
		ids := make([]string, 0, len(validation.ResumeRules))
		for _, rule := range validation.ResumeRules {
			ids = append(ids, rule.Field)
		}
		return ids
	case model.FormTypeCoverLetter:
		return validation.CoverLetterRequired
	default:
		return nil
	}
}

func isRequiredByValidator(formType model.FormType, id string) bool {
	switch formType {
	case model.FormTypeResume:
		for _, rule := range validation.ResumeRules {
			if rule.Field == id {
				return rule.Required()
			}
		}
	case model.FormTypeCoverLetter:
		for _, required := range validation.CoverLetterRequired {
			if required == id {
				return true
			}
		}
	}
	return false
}
