package validation

import (
	"strings"

	"github.com/goliatone/go-docform/pkg/model"
)

// ResumeRules is the fixed, ordered rule list of the resume form.
var ResumeRules = []Rule{
	{Field: "name", Tag: "required,min=2", Trim: true, Message: "Name must be at least 2 characters long"},
	{Field: "email", Tag: "required,simpleemail", Message: "Please enter a valid email address"},
	{Field: "job_title", Tag: "required,min=2", Message: "Job title is required"},
	{Field: "experience", Tag: "required,min=20", Message: "Please provide detailed work experience (at least 20 characters)"},
	{Field: "skills", Tag: "required,min=10", Message: "Please list your skills (at least 10 characters)"},
	{Field: "linkedin", Tag: "omitempty,linkedin", Message: "Please enter a valid LinkedIn URL"},
	{Field: "github", Tag: "omitempty,github", Message: "Please enter a valid GitHub URL"},
	{Field: "portfolio", Tag: "omitempty,portfolio", Message: "Please enter a valid portfolio URL"},
}

// CoverLetterRequired lists the fields the cover letter form needs before it
// can be submitted.
var CoverLetterRequired = []string{"name", "email", "company", "position", "experience", "skills"}

// Resume applies the resume rules: length thresholds on the core fields and
// profile checks on whichever links are filled in.
func Resume(data map[string]string) Result {
	return Run(data, ResumeRules)
}

// CoverLetter checks that the required fields are non-blank, reported as a
// single message naming every missing field. The email shape is only checked
// once nothing is missing. No length thresholds apply to this form.
func CoverLetter(data map[string]string) Result {
	var missing []string
	for _, field := range CoverLetterRequired {
		if strings.TrimSpace(data[field]) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return Result{"Please fill in all required fields: " + strings.Join(missing, ", ")}
	}
	if !IsValidEmail(data["email"]) {
		return Result{"Please enter a valid email address"}
	}
	return nil
}

// FailingFields returns the ids of the fields the validator of formType
// objects to, in rule order. Unknown form types report nothing.
func FailingFields(formType model.FormType, data map[string]string) []string {
	var ids []string
	switch formType {
	case model.FormTypeResume:
		for _, rule := range ResumeRules {
			if _, ok := rule.check(data); !ok {
				ids = append(ids, rule.Field)
			}
		}
	case model.FormTypeCoverLetter:
		for _, field := range CoverLetterRequired {
			if strings.TrimSpace(data[field]) == "" {
				ids = append(ids, field)
			}
		}
		if len(ids) == 0 && !IsValidEmail(data["email"]) {
			ids = append(ids, "email")
		}
	}
	return ids
}
