package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docform/pkg/model"
)

// Store holds the form schemas keyed by form type.
type Store struct {
	forms map[model.FormType]model.FormSchema
}

// LoadFS walks the provided filesystem and parses every YAML form schema.
// When fsys is nil the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[model.FormType]model.FormSchema)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		form, err := parseForm(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.forms[form.Type]; exists {
			return fmt.Errorf("schema: duplicate form type %q (file %s)", form.Type, path)
		}
		store.forms[form.Type] = form
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the schema registered for the given form type.
func (s *Store) Form(formType model.FormType) (model.FormSchema, bool) {
	if s == nil {
		return model.FormSchema{}, false
	}
	form, ok := s.forms[formType]
	return form, ok
}

// Types returns the registered form types in lexical order.
func (s *Store) Types() []model.FormType {
	if s == nil {
		return nil
	}
	types := make([]model.FormType, 0, len(s.forms))
	for formType := range s.forms {
		types = append(types, formType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded schemas.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultStore, defaultErr
}

// For returns the embedded schema for a form type.
func For(formType model.FormType) (model.FormSchema, error) {
	store, err := Default()
	if err != nil {
		return model.FormSchema{}, err
	}
	form, ok := store.Form(formType)
	if !ok {
		return model.FormSchema{}, fmt.Errorf("%w: %q", model.ErrUnknownFormType, formType)
	}
	return form, nil
}

func parseForm(data []byte, source string) (model.FormSchema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.FormSchema{}, fmt.Errorf("schema: file %s is empty", source)
	}

	var form model.FormSchema
	if err := yaml.Unmarshal(data, &form); err != nil {
		return model.FormSchema{}, fmt.Errorf("schema: parse %s: %w", source, err)
	}
	if err := check(form, source); err != nil {
		return model.FormSchema{}, err
	}
	return form, nil
}

func check(form model.FormSchema, source string) error {
	if strings.TrimSpace(string(form.Type)) == "" {
		return fmt.Errorf("schema: file %s does not declare a form type", source)
	}

	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		id := strings.TrimSpace(field.ID)
		if id == "" {
			return fmt.Errorf("schema: form %q (file %s) has a field without id", form.Type, source)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("schema: form %q (file %s) defines duplicate field %q", form.Type, source, id)
		}
		seen[id] = struct{}{}

		switch field.Kind {
		case model.FieldKindText, model.FieldKindTextArea, model.FieldKindEmail, model.FieldKindURL:
		case model.FieldKindRadioGroup:
			if len(field.Options) == 0 {
				return fmt.Errorf("schema: form %q (file %s) radio group %q has no options", form.Type, source, id)
			}
		default:
			return fmt.Errorf("schema: form %q (file %s) field %q has unknown kind %q", form.Type, source, id, field.Kind)
		}
	}

	for _, id := range form.Tracked {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("schema: form %q (file %s) tracks undeclared field %q", form.Type, source, id)
		}
	}
	return nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
