package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FieldKind is the simplified enum for the inputs a generation form carries.
type FieldKind string

const (
	FieldKindText       FieldKind = "text"
	FieldKindTextArea   FieldKind = "textarea"
	FieldKindEmail      FieldKind = "email"
	FieldKindURL        FieldKind = "url"
	FieldKindRadioGroup FieldKind = "radio-group"
)

// FormType identifies which generation form a schema, validator or controller
// belongs to.
type FormType string

const (
	FormTypeResume      FormType = "resume"
	FormTypeCoverLetter FormType = "cover_letter"
)

var (
	// ErrUnknownField is returned by Bind when raw input names a field the
	// schema does not declare.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrInvalidOption is returned by Bind when a radio group value is not one
	// of the declared options.
	ErrInvalidOption = errors.New("model: invalid option")
	// ErrUnknownFormType is returned when a form type has no registered schema.
	ErrUnknownFormType = errors.New("model: unknown form type")
)

// Field models an individual input inside a generation form. For radio groups
// Value holds the checked option, or "" when nothing is checked.
type Field struct {
	ID       string    `json:"id" yaml:"id"`
	Kind     FieldKind `json:"kind" yaml:"kind"`
	Value    string    `json:"value,omitempty" yaml:"-"`
	Required bool      `json:"required" yaml:"required"`
	Label    string    `json:"label,omitempty" yaml:"label"`
	Options  []string  `json:"options,omitempty" yaml:"options"`
}

// IsRadioGroup reports whether the field is a group of radio buttons sharing
// one name.
func (f Field) IsRadioGroup() bool {
	return f.Kind == FieldKindRadioGroup
}

// Filled reports whether the field counts as completed: a radio group needs a
// checked option, anything else needs a non-blank value.
func (f Field) Filled() bool {
	if f.IsRadioGroup() {
		return f.Value != ""
	}
	return strings.TrimSpace(f.Value) != ""
}

// HasOption reports whether value is one of the radio group options.
func (f Field) HasOption(value string) bool {
	for _, option := range f.Options {
		if option == value {
			return true
		}
	}
	return false
}

// FormSchema is the explicit field declaration for one form type.
type FormSchema struct {
	Type    FormType `json:"type" yaml:"type"`
	Title   string   `json:"title,omitempty" yaml:"title"`
	Noun    string   `json:"noun,omitempty" yaml:"noun"`
	Fields  []Field  `json:"fields" yaml:"fields"`
	Tracked []string `json:"tracked,omitempty" yaml:"tracked"`
}

// Field returns the declared field with the given id.
func (s FormSchema) Field(id string) (Field, bool) {
	for _, field := range s.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// FieldIDs returns the declared field ids in schema order.
func (s FormSchema) FieldIDs() []string {
	ids := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		ids = append(ids, field.ID)
	}
	return ids
}

// RequiredIDs returns the ids of fields marked required, in schema order.
func (s FormSchema) RequiredIDs() []string {
	var ids []string
	for _, field := range s.Fields {
		if field.Required {
			ids = append(ids, field.ID)
		}
	}
	return ids
}

// Bind checks raw input against the schema. The result carries every declared
// field (missing keys map to ""), values are kept verbatim. Unknown keys and
// radio values outside the declared options are rejected.
func (s FormSchema) Bind(raw map[string]string) (map[string]string, error) {
	var unknown []string
	for key := range raw {
		if _, ok := s.Field(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	out := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		value := raw[field.ID]
		if field.IsRadioGroup() && value != "" && !field.HasOption(value) {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidOption, field.ID, value)
		}
		out[field.ID] = value
	}
	return out, nil
}

// FormProgress is the derived completion state of a form. Percentage is
// always within [0, 100].
type FormProgress struct {
	Filled     int     `json:"filled"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Complete reports whether every tracked field is filled.
func (p FormProgress) Complete() bool {
	return p.Total > 0 && p.Filled == p.Total
}
