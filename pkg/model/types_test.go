package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testSchema() FormSchema {
	return FormSchema{
		Type: FormTypeResume,
		Fields: []Field{
			{ID: "name", Kind: FieldKindText, Required: true},
			{ID: "email", Kind: FieldKindEmail, Required: true},
			{ID: "template", Kind: FieldKindRadioGroup, Options: []string{"modern", "classic"}},
		},
	}
}

func TestFieldFilled(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		want  bool
	}{
		{"blank text", Field{Kind: FieldKindText, Value: "   "}, false},
		{"text", Field{Kind: FieldKindText, Value: " a "}, true},
		{"unchecked radio", Field{Kind: FieldKindRadioGroup}, false},
		{"checked radio", Field{Kind: FieldKindRadioGroup, Value: "modern"}, true},
	}
	for _, tc := range cases {
		if got := tc.field.Filled(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestFormSchemaBind(t *testing.T) {
	got, err := testSchema().Bind(map[string]string{"name": " Jane ", "template": "classic"})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	want := map[string]string{"name": " Jane ", "email": "", "template": "classic"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bind mismatch (-want +got):\n%s", diff)
	}
}

func TestFormSchemaBindRejectsUnknownField(t *testing.T) {
	_, err := testSchema().Bind(map[string]string{"name": "Jane", "zeta": "x", "alpha": "y"})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if want := "model: unknown field: alpha, zeta"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestFormSchemaBindRejectsInvalidOption(t *testing.T) {
	_, err := testSchema().Bind(map[string]string{"template": "baroque"})
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestFormSchemaRequiredIDs(t *testing.T) {
	if diff := cmp.Diff([]string{"name", "email"}, testSchema().RequiredIDs()); diff != "" {
		t.Fatalf("required ids mismatch (-want +got):\n%s", diff)
	}
}
