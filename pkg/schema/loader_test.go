package schema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docform/pkg/model"
)

func TestEmbeddedResumeSchema(t *testing.T) {
	form, err := For(model.FormTypeResume)
	if err != nil {
		t.Fatalf("load resume schema: %v", err)
	}

	wantTracked := []string{"name", "email", "job_title", "experience", "skills", "template", "page_limit"}
	if diff := cmp.Diff(wantTracked, form.Tracked); diff != "" {
		t.Fatalf("tracked mismatch (-want +got):\n%s", diff)
	}

	template, ok := form.Field("template")
	if !ok {
		t.Fatalf("expected template field")
	}
	if !template.IsRadioGroup() || len(template.Options) != 4 {
		t.Fatalf("unexpected template field: %#v", template)
	}
	if linkedin, _ := form.Field("linkedin"); linkedin.Kind != model.FieldKindURL {
		t.Fatalf("expected linkedin to be a url field, got %q", linkedin.Kind)
	}
}

func TestEmbeddedCoverLetterSchema(t *testing.T) {
	form, err := For(model.FormTypeCoverLetter)
	if err != nil {
		t.Fatalf("load cover letter schema: %v", err)
	}
	want := []string{"name", "email", "company", "position", "experience", "skills"}
	if diff := cmp.Diff(want, form.RequiredIDs()); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if len(form.Tracked) != 0 {
		t.Fatalf("cover letter tracks required fields, got allowlist %v", form.Tracked)
	}
	for _, id := range []string{"job_description", "interest"} {
		if _, ok := form.Field(id); !ok {
			t.Fatalf("expected cover letter field %q", id)
		}
	}
	for _, id := range []string{"linkedin", "github", "portfolio"} {
		if field, _ := form.Field(id); field.Kind != model.FieldKindURL {
			t.Fatalf("expected %s to be a url field, got %q", id, field.Kind)
		}
	}
}

func TestForUnknownFormType(t *testing.T) {
	if _, err := For("invoice"); err == nil {
		t.Fatalf("expected error for unknown form type")
	}
}

func TestLoadFSRejectsBadSchemas(t *testing.T) {
	cases := map[string]string{
		"duplicate field": "type: x\nfields:\n  - {id: a, kind: text}\n  - {id: a, kind: text}\n",
		"unknown kind":    "type: x\nfields:\n  - {id: a, kind: checkbox}\n",
		"empty radio":     "type: x\nfields:\n  - {id: a, kind: radio-group}\n",
		"bad tracked":     "type: x\ntracked: [b]\nfields:\n  - {id: a, kind: text}\n",
		"missing type":    "fields:\n  - {id: a, kind: text}\n",
	}
	for name, body := range cases {
		fsys := fstest.MapFS{"form.yaml": {Data: []byte(body)}}
		if _, err := LoadFS(fsys); err == nil {
			t.Fatalf("%s: expected error", name)
		} else if !strings.HasPrefix(err.Error(), "schema:") {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
	}
}

func TestLoadFSIgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md": {Data: []byte("# forms")},
		"a.yml":     {Data: []byte("type: a\nfields:\n  - {id: x, kind: text}\n")},
	}
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := store.Form("a"); !ok {
		t.Fatalf("expected form a to be loaded")
	}
}

func TestStoreTypes(t *testing.T) {
	store, err := Default()
	if err != nil {
		t.Fatalf("default store: %v", err)
	}
	want := []model.FormType{model.FormTypeCoverLetter, model.FormTypeResume}
	if diff := cmp.Diff(want, store.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	var empty *Store
	if got := empty.Types(); got != nil {
		t.Fatalf("nil store types = %v", got)
	}
}
