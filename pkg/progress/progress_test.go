package progress

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/schema"
	"github.com/goliatone/go-docform/pkg/view"
)

func TestComputeBounds(t *testing.T) {
	sets := [][]model.Field{
		nil,
		{{Kind: model.FieldKindText}},
		{{Kind: model.FieldKindText, Value: "x"}},
		{{Kind: model.FieldKindText, Value: " "}, {Kind: model.FieldKindRadioGroup, Value: "modern"}},
		{{Kind: model.FieldKindText, Value: "a"}, {Kind: model.FieldKindRadioGroup, Value: "1"}, {Kind: model.FieldKindTextArea, Value: "b"}},
	}
	for i, set := range sets {
		p := Compute(set)
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Fatalf("set %d: percentage %v out of bounds", i, p.Percentage)
		}
		allFilled := len(set) > 0
		for _, f := range set {
			allFilled = allFilled && f.Filled()
		}
		if (p.Percentage == 100) != allFilled {
			t.Fatalf("set %d: percentage %v but allFilled=%v", i, p.Percentage, allFilled)
		}
	}
}

func TestComputeEmptySetIsZero(t *testing.T) {
	if diff := cmp.Diff(model.FormProgress{}, Compute(nil)); diff != "" {
		t.Fatalf("empty set mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusMessage(t *testing.T) {
	cases := []struct {
		p    model.FormProgress
		want string
	}{
		{model.FormProgress{Filled: 7, Total: 7, Percentage: 100}, ReadyMessage},
		{model.FormProgress{Filled: 3, Total: 7, Percentage: 300.0 / 7}, "Complete your information (43% done)"},
		{model.FormProgress{Filled: 1, Total: 6, Percentage: 100.0 / 6}, "Complete your information (17% done)"},
		{model.FormProgress{}, "Complete your information (0% done)"},
	}
	for _, tc := range cases {
		if got := StatusMessage(tc.p); got != tc.want {
			t.Fatalf("StatusMessage(%+v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestResumeTrackerUsesAllowlist(t *testing.T) {
	form, err := schema.For(model.FormTypeResume)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	v := view.NewMemory(form)
	tracker := NewTracker(form, v)

	// Optional fields never move the needle for the resume form.
	v.SetValue("phone", "555-0100")
	if p := tracker.Refresh(); p.Filled != 0 || p.Total != 7 {
		t.Fatalf("unexpected progress %+v", p)
	}

	for id, value := range map[string]string{
		"name": "Jane", "email": "jane@example.com", "job_title": "Engineer",
		"experience": "Ten years", "skills": "Go",
	} {
		v.SetValue(id, value)
	}
	v.SetValue("template", "modern")
	p := tracker.Refresh()
	if p.Filled != 6 {
		t.Fatalf("expected 6 filled, got %+v", p)
	}
	if got := v.Text(view.ProgressText); got != "Complete your information (86% done)" {
		t.Fatalf("unexpected status %q", got)
	}
	if got := v.Style(view.ProgressText, view.StyleColor); got != PendingColor {
		t.Fatalf("unexpected color %q", got)
	}

	v.SetValue("page_limit", "1")
	p = tracker.Refresh()
	if !p.Complete() || p.Percentage != 100 {
		t.Fatalf("expected complete, got %+v", p)
	}
	if got := v.Style(view.ProgressFill, view.StyleWidth); got != "100%" {
		t.Fatalf("unexpected fill width %q", got)
	}
	if got := v.Text(view.ProgressText); got != ReadyMessage {
		t.Fatalf("unexpected status %q", got)
	}
	if got := v.Style(view.ProgressText, view.StyleColor); got != ReadyColor {
		t.Fatalf("unexpected color %q", got)
	}
}

func TestCoverLetterTrackerUsesRequiredFields(t *testing.T) {
	form, err := schema.For(model.FormTypeCoverLetter)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	v := view.NewMemory(form)
	tracker := NewTracker(form, v)

	v.SetValue("interest", "I like it")
	v.SetValue("name", "Jane")
	v.SetValue("company", "   ")
	p := tracker.Refresh()
	if p.Filled != 1 || p.Total != 6 {
		t.Fatalf("unexpected progress %+v", p)
	}
	if got := v.Style(view.ProgressFill, view.StyleWidth); got != "16.666666666666668%" {
		t.Fatalf("unexpected fill width %q", got)
	}
}

func TestTrackerPolicyOverride(t *testing.T) {
	form := model.FormSchema{Fields: []model.Field{
		{ID: "a", Kind: model.FieldKindText, Required: true},
		{ID: "b", Kind: model.FieldKindText},
	}}
	v := view.NewMemory(form)
	v.SetValue("b", "x")

	tracker := NewTracker(form, v, WithPolicy(TrackAllowlist("b", "ghost")))
	p := tracker.Refresh()
	if p.Filled != 1 || p.Total != 2 {
		t.Fatalf("unexpected progress %+v", p)
	}
}
