package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docform/pkg/model"
)

func validResume() map[string]string {
	return map[string]string{
		"name":       "Jane Doe",
		"email":      "jane@example.com",
		"job_title":  "Engineer",
		"experience": "Ten years building distributed systems",
		"skills":     "Go, Kubernetes",
	}
}

func TestResumeScenarioOrderedMessages(t *testing.T) {
	got := Resume(map[string]string{
		"name":       "Jo",
		"email":      "bad",
		"job_title":  "",
		"experience": "abcd",
		"skills":     "",
	})
	want := Result{
		"Please enter a valid email address",
		"Job title is required",
		"Please provide detailed work experience (at least 20 characters)",
		"Please list your skills (at least 10 characters)",
	}
	// "Jo" meets the two character minimum, so the name rule passes.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestResumeScenarioFiveMessages(t *testing.T) {
	got := Resume(map[string]string{
		"name":       "J",
		"email":      "bad",
		"job_title":  "",
		"experience": "abcd",
		"skills":     "",
	})
	want := Result{
		"Name must be at least 2 characters long",
		"Please enter a valid email address",
		"Job title is required",
		"Please provide detailed work experience (at least 20 characters)",
		"Please list your skills (at least 10 characters)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestResumeAllRulesFail(t *testing.T) {
	got := Resume(map[string]string{
		"name":       " J ",
		"email":      "bad",
		"experience": "short",
		"skills":     "go",
		"linkedin":   "jane",
		"github":     "https://gitlab.com/jane",
		"portfolio":  "jane.dev",
	})
	want := Result{
		"Name must be at least 2 characters long",
		"Please enter a valid email address",
		"Job title is required",
		"Please provide detailed work experience (at least 20 characters)",
		"Please list your skills (at least 10 characters)",
		"Please enter a valid LinkedIn URL",
		"Please enter a valid GitHub URL",
		"Please enter a valid portfolio URL",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	seen := map[string]bool{}
	for _, msg := range got {
		if seen[msg] {
			t.Fatalf("duplicate message %q", msg)
		}
		seen[msg] = true
	}
}

func TestResumeValid(t *testing.T) {
	data := validResume()
	data["linkedin"] = "https://linkedin.com/in/janedoe"
	data["github"] = "https://github.com/janedoe"
	data["portfolio"] = "https://jane.dev"
	if got := Resume(data); !got.Valid() {
		t.Fatalf("expected valid resume, got %v", got)
	}
}

func TestResumeLengthsCountCharacters(t *testing.T) {
	data := validResume()
	data["name"] = "Zoë"
	data["skills"] = "Go, Rust ✓"
	if got := Resume(data); !got.Valid() {
		t.Fatalf("expected valid resume, got %v", got)
	}
}

func TestResumeLengthsKeepSurroundingWhitespace(t *testing.T) {
	data := validResume()
	data["job_title"] = " J"
	data["experience"] = "     fifteen chars!!"
	data["skills"] = "   Go, Rust"
	if got := Resume(data); !got.Valid() {
		t.Fatalf("expected padded values at the thresholds to pass, got %v", got)
	}

	data["experience"] = "    fifteen chars!!"
	data["skills"] = " Go, Rust"
	want := Result{
		"Please provide detailed work experience (at least 20 characters)",
		"Please list your skills (at least 10 characters)",
	}
	if diff := cmp.Diff(want, Resume(data)); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverLetterValid(t *testing.T) {
	got := CoverLetter(map[string]string{
		"name": "Jane", "email": "jane@example.com", "company": "Acme",
		"position": "Engineer", "experience": "Some", "skills": "Go",
	})
	if !got.Valid() {
		t.Fatalf("expected valid cover letter, got %v", got)
	}
}

func TestCoverLetterMissingFieldsHideEmailShape(t *testing.T) {
	got := CoverLetter(map[string]string{
		"name": "Jane", "email": "nope", "company": "  ", "experience": "x",
	})
	want := Result{"Please fill in all required fields: company, position, skills"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverLetterInvalidEmail(t *testing.T) {
	got := CoverLetter(map[string]string{
		"name": "Jane", "email": "nope", "company": "Acme",
		"position": "Engineer", "experience": "x", "skills": "y",
	})
	want := Result{"Please enter a valid email address"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverLetterMissingEmailReportedOnce(t *testing.T) {
	got := CoverLetter(map[string]string{
		"name": "Jane", "company": "Acme", "position": "Dev", "experience": "x", "skills": "y",
	})
	want := Result{"Please fill in all required fields: email"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestResultSummary(t *testing.T) {
	r := Result{"a", "b"}
	if got, want := r.Summary(), "Please fix the following errors:\n• a\n• b"; got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
	if Result(nil).Summary() != "" {
		t.Fatalf("empty result has no summary")
	}
}

func TestRunDropsDuplicateMessages(t *testing.T) {
	rules := []Rule{
		{Field: "a", Tag: "required", Message: "Fill in a or b"},
		{Field: "b", Tag: "required", Message: "Fill in a or b"},
	}
	if got := Run(map[string]string{}, rules); len(got) != 1 {
		t.Fatalf("expected one message, got %v", got)
	}
}

func TestFor(t *testing.T) {
	fn, err := For(model.FormTypeCoverLetter)
	if err != nil || fn == nil {
		t.Fatalf("expected cover letter validator, got %v", err)
	}
	if _, err := For("invoice"); !errors.Is(err, model.ErrUnknownFormType) {
		t.Fatalf("expected ErrUnknownFormType, got %v", err)
	}
}

func TestIsValidEmail(t *testing.T) {
	for value, want := range map[string]bool{
		"jane@example.com": true,
		"a@b.c":            true,
		"jane@example":     false,
		"jane example.com": false,
		" jane@x.io":       false,
		"aaa@@x.io":        false,
	} {
		if got := IsValidEmail(value); got != want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestFailingFields(t *testing.T) {
	resume := validResume()
	resume["name"] = "J"
	resume["github"] = "not a url"
	if diff := cmp.Diff([]string{"name", "github"}, FailingFields(model.FormTypeResume, resume)); diff != "" {
		t.Fatalf("resume failing fields mismatch (-want +got):\n%s", diff)
	}

	cover := map[string]string{"name": "Jane", "email": "jane@", "company": "Acme"}
	want := []string{"position", "experience", "skills"}
	if diff := cmp.Diff(want, FailingFields(model.FormTypeCoverLetter, cover)); diff != "" {
		t.Fatalf("cover letter failing fields mismatch (-want +got):\n%s", diff)
	}
	cover["position"], cover["experience"], cover["skills"] = "Dev", "x", "y"
	if diff := cmp.Diff([]string{"email"}, FailingFields(model.FormTypeCoverLetter, cover)); diff != "" {
		t.Fatalf("cover letter email mismatch (-want +got):\n%s", diff)
	}

	if got := FailingFields("invoice", resume); got != nil {
		t.Fatalf("unknown form type: got %v", got)
	}
}

func TestRuleRequired(t *testing.T) {
	required := 0
	for _, rule := range ResumeRules {
		if rule.Required() {
			required++
		}
	}
	if required != 5 {
		t.Fatalf("expected 5 required resume rules, got %d", required)
	}
	if (Rule{Tag: "omitempty,linkedin"}).Required() {
		t.Fatalf("optional rule reported as required")
	}
}
