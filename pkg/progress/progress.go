package progress

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/view"
)

// Status messages and colors written to the progress text element.
const (
	ReadyMessage = "Ready to generate! ✨"
	ReadyColor   = "#4CAF50"
	PendingColor = "#666"
)

// Compute counts the filled fields of the tracked set. An empty set reports
// 0% rather than dividing by zero.
func Compute(tracked []model.Field) model.FormProgress {
	p := model.FormProgress{Total: len(tracked)}
	for _, field := range tracked {
		if field.Filled() {
			p.Filled++
		}
	}
	if p.Total == 0 {
		return p
	}
	p.Percentage = 100 * float64(p.Filled) / float64(p.Total)
	return p
}

// StatusMessage renders the text shown under the progress bar.
func StatusMessage(p model.FormProgress) string {
	if p.Complete() {
		return ReadyMessage
	}
	return fmt.Sprintf("Complete your information (%d%% done)", int(math.Round(p.Percentage)))
}

// Policy selects which fields count toward completion.
type Policy interface {
	Tracked(form model.FormSchema) []string
}

// PolicyFunc adapts a function into a Policy.
type PolicyFunc func(form model.FormSchema) []string

// Tracked delegates to the underlying function.
func (fn PolicyFunc) Tracked(form model.FormSchema) []string {
	return fn(form)
}

// TrackAllowlist tracks the given ids regardless of their required flag.
func TrackAllowlist(ids ...string) Policy {
	list := append([]string(nil), ids...)
	return PolicyFunc(func(model.FormSchema) []string {
		return list
	})
}

// TrackRequired tracks exactly the fields marked required.
func TrackRequired() Policy {
	return PolicyFunc(func(form model.FormSchema) []string {
		return form.RequiredIDs()
	})
}

// PolicyFor returns the policy a schema declares: its allowlist when it has
// one, its required fields otherwise.
func PolicyFor(form model.FormSchema) Policy {
	if len(form.Tracked) > 0 {
		return TrackAllowlist(form.Tracked...)
	}
	return TrackRequired()
}

// Tracker recomputes and renders the completion of one form.
type Tracker struct {
	form   model.FormSchema
	policy Policy
	view   view.View
	logger zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithPolicy overrides the tracked-field policy.
func WithPolicy(policy Policy) Option {
	return func(t *Tracker) {
		if policy != nil {
			t.policy = policy
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker builds a tracker for the form rendered on v.
func NewTracker(form model.FormSchema, v view.View, opts ...Option) *Tracker {
	t := &Tracker{
		form:   form,
		policy: PolicyFor(form),
		view:   v,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// Fields re-reads the tracked fields from the view. The tracked set is
// resolved on every call so a policy may change it between events.
func (t *Tracker) Fields() []model.Field {
	ids := t.policy.Tracked(t.form)
	fields := make([]model.Field, 0, len(ids))
	for _, id := range ids {
		field, ok := t.view.Field(id)
		if !ok {
			// Declared but absent from the page: counts as an empty field.
			field, _ = t.form.Field(id)
			field.ID = id
			field.Value = ""
		}
		fields = append(fields, field)
	}
	return fields
}

// Refresh recomputes the percentage and updates the fill and status message.
// It is the handler for every input and change event of the form.
func (t *Tracker) Refresh() model.FormProgress {
	p := Compute(t.Fields())

	t.view.SetStyle(view.ProgressFill, view.StyleWidth, strconv.FormatFloat(p.Percentage, 'f', -1, 64)+"%")
	t.view.SetText(view.ProgressText, StatusMessage(p))
	if p.Complete() {
		t.view.SetStyle(view.ProgressText, view.StyleColor, ReadyColor)
	} else {
		t.view.SetStyle(view.ProgressText, view.StyleColor, PendingColor)
	}

	t.logger.Debug().
		Str("form", string(t.form.Type)).
		Int("filled", p.Filled).
		Int("total", p.Total).
		Float64("percentage", p.Percentage).
		Msg("progress refreshed")
	return p
}
