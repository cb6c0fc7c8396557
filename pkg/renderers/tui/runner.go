package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	docform "github.com/goliatone/go-docform"
	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/profileurl"
	"github.com/goliatone/go-docform/pkg/submission"
	"github.com/goliatone/go-docform/pkg/validation"
)

// Runner walks a user through a generation form in the terminal: every field
// is prompted, progress is printed as it changes, and the form is submitted
// once all fields were visited.
type Runner struct {
	driver PromptDriver
	out    io.Writer
	theme  Theme
	logger zerolog.Logger
}

// New constructs a runner with defaults (survey driver on stdout).
func New(options ...Option) *Runner {
	r := &Runner{
		theme:  DefaultTheme,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r
}

type drainer interface {
	Drain() []string
}

// Run prompts every field of form, then submits it. When local validation
// blocks the submission, the fields at fault are prompted again for as long
// as the user agrees to correct them; declining returns the validation error
// wrapped with ErrAborted.
func (r *Runner) Run(ctx context.Context, form *docform.Form) (model.GenerationResponse, error) {
	if ctx == nil {
		return model.GenerationResponse{}, errors.New("tui: context is required")
	}
	if form == nil {
		return model.GenerationResponse{}, errors.New("tui: form is required")
	}

	schema := form.Schema()
	if title := strings.TrimSpace(schema.Title); title != "" {
		if err := r.info(ctx, title); err != nil {
			return model.GenerationResponse{}, err
		}
	}
	if err := r.flush(ctx, form); err != nil {
		return model.GenerationResponse{}, err
	}

	ids := schema.FieldIDs()
	for round := 1; ; round++ {
		for _, id := range ids {
			if err := r.promptField(ctx, form, id); err != nil {
				return model.GenerationResponse{}, err
			}
		}

		r.logger.Debug().
			Str("form", string(schema.Type)).
			Int("round", round).
			Msg("submitting from terminal")

		resp, err := form.Submit(ctx)
		if flushErr := r.flush(ctx, form); flushErr != nil {
			return resp, flushErr
		}

		var verr *submission.ValidationError
		if !errors.As(err, &verr) {
			return resp, err
		}

		retry, confirmErr := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Fix the fields above and try again?",
			Default: true,
		})
		if confirmErr != nil {
			return resp, confirmErr
		}
		if !retry {
			return resp, fmt.Errorf("%w: %w", ErrAborted, err)
		}

		ids = validation.FailingFields(schema.Type, form.Values())
		if len(ids) == 0 {
			ids = schema.FieldIDs()
		}
	}
}

func (r *Runner) promptField(ctx context.Context, form *docform.Form, id string) error {
	field, ok := form.View().Field(id)
	if !ok {
		return nil
	}

	switch {
	case field.IsRadioGroup():
		return r.promptChoice(ctx, form, field)
	case field.Kind == model.FieldKindTextArea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptLabel(field),
			Default: field.Value,
		})
		if err != nil {
			return err
		}
		form.View().SetValue(id, value)
		form.HandleInput(id)
	default:
		value, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: field.Value,
		})
		if err != nil {
			return err
		}
		form.View().SetValue(id, value)
		form.HandleInput(id)
		if indicator := form.HandleBlur(id); indicator == profileurl.Negative {
			normalized, _ := form.View().Field(id)
			if err := r.warn(ctx, fmt.Sprintf("%s does not look valid: %s", displayLabel(field), normalized.Value)); err != nil {
				return err
			}
		}
	}
	return r.flush(ctx, form)
}

func (r *Runner) promptChoice(ctx context.Context, form *docform.Form, field model.Field) error {
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      promptLabel(field),
		Options:      field.Options,
		DefaultIndex: max(indexOf(field.Options, field.Value), 0),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return fmt.Errorf("tui: %s: selection %d out of range", field.ID, idx)
	}
	if _, err := form.Choose(field.ID, field.Options[idx]); err != nil {
		return err
	}
	return r.flush(ctx, form)
}

// flush prints whatever the view queued since the last call.
func (r *Runner) flush(ctx context.Context, form *docform.Form) error {
	queue, ok := form.View().(drainer)
	if !ok {
		return nil
	}
	for _, line := range queue.Drain() {
		if err := r.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, prefixed(r.theme.InfoPrefix, msg))
}

func (r *Runner) warn(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, prefixed(r.theme.ErrorPrefix, msg))
}

func prefixed(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	return prefix + " " + msg
}

func displayLabel(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.ID
}

func promptLabel(field model.Field) string {
	label := displayLabel(field)
	if field.Required {
		label += " *"
	}
	return label
}
