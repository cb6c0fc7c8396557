package submission

import (
	"context"
	"errors"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-docform/pkg/client"
	"github.com/goliatone/go-docform/pkg/contract"
	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/validation"
	"github.com/goliatone/go-docform/pkg/view"
)

// Controller drives validate → submit → render/report for one form instance.
// It owns the form's SubmissionState; nothing else mutates it.
type Controller struct {
	mu    sync.Mutex
	state State

	form      model.FormSchema
	endpoint  contract.Endpoint
	generator client.Generator
	validate  validation.Func
	view      view.View
	logger    zerolog.Logger
	hook      TransitionHook
	sanitizer *bluemonday.Policy
}

// Option configures a Controller.
type Option func(*Controller)

// WithGenerator sets the transport used for the generation request.
func WithGenerator(g client.Generator) Option {
	return func(c *Controller) {
		c.generator = g
	}
}

// WithView sets the surface the controller renders to.
func WithView(v view.View) Option {
	return func(c *Controller) {
		c.view = v
	}
}

// WithValidator overrides the validator derived from the form type.
func WithValidator(fn validation.Func) Option {
	return func(c *Controller) {
		if fn != nil {
			c.validate = fn
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithTransitionHook registers an observer of state changes.
func WithTransitionHook(hook TransitionHook) Option {
	return func(c *Controller) {
		c.hook = hook
	}
}

// New builds the controller of one form. A generator and a view are
// required; the validator defaults to the one registered for the form type.
func New(form model.FormSchema, endpoint contract.Endpoint, opts ...Option) (*Controller, error) {
	c := &Controller{
		state:     Idle,
		form:      form,
		endpoint:  endpoint,
		logger:    zerolog.Nop(),
		sanitizer: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.generator == nil {
		return nil, errors.New("submission: generator is required")
	}
	if c.view == nil {
		return nil, errors.New("submission: view is required")
	}
	if c.validate == nil {
		fn, err := validation.For(form.Type)
		if err != nil {
			return nil, err
		}
		c.validate = fn
	}
	return c, nil
}

// State reports the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates data and, when it is valid, issues exactly one generation
// request. Validation failures leave the controller Idle and never reach the
// network. Whatever happens after the request is issued, the trigger control
// is re-enabled and its label restored before Submit returns, and the
// controller re-arms to Idle.
//
// No timeout is applied: a request that never resolves keeps the controller
// in Submitting unless ctx carries a deadline.
func (c *Controller) Submit(ctx context.Context, data map[string]string) (model.GenerationResponse, error) {
	payload, err := c.begin(data)
	if err != nil {
		return model.GenerationResponse{}, err
	}
	defer c.finalize()

	resp, err := c.generator.Generate(ctx, c.endpoint, model.GenerationRequest(payload))
	if err != nil {
		return resp, c.fail(err.Error(), err)
	}
	if !resp.Success {
		message := strings.TrimSpace(resp.Error)
		if message == "" {
			message = "Failed to generate " + c.noun()
		}
		return resp, c.fail(message, nil)
	}

	c.render(resp)
	c.transition(Succeeded)
	c.logger.Info().
		Str("form", string(c.form.Type)).
		Str("download_url", resp.DownloadURL).
		Msg("document generated")
	return resp, nil
}

// begin runs the synchronous part of a submission: the in-flight guard, the
// schema boundary check, validation, and the switch to the loading state.
func (c *Controller) begin(data map[string]string) (map[string]string, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		c.logger.Warn().Str("form", string(c.form.Type)).Msg("submission dropped: request in flight")
		return nil, ErrSubmissionInFlight
	}

	c.view.SetVisible(view.Alert, false)

	payload, err := c.form.Bind(data)
	if err != nil {
		c.mu.Unlock()
		result := validation.Result{err.Error()}
		c.alert(result.Summary())
		return nil, &ValidationError{Messages: result, Err: err}
	}
	if result := c.validate(payload); !result.Valid() {
		c.mu.Unlock()
		c.alert(result.Summary())
		c.logger.Debug().
			Str("form", string(c.form.Type)).
			Strs("errors", result).
			Msg("submission blocked by validation")
		return nil, &ValidationError{Messages: result}
	}

	from := c.state
	c.state = Submitting
	c.view.SetEnabled(view.TriggerControl, false)
	c.view.SetVisible(view.TriggerLabel, false)
	c.view.SetVisible(view.LoadingIndicator, true)
	c.mu.Unlock()

	c.notify(from, Submitting)
	c.logger.Debug().
		Str("form", string(c.form.Type)).
		Str("endpoint", c.endpoint.String()).
		Msg("submitting")
	return payload, nil
}

// finalize restores the trigger control on every exit path, including
// panics, and re-arms the controller.
func (c *Controller) finalize() {
	c.view.SetEnabled(view.TriggerControl, true)
	c.view.SetVisible(view.TriggerLabel, true)
	c.view.SetVisible(view.LoadingIndicator, false)
	c.transition(Idle)
}

func (c *Controller) fail(message string, cause error) error {
	c.alert("Error generating " + c.noun() + ": " + message)
	c.transition(Failed)
	c.logger.Error().
		Err(cause).
		Str("form", string(c.form.Type)).
		Str("message", message).
		Msg("document generation failed")
	return &SubmissionError{Noun: c.noun(), Message: message, Err: cause}
}

func (c *Controller) render(resp model.GenerationResponse) {
	switch c.form.Type {
	case model.FormTypeResume:
		c.view.SetText(view.ResumeContent, c.sanitize(resp.Content))
		c.view.SetText(view.TemplateUsed, resp.Template)
		c.view.SetText(view.PageCount, resp.Pages.String())
	default:
		c.view.SetText(view.CoverContent, c.sanitize(resp.Content))
	}
	c.view.SetVisible(view.ResultSection, true)
	c.view.SetVisible(view.FormSection, false)
	c.view.SetLink(view.DownloadControl, resp.DownloadURL)
	c.view.ScrollTo(view.ResultSection)
}

// sanitize strips markup from generated content so it renders as plain text
// on any surface.
func (c *Controller) sanitize(content string) string {
	return html.UnescapeString(c.sanitizer.Sanitize(content))
}

func (c *Controller) alert(message string) {
	c.view.SetText(view.Alert, message)
	c.view.SetVisible(view.Alert, true)
}

func (c *Controller) transition(to State) {
	c.mu.Lock()
	from := c.state
	c.state = to
	c.mu.Unlock()
	c.notify(from, to)
}

func (c *Controller) notify(from, to State) {
	if c.hook != nil {
		c.hook(from, to)
	}
}

func (c *Controller) noun() string {
	if noun := strings.TrimSpace(c.form.Noun); noun != "" {
		return noun
	}
	switch c.form.Type {
	case model.FormTypeCoverLetter:
		return "cover letter"
	default:
		return "resume"
	}
}
