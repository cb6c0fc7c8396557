package docform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-docform/pkg/client"
	"github.com/goliatone/go-docform/pkg/contract"
	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/profileurl"
	"github.com/goliatone/go-docform/pkg/progress"
	"github.com/goliatone/go-docform/pkg/schema"
	"github.com/goliatone/go-docform/pkg/submission"
	"github.com/goliatone/go-docform/pkg/view"
)

// DefaultBaseURL is the backend address used when neither a generator nor a
// base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// Form wires the progress tracker, the URL bindings and the submission
// controller of one form instance to a view. Events are expected one at a
// time, the way a page delivers them.
type Form struct {
	schema     model.FormSchema
	view       view.View
	tracker    *progress.Tracker
	bindings   map[string]profileurl.Binding
	controller *submission.Controller
	endpoint   contract.Endpoint
	logger     zerolog.Logger
}

type options struct {
	store      *schema.Store
	contract   *contract.Contract
	generator  client.Generator
	baseURL    string
	httpClient *http.Client
	policy     progress.Policy
	hook       submission.TransitionHook
	logger     zerolog.Logger
}

// Option customises a Form.
type Option func(*options)

// WithSchemaStore reads the form schema from store instead of the embedded
// forms.
func WithSchemaStore(store *schema.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithContract resolves endpoints from an already loaded contract.
func WithContract(c *contract.Contract) Option {
	return func(o *options) {
		o.contract = c
	}
}

// WithGenerator sets the transport used on submit. It takes precedence over
// WithBaseURL.
func WithGenerator(g client.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithBaseURL points the default HTTP transport at a backend.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient overrides the client of the default HTTP transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithProgressPolicy overrides the tracked-field policy declared by the
// schema.
func WithProgressPolicy(policy progress.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithTransitionHook observes submission state changes.
func WithTransitionHook(hook submission.TransitionHook) Option {
	return func(o *options) {
		o.hook = hook
	}
}

// WithLogger attaches a logger, shared with every component of the form.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New builds the form of the given type on v and paints its initial state:
// progress computed from whatever v already holds and the first template
// option highlighted.
func New(ctx context.Context, formType model.FormType, v view.View, opts ...Option) (*Form, error) {
	if v == nil {
		return nil, errors.New("docform: view is required")
	}
	cfg := options{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	form, err := resolveSchema(cfg.store, formType)
	if err != nil {
		return nil, err
	}

	endpoint, err := resolveEndpoint(ctx, cfg.contract, formType)
	if err != nil {
		return nil, err
	}

	generator := cfg.generator
	if generator == nil {
		generator, err = client.New(cfg.baseURL,
			client.WithHTTPClient(cfg.httpClient),
			client.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("docform: %w", err)
		}
	}

	controller, err := submission.New(form, endpoint,
		submission.WithGenerator(generator),
		submission.WithView(v),
		submission.WithLogger(cfg.logger),
		submission.WithTransitionHook(cfg.hook),
	)
	if err != nil {
		return nil, fmt.Errorf("docform: %w", err)
	}

	tracker := progress.NewTracker(form, v,
		progress.WithPolicy(cfg.policy),
		progress.WithLogger(cfg.logger),
	)

	f := &Form{
		schema:     form,
		view:       v,
		tracker:    tracker,
		bindings:   make(map[string]profileurl.Binding),
		controller: controller,
		endpoint:   endpoint,
		logger:     cfg.logger,
	}
	for _, field := range form.Fields {
		if service, ok := profileurl.ServiceFor(field.ID); ok {
			f.bindings[field.ID] = profileurl.Binding{FieldID: field.ID, Service: service}
		}
	}

	f.highlightDefaultTemplate()
	f.tracker.Refresh()

	f.logger.Debug().
		Str("form", string(form.Type)).
		Str("endpoint", endpoint.String()).
		Int("fields", len(form.Fields)).
		Int("url_bindings", len(f.bindings)).
		Msg("form ready")
	return f, nil
}

func resolveSchema(store *schema.Store, formType model.FormType) (model.FormSchema, error) {
	if store == nil {
		return schema.For(formType)
	}
	form, ok := store.Form(formType)
	if !ok {
		return model.FormSchema{}, fmt.Errorf("%w: %q", model.ErrUnknownFormType, formType)
	}
	return form, nil
}

func resolveEndpoint(ctx context.Context, c *contract.Contract, formType model.FormType) (contract.Endpoint, error) {
	if c == nil {
		loaded, err := contract.Load(ctx)
		if err != nil {
			return contract.Endpoint{}, err
		}
		c = loaded
	}
	return c.ForForm(formType)
}

// Schema returns the schema the form was built from.
func (f *Form) Schema() model.FormSchema {
	return f.schema
}

// View returns the surface the form renders to.
func (f *Form) View() view.View {
	return f.view
}

// Endpoint returns the generation endpoint the form submits to.
func (f *Form) Endpoint() contract.Endpoint {
	return f.endpoint
}

// HandleInput is the input handler of a field: link fields refresh their
// indicator, and completion is recomputed.
func (f *Form) HandleInput(id string) model.FormProgress {
	if binding, ok := f.bindings[id]; ok {
		binding.OnInput(f.view)
	}
	return f.tracker.Refresh()
}

// HandleChange is the change handler of a field.
func (f *Form) HandleChange(string) model.FormProgress {
	return f.tracker.Refresh()
}

// HandleBlur normalizes a link field once focus leaves it. Other fields are
// left alone.
func (f *Form) HandleBlur(id string) profileurl.Indicator {
	binding, ok := f.bindings[id]
	if !ok {
		return profileurl.Neutral
	}
	return binding.OnBlur(f.view)
}

// templateGroup is the only radio group rendered as cards with an active
// marker.
const templateGroup = "template"

// Choose checks one option of a radio group and dispatches a change event for
// the group. Choosing a template also moves the active marker to its card.
func (f *Form) Choose(group, value string) (model.FormProgress, error) {
	field, ok := f.schema.Field(group)
	if !ok || !field.IsRadioGroup() {
		return model.FormProgress{}, fmt.Errorf("%w: %q is not a radio group", model.ErrUnknownField, group)
	}
	if !field.HasOption(value) {
		return model.FormProgress{}, fmt.Errorf("%w: %s=%q", model.ErrInvalidOption, group, value)
	}
	f.view.SetValue(group, value)
	if group == templateGroup {
		f.markActive(field, value)
	}
	return f.HandleChange(group), nil
}

// Submit gathers the current field values from the view and hands them to
// the submission controller.
func (f *Form) Submit(ctx context.Context) (model.GenerationResponse, error) {
	return f.controller.Submit(ctx, f.Values())
}

// Values returns the current value of every schema field present on the
// view.
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.schema.Fields))
	for _, declared := range f.schema.Fields {
		field, ok := f.view.Field(declared.ID)
		if !ok {
			continue
		}
		values[declared.ID] = field.Value
	}
	return values
}

// Progress recomputes completion without dispatching an event.
func (f *Form) Progress() model.FormProgress {
	return progress.Compute(f.tracker.Fields())
}

// State reports the submission state.
func (f *Form) State() submission.State {
	return f.controller.State()
}

// highlightDefaultTemplate marks the first template card active without
// checking it, as the page does on load.
func (f *Form) highlightDefaultTemplate() {
	field, ok := f.schema.Field(templateGroup)
	if !ok || !field.IsRadioGroup() || len(field.Options) == 0 {
		return
	}
	f.markActive(field, field.Options[0])
}

func (f *Form) markActive(field model.Field, active string) {
	for _, option := range field.Options {
		f.view.SetStyle(view.OptionID(field.ID, option), view.StyleActive, strconv.FormatBool(option == active))
	}
}
