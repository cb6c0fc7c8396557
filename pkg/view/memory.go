package view

import (
	"sync"

	"github.com/goliatone/go-docform/pkg/model"
)

// Memory is an in-process View. Fields are seeded from a form schema and every
// write is recorded so callers (tests, the terminal front end) can inspect the
// resulting surface.
type Memory struct {
	mu       sync.RWMutex
	fields   map[string]model.Field
	order    []string
	text     map[string]string
	visible  map[string]bool
	styles   map[string]map[string]string
	disabled map[string]bool
	links    map[string]string
	scrolled []string
}

var _ View = (*Memory)(nil)

// NewMemory seeds a view with the fields of the schema. The result and
// loading elements start hidden, the form section and trigger label start
// visible, matching the initial page.
func NewMemory(form model.FormSchema) *Memory {
	m := &Memory{
		fields:   make(map[string]model.Field, len(form.Fields)),
		text:     make(map[string]string),
		visible:  make(map[string]bool),
		styles:   make(map[string]map[string]string),
		disabled: make(map[string]bool),
		links:    make(map[string]string),
	}
	for _, field := range form.Fields {
		field.Value = ""
		m.fields[field.ID] = field
		m.order = append(m.order, field.ID)
	}
	m.visible[FormSection] = true
	m.visible[TriggerLabel] = true
	m.visible[ResultSection] = false
	m.visible[LoadingIndicator] = false
	return m
}

// Field implements View.
func (m *Memory) Field(id string) (model.Field, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	field, ok := m.fields[id]
	return field, ok
}

// Fields returns every field in schema order.
func (m *Memory) Fields() []model.Field {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Field, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.fields[id])
	}
	return out
}

// SetValue implements View. Unknown ids are ignored.
func (m *Memory) SetValue(id, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	field, ok := m.fields[id]
	if !ok {
		return
	}
	field.Value = value
	m.fields[id] = field
}

// SetText implements View.
func (m *Memory) SetText(id, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text[id] = text
}

// SetVisible implements View.
func (m *Memory) SetVisible(id string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[id] = visible
}

// SetStyle implements View.
func (m *Memory) SetStyle(id, property, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	props, ok := m.styles[id]
	if !ok {
		props = make(map[string]string)
		m.styles[id] = props
	}
	props[property] = value
}

// SetEnabled implements View.
func (m *Memory) SetEnabled(id string, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled[id] = !enabled
}

// SetLink implements View.
func (m *Memory) SetLink(id, href string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[id] = href
}

// ScrollTo implements View.
func (m *Memory) ScrollTo(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrolled = append(m.scrolled, id)
}

// Text returns the last text written to an element.
func (m *Memory) Text(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text[id]
}

// Visible reports the visibility of an element. Elements never touched are
// reported as hidden.
func (m *Memory) Visible(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible[id]
}

// Style returns a style property of an element.
func (m *Memory) Style(id, property string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.styles[id][property]
}

// Enabled reports whether a control accepts interaction.
func (m *Memory) Enabled(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.disabled[id]
}

// Link returns the location a control points at.
func (m *Memory) Link(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.links[id]
}

// Scrolled returns the ids scrolled into view, oldest first.
func (m *Memory) Scrolled() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.scrolled...)
}
