package tui

import (
	"strings"
	"sync"

	"github.com/goliatone/go-docform/pkg/model"
	"github.com/goliatone/go-docform/pkg/view"
)

// View is an in-memory view that also queues the text a page would show
// (status line, alerts, generated content, download link) so the runner can
// print it between prompts.
type View struct {
	*view.Memory

	mu         sync.Mutex
	pending    []string
	lastStatus string
}

var _ view.View = (*View)(nil)

// NewView seeds a terminal view with the fields of form.
func NewView(form model.FormSchema) *View {
	return &View{Memory: view.NewMemory(form)}
}

// SetText implements view.View.
func (v *View) SetText(id, text string) {
	v.Memory.SetText(id, text)
	if strings.TrimSpace(text) == "" {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	switch id {
	case view.ProgressText:
		if text == v.lastStatus {
			return
		}
		v.lastStatus = text
		v.pending = append(v.pending, text)
	case view.Alert:
		v.pending = append(v.pending, text)
	case view.ResumeContent, view.CoverContent:
		v.pending = append(v.pending, "", text, "")
	case view.TemplateUsed:
		v.pending = append(v.pending, "Template: "+text)
	case view.PageCount:
		v.pending = append(v.pending, "Pages: "+text)
	}
}

// SetLink implements view.View.
func (v *View) SetLink(id, href string) {
	v.Memory.SetLink(id, href)
	if id != view.DownloadControl || href == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = append(v.pending, "Download: "+href)
}

// Drain returns the queued lines, oldest first, and clears the queue.
func (v *View) Drain() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.pending
	v.pending = nil
	return out
}
