package profileurl

import (
	"github.com/goliatone/go-docform/pkg/view"
)

// Binding ties a service to one field of a view.
type Binding struct {
	FieldID string
	Service Service
}

// ServiceFor returns the service that governs a link field id.
func ServiceFor(fieldID string) (Service, bool) {
	switch fieldID {
	case "linkedin":
		return LinkedIn, true
	case "github":
		return GitHub, true
	case "portfolio":
		return Portfolio, true
	default:
		return Service{}, false
	}
}

// OnInput refreshes the border color from the current value. It runs on every
// keystroke and never rewrites the value.
func (b Binding) OnInput(v view.View) Indicator {
	field, ok := v.Field(b.FieldID)
	if !ok {
		return Neutral
	}
	indicator := Feedback(b.Service, field.Value)
	v.SetStyle(b.FieldID, view.StyleBorderColor, indicator.BorderColor())
	return indicator
}

// OnBlur normalizes the value once focus leaves the field, writes it back
// when it changed, and refreshes the indicator.
func (b Binding) OnBlur(v view.View) Indicator {
	field, ok := v.Field(b.FieldID)
	if !ok {
		return Neutral
	}
	if normalized := Normalize(b.Service, field.Value); normalized != field.Value {
		v.SetValue(b.FieldID, normalized)
	}
	return b.OnInput(v)
}
