package view

import "github.com/goliatone/go-docform/pkg/model"

// Element ids shared by every form page.
const (
	ProgressFill     = "progressFill"
	ProgressText     = "progressText"
	TriggerControl   = "generateBtn"
	TriggerLabel     = "generateBtn.text"
	LoadingIndicator = "generateBtn.loading"
	ResultSection    = "result"
	FormSection      = "formWrapper"
	DownloadControl  = "downloadBtn"
	Alert            = "alert"
	TemplateUsed     = "templateUsed"
	PageCount        = "pageCount"
	ResumeContent    = "resumeContent"
	CoverContent     = "coverLetterContent"
)

// Style properties written by the engine.
const (
	StyleWidth       = "width"
	StyleColor       = "color"
	StyleBorderColor = "borderColor"
	StyleActive      = "active"
)

// View abstracts the UI surface so the tracker, validators and submission
// controller can be driven without a real page. Implementations deliver
// events serially; no two writes happen concurrently.
type View interface {
	// Field returns the current state of a form field.
	Field(id string) (model.Field, bool)
	// SetValue rewrites the value of a form field (used by normalization and
	// radio selection).
	SetValue(id, value string)
	SetText(id, text string)
	SetVisible(id string, visible bool)
	SetStyle(id, property, value string)
	SetEnabled(id string, enabled bool)
	// SetLink points a control (the download button) at a location.
	SetLink(id, href string)
	ScrollTo(id string)
}

// OptionID returns the element id of a single radio option card.
func OptionID(group, option string) string {
	return group + ":" + option
}
