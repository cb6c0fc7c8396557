// Package docform binds the completion tracker, the profile URL checks and
// the submission controller of a resume or cover letter form to a view.
//
// A Form is built once per form instance and fed the events of its page:
//
//	v := view.NewMemory(form)
//	f, err := docform.New(ctx, model.FormTypeResume, v, docform.WithBaseURL(baseURL))
//	...
//	v.SetValue("name", "Jane Doe")
//	f.HandleInput("name")
//	f.HandleBlur("linkedin")
//	resp, err := f.Submit(ctx)
package docform
