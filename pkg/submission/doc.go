// Package submission implements the per-form submission state machine:
//
//	Idle → Submitting → {Succeeded, Failed} → Idle
//
// Validation runs to completion before a request is issued; the request is
// the only suspension point; the trigger control is restored on every exit
// path. The disabled trigger (mirrored by the Submitting state) is the only
// guard against concurrent submissions, and nothing is retried or cancelled
// by the controller itself.
package submission
