// Package progress computes how much of a generation form is complete and
// renders it as a fill width plus a status message. The resume form counts an
// allowlist of important fields, the cover letter counts its required fields.
package progress
