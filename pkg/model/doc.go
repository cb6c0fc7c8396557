// Package model defines the typed form model shared by the progress tracker,
// the validators and the submission controller. A Field carries its current
// value as a string; radio groups store the checked option (or "" when none
// is checked) so every kind can be read through the same accessor. FormSchema
// is the per-form declaration loaded from pkg/schema and its Bind method is
// the boundary where raw input enters the engine. The generation DTOs mirror
// the JSON contract of the backend endpoints described in pkg/contract.
package model
