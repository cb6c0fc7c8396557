// Package profileurl normalizes and validates the link fields of a generation
// form: LinkedIn and GitHub profiles, which must reach the canonical
// https://<host>/<prefix><handle> shape, and the free-form portfolio link,
// which only has to be an absolute URL. Everything here is a pure function of
// the current value; Binding wires the functions to a view.
package profileurl
