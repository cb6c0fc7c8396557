// Package validation holds the field rules of the generation forms. Rules are
// go-playground/validator tags evaluated in a fixed order so the resulting
// message list is stable; link fields reuse the profileurl checks through the
// custom linkedin, github and portfolio tags.
package validation
