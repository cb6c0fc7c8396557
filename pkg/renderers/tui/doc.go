// Package tui runs a generation form in the terminal. A survey-backed prompt
// driver collects each field, the View queues the status line, alerts and
// generated content the page would show, and the Runner prints them between
// prompts before submitting through the same engine a page uses.
package tui
