// Package client is the transport to the document generation backend. It
// posts the flat field map as JSON and decodes the reply; it never retries
// and sets no timeout of its own.
package client
