// Package logging builds the zerolog logger shared by the command line tool
// and the engine components, optionally mirrored to a rotating file.
package logging
