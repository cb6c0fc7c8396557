// Package config loads the command line tool settings from the environment,
// with an optional .env file, and validates them.
package config
