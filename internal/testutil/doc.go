// Package testutil provides shared test helpers for argh.
//
// fixtures.go holds small complete Argh! programs with known behavior,
// used by both the interpreter and CLI tests. run.go holds the
// RunSource helper that executes a program source string against
// in-memory streams.
package testutil
