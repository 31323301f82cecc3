// Package errors provides standardized error handling for the rdf module.
// It defines the sentinel errors the literal engine and the canonicalizer
// service surface, error classification for handling purposes, and helpers
// for consistent error wrapping across packages.
package errors
