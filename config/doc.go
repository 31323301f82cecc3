// Package config loads and validates the canonicalizer service
// configuration from YAML.
package config
