// Package config loads clio settings from layered sources: the embedded
// defaults, a user file in TOML or YAML, CLIO_ environment variables and
// command line flags, each overriding the one before.
package config
