// Package config loads and merges the feedsync daemon configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// The main entry point is [GetStructuredConfig]; precedence between sources
// is env > flags > JSON file > defaults, implemented by merging the sources
// in that order with mergo (a later source never overrides an earlier
// non-zero value).
package config
