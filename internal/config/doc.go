// Package config loads and merges keywarden configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// Precedence: environment variables, then flags, then the JSON file — the
// first source to set a field wins. The merged result is validated and
// exposed through [GetWardenConfig] with defaults applied.
package config
