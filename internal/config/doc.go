// Package config provides the configuration structure for improvements.
// A Config is built from command-line flags and validated once before
// any output is written.
package config
