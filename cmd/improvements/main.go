// Package main provides the entry point for the improvements CLI.
//
// improvements prints the built-in catalog of planned improvements for the
// Fabric mod generator, grouped by category with numbered items and a
// closing total.
//
// Usage:
//
//	improvements
//	improvements --markdown
//
// See --help for all available options.
package main

// main is the entry point for improvements.
func main() {
	Execute()
}
