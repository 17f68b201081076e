// Package model defines the core data structures used throughout improvements.
//
// This package contains the following main types:
//   - Category: A named, ordered group of improvement ideas
//   - Catalog: The ordered, read-only collection of categories
//   - Summary: Per-category item counts and the overall total
//
// A Catalog is immutable once constructed. Every accessor hands out copies,
// so rendering a catalog any number of times always sees the same data.
package model
