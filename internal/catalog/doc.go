// Package catalog provides the built-in catalog of improvement ideas for
// the Fabric mod generator, grouped by category in display order.
package catalog
