package model

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a named grouping of related improvement ideas.
// Items are kept in display order; numbering is derived from position.
type Category struct {
	// Name is the category header shown above its items.
	Name string `json:"name" yaml:"name"`

	// Items are the free-text improvement descriptions, in display order.
	Items []string `json:"items" yaml:"items"`
}

// clone returns a deep copy of the category.
func (c Category) clone() Category {
	return Category{Name: c.Name, Items: slices.Clone(c.Items)}
}

// Catalog is an ordered mapping from category name to its item list.
// The zero value is an empty catalog.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// NewCatalog builds a Catalog from categories in the given order.
// Names must be non-blank and unique. Categories without items are accepted.
func NewCatalog(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return nil, ErrEmptyCategoryName
		}
		if _, ok := c.index[category.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, category.Name)
		}
		c.index[category.Name] = len(c.categories)
		c.categories = append(c.categories, category.clone())
	}

	return c, nil
}

// Categories returns a copy of all categories in insertion order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	for i, category := range c.categories {
		out[i] = category.clone()
	}
	return out
}

// Category returns a copy of the named category.
func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

// Names returns the category names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.categories))
	for i, category := range c.categories {
		names[i] = category.Name
	}
	return names
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.categories)
}

// Total returns the number of items across all categories.
func (c *Catalog) Total() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, category := range c.categories {
		total += len(category.Items)
	}
	return total
}
