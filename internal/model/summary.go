package model

// CategoryCount is the number of items in one category.
type CategoryCount struct {
	Name  string `json:"name"  yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Summary holds per-category item counts and the overall total.
// Total always equals the sum of the per-category counts.
type Summary struct {
	Categories []CategoryCount `json:"categories" yaml:"categories"`
	Total      int             `json:"total"      yaml:"total"`
}

// NewSummary computes the summary of a catalog.
func NewSummary(c *Catalog) *Summary {
	s := &Summary{Categories: make([]CategoryCount, 0, c.Len())}
	for _, category := range c.Categories() {
		s.Categories = append(s.Categories, CategoryCount{
			Name:  category.Name,
			Count: len(category.Items),
		})
		s.Total += len(category.Items)
	}
	return s
}
