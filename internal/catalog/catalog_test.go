package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/improvements/internal/model"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()

	t.Run("has categories in display order", func(t *testing.T) {
		t.Parallel()
		want := []string{
			"Architecture & Code Quality",
			"New Features",
			"UI/UX Improvements",
			"Performance & Optimization",
			"Code Generation Enhancements",
			"Data & Configuration",
			"Developer Tools",
		}
		if diff := cmp.Diff(want, c.Names()); diff != "" {
			t.Errorf("category order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("has expected item counts", func(t *testing.T) {
		t.Parallel()
		want := []int{5, 10, 10, 5, 7, 5, 5}
		got := make([]int, 0, c.Len())
		for _, category := range c.Categories() {
			got = append(got, len(category.Items))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("item counts mismatch (-want +got):\n%s", diff)
		}
		if c.Total() != 47 {
			t.Errorf("expected 47 items, got %d", c.Total())
		}
	})

	t.Run("every category has at least one item", func(t *testing.T) {
		t.Parallel()
		for _, category := range c.Categories() {
			if len(category.Items) == 0 {
				t.Errorf("category %q has no items", category.Name)
			}
		}
	})

	t.Run("first and last items", func(t *testing.T) {
		t.Parallel()
		first, _ := c.Category("Architecture & Code Quality")
		if first.Items[0] != "Add proper error handling and try-catch blocks" {
			t.Errorf("unexpected first item %q", first.Items[0])
		}
		last, _ := c.Category("Developer Tools")
		if last.Items[len(last.Items)-1] != "Add GitHub Actions template generator" {
			t.Errorf("unexpected last item %q", last.Items[len(last.Items)-1])
		}
	})
}

func TestDefaultReturnsFreshCatalog(t *testing.T) {
	t.Parallel()

	a := Default()
	b := Default()
	if a == b {
		t.Fatal("expected distinct catalog values")
	}
	if diff := cmp.Diff(a.Categories(), b.Categories()); diff != "" {
		t.Errorf("catalogs differ (-a +b):\n%s", diff)
	}
}

func TestMustCatalogPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate category")
		}
	}()
	MustCatalog(
		model.Category{Name: "A", Items: []string{"x"}},
		model.Category{Name: "A", Items: []string{"y"}},
	)
}
