package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
)

// Item is one menu entry. Name is unique within its category; Image is an
// optional reference owned by the presentation layer.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// Catalog is the categorized menu, loaded once per process and immutable
// afterwards.
type Catalog struct {
	categories map[string][]Item
}

// Load reads a menu file of the shape {"category": [{"name","price"}]}.
// A missing or malformed file is a boot error, not a runtime one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var raw map[string][]Item
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse menu file %s: %w", path, err)
	}

	for category, items := range raw {
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if item.Name == "" {
				return nil, fmt.Errorf("menu category %q has an unnamed item", category)
			}
			if item.Price.IsNegative() {
				return nil, fmt.Errorf("menu item %q has a negative price", item.Name)
			}
			if seen[item.Name] {
				return nil, fmt.Errorf("menu category %q lists %q twice", category, item.Name)
			}
			seen[item.Name] = true
		}
	}

	return &Catalog{categories: raw}, nil
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Items returns the items of one category.
func (c *Catalog) Items(category string) ([]Item, bool) {
	items, ok := c.categories[category]
	return items, ok
}

// Find looks an item up by name across all categories.
func (c *Catalog) Find(name string) (Item, bool) {
	for _, items := range c.categories {
		for _, item := range items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return Item{}, false
}
