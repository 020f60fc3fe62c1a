package application

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rafikey/rafikey-admin/internal/domain/entity"
)

//go:embed catalog/metrics.yaml
var catalogYAML []byte

const AllCategories = "All"

// Catalog is the static list of tracked KPIs.
type Catalog struct {
	Entries []entity.CatalogEntry
}

func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var entries []entity.CatalogEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse metric catalog: %w", err)
	}
	return &Catalog{Entries: entries}, nil
}

// Categories lists "All" followed by each category in first-seen order.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, e := range c.Entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Filter keeps entries in category (or any, for "All" or empty) whose name or
// definition contains term, case-insensitively.
func (c *Catalog) Filter(category, term string) []entity.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []entity.CatalogEntry
	for _, e := range c.Entries {
		if category != "" && category != AllCategories && e.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Metric), term) &&
			!strings.Contains(strings.ToLower(e.Definition), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
