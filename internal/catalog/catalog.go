package catalog

import (
	"fmt"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// Catalog is the immutable card set the draw engine selects from.
type Catalog struct {
	entries []models.CatalogEntry
	rare    []models.CatalogEntry
	common  []models.CatalogEntry
	byID    map[string]models.CatalogEntry
}

// New validates the given entries and builds a catalog. Both weight
// classes must be populated and ids must be unique; a violation is a
// deployment defect, so callers should treat the error as fatal.
func New(entries []models.CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		entries: entries,
		byID:    make(map[string]models.CatalogEntry, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog: entry %q has no id", e.Name)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate entry id %q", e.ID)
		}
		c.byID[e.ID] = e

		switch e.Class {
		case models.ClassPrimaryRare:
			c.rare = append(c.rare, e)
		case models.ClassCommon:
			c.common = append(c.common, e)
		default:
			return nil, fmt.Errorf("catalog: entry %q has unknown weight class %q", e.ID, e.Class)
		}
	}
	if len(c.rare) == 0 {
		return nil, fmt.Errorf("catalog: no %s entries", models.ClassPrimaryRare)
	}
	if len(c.common) == 0 {
		return nil, fmt.Errorf("catalog: no %s entries", models.ClassCommon)
	}
	return c, nil
}

// Load builds the catalog from the built-in card set.
func Load() (*Catalog, error) {
	return New(Cards)
}

// Entries returns every card in declaration order.
func (c *Catalog) Entries() []models.CatalogEntry {
	return c.entries
}

// ByClass returns the cards of one weight class.
func (c *Catalog) ByClass(class models.WeightClass) []models.CatalogEntry {
	switch class {
	case models.ClassPrimaryRare:
		return c.rare
	case models.ClassCommon:
		return c.common
	}
	return nil
}

// ByID looks up a single card.
func (c *Catalog) ByID(id string) (models.CatalogEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}
