package draw

import (
	"fmt"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/catalog"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// RareProbabilityPercent is the chance of drawing from the PRIMARY_RARE
// class; all other draws come from COMMON.
const RareProbabilityPercent = 5.0

// Engine selects one card per session. Outcomes are not seedable or
// replayable; callers enforce the one-draw-per-identity rule.
type Engine struct {
	src Source
}

// NewEngine builds an engine on the given entropy source.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Draw picks one entry: a first sample under RareProbabilityPercent
// selects the rare class, anything else the common class; a second
// independent sample picks uniformly within the class.
func (e *Engine) Draw(c *catalog.Catalog) (models.CatalogEntry, error) {
	s, err := e.src.Sample()
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("draw: entropy source failed: %w", err)
	}

	class := models.ClassCommon
	if s < RareProbabilityPercent {
		class = models.ClassPrimaryRare
	}

	pool := c.ByClass(class)
	if len(pool) == 0 {
		// Unreachable after catalog.New; kept so a broken catalog can
		// never surface as a silent empty result.
		return models.CatalogEntry{}, fmt.Errorf("draw: weight class %s is empty", class)
	}

	s2, err := e.src.Sample()
	if err != nil {
		return models.CatalogEntry{}, fmt.Errorf("draw: entropy source failed: %w", err)
	}
	idx := int(s2 / 100 * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx], nil
}
