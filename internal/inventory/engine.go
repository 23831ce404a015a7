package inventory

import (
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Engine provides the pure day update logic (no storage dependencies)
type Engine struct {
	rules Rules
}

// NewEngine creates a new engine with the given rules
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the rule set the engine applies
func (e *Engine) Rules() Rules {
	return e.rules
}

// AdvanceOneDay moves every item forward by one day, in place
func (e *Engine) AdvanceOneDay(items []domain.Item) {
	for i := range items {
		e.UpdateItem(&items[i])
	}
}

// UpdateItem moves a single item forward by one day.
// Quality is adjusted first, then sell-in drops, then items past their
// sell date get a second adjustment based on the new sell-in.
func (e *Engine) UpdateItem(item *domain.Item) {
	category := item.ResolveCategory()
	if category == domain.CategoryLegendary {
		return
	}

	e.adjustBeforeSellDate(item, category)

	item.SellIn--

	if item.SellIn < 0 {
		e.adjustAfterSellDate(item, category)
	}
}

func (e *Engine) adjustBeforeSellDate(item *domain.Item, category domain.Category) {
	switch category {
	case domain.CategoryAgedBrie:
		e.increase(item)
	case domain.CategoryBackstagePass:
		e.increase(item)
		if item.SellIn <= e.rules.BackstageFirstThreshold {
			e.increase(item)
		}
		if item.SellIn <= e.rules.BackstageSecondThreshold {
			e.increase(item)
		}
	case domain.CategoryConjured:
		e.degrade(item, e.rules.ConjuredDegradeRate)
	default:
		e.degrade(item, 1)
	}
}

func (e *Engine) adjustAfterSellDate(item *domain.Item, category domain.Category) {
	switch category {
	case domain.CategoryAgedBrie:
		e.increase(item)
	case domain.CategoryBackstagePass:
		item.Quality = e.rules.MinQuality
	case domain.CategoryConjured:
		e.degrade(item, e.rules.ConjuredDegradeRate)
	default:
		e.degrade(item, 1)
	}
}

// increase adds one point unless the item is already at or above the ceiling.
// A value above the ceiling is left alone rather than pulled down.
func (e *Engine) increase(item *domain.Item) {
	if item.Quality < e.rules.MaxQuality {
		item.Quality++
	}
}

// degrade removes amount points, stopping at the floor
func (e *Engine) degrade(item *domain.Item, amount int) {
	if item.Quality <= e.rules.MinQuality {
		return
	}
	item.Quality -= amount
	if item.Quality < e.rules.MinQuality {
		item.Quality = e.rules.MinQuality
	}
}
