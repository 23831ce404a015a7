package domain

import (
	"fmt"
	"strings"
)

// Category is the closed set of update rules an item can follow.
// The zero value means the category has not been resolved from the name yet.
type Category int

const (
	CategoryUnresolved Category = iota
	CategoryOrdinary
	CategoryAgedBrie
	CategoryLegendary
	CategoryBackstagePass
	CategoryConjured
)

// AllCategories lists every resolvable category, in declaration order
var AllCategories = []Category{
	CategoryOrdinary,
	CategoryAgedBrie,
	CategoryLegendary,
	CategoryBackstagePass,
	CategoryConjured,
}

// String returns the stable label used in logs, metrics and JSON
func (c Category) String() string {
	switch c {
	case CategoryOrdinary:
		return CategoryLabelOrdinary
	case CategoryAgedBrie:
		return CategoryLabelAgedBrie
	case CategoryLegendary:
		return CategoryLabelLegendary
	case CategoryBackstagePass:
		return CategoryLabelBackstagePass
	case CategoryConjured:
		return CategoryLabelConjured
	default:
		return CategoryLabelUnresolved
	}
}

// MarshalText encodes the category as its label
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CategoryForName maps an item name to its category.
// Names that match no rule are ordinary.
func CategoryForName(name string) Category {
	switch {
	case name == NameAgedBrie:
		return CategoryAgedBrie
	case name == NameSulfuras:
		return CategoryLegendary
	case strings.HasPrefix(name, PrefixBackstagePass):
		return CategoryBackstagePass
	case strings.HasPrefix(name, PrefixConjured):
		return CategoryConjured
	default:
		return CategoryOrdinary
	}
}

// Item is a single stock entry. SellIn may go negative; Quality is kept
// within [MinQuality, MaxQuality] by the day update except for legendary items.
type Item struct {
	ID       int      `json:"id" db:"item_id"`
	Name     string   `json:"name" db:"name"`
	SellIn   int      `json:"sell_in" db:"sell_in"`
	Quality  int      `json:"quality" db:"quality"`
	Category Category `json:"category" db:"-"`
}

// NewItem builds an item and resolves its category once
func NewItem(name string, sellIn, quality int) Item {
	return Item{
		Name:     name,
		SellIn:   sellIn,
		Quality:  quality,
		Category: CategoryForName(name),
	}
}

// ResolveCategory fills in the category for items that were not built with NewItem
// and returns it.
func (i *Item) ResolveCategory() Category {
	if i.Category == CategoryUnresolved {
		i.Category = CategoryForName(i.Name)
	}
	return i.Category
}

// IsLegendary reports whether the item is exempt from all day updates
func (i *Item) IsLegendary() bool {
	return i.ResolveCategory() == CategoryLegendary
}

// String renders the item in the classic "name, sellIn, quality" form
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}
