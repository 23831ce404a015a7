package domain

// Quality bounds
const (
	MinQuality = 0
	MaxQuality = 50

	// LegendaryQuality is the quality legendary items are stocked at
	LegendaryQuality = 80
)

// Item names and prefixes that select a category
const (
	NameAgedBrie        = "Aged Brie"
	NameSulfuras        = "Sulfuras, Hand of Ragnaros"
	PrefixBackstagePass = "Backstage passes"
	PrefixConjured      = "Conjured"
)

// Category labels
const (
	CategoryLabelUnresolved    = "unresolved"
	CategoryLabelOrdinary      = "ordinary"
	CategoryLabelAgedBrie      = "aged_brie"
	CategoryLabelLegendary     = "legendary"
	CategoryLabelBackstagePass = "backstage_pass"
	CategoryLabelConjured      = "conjured"
)

// Simulation limits
const (
	// MaxDaysPerAdvance caps a single advance request
	MaxDaysPerAdvance = 365
)
