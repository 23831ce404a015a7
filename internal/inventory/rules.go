package inventory

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Rules holds the numeric knobs of the day update
type Rules struct {
	MinQuality int
	MaxQuality int

	// Backstage passes gain one extra point at or below each threshold
	BackstageFirstThreshold  int
	BackstageSecondThreshold int

	// ConjuredDegradeRate is how much a conjured item loses per step.
	// An ordinary item loses 1 per step.
	ConjuredDegradeRate int
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		MinQuality:               domain.MinQuality,
		MaxQuality:               domain.MaxQuality,
		BackstageFirstThreshold:  DefaultBackstageFirstThreshold,
		BackstageSecondThreshold: DefaultBackstageSecondThreshold,
		ConjuredDegradeRate:      DefaultConjuredDegradeRate,
	}
}

// WithConjuredDegradeRate returns a copy of the rules with a different conjured decay
func (r Rules) WithConjuredDegradeRate(rate int) Rules {
	r.ConjuredDegradeRate = rate
	return r
}

// Validate checks the rule set is internally consistent
func (r Rules) Validate() error {
	if r.MinQuality > r.MaxQuality {
		return fmt.Errorf(ErrFmtQualityBounds, domain.ErrInvalidInput, r.MinQuality, r.MaxQuality)
	}
	if r.BackstageSecondThreshold > r.BackstageFirstThreshold {
		return fmt.Errorf(ErrFmtBackstageThresholds, domain.ErrInvalidInput, r.BackstageSecondThreshold, r.BackstageFirstThreshold)
	}
	if r.ConjuredDegradeRate < 1 {
		return fmt.Errorf(ErrFmtConjuredRate, domain.ErrInvalidInput, r.ConjuredDegradeRate)
	}
	return nil
}
