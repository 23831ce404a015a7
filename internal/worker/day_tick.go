package worker

import (
	"context"
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// DayAdvancer is the part of the inventory service a day tick needs
type DayAdvancer interface {
	AdvanceDays(ctx context.Context, days int) (*domain.Snapshot, error)
}

// DayTickJob advances the inventory by one day
type DayTickJob struct {
	inventory DayAdvancer
}

// NewDayTickJob creates a new DayTickJob
func NewDayTickJob(inventory DayAdvancer) *DayTickJob {
	return &DayTickJob{inventory: inventory}
}

// Name identifies the job in logs
func (j *DayTickJob) Name() string {
	return JobNameDayTick
}

// Process runs one day update
func (j *DayTickJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgDayTickStart)

	snapshot, err := j.inventory.AdvanceDays(ctx, 1)
	if err != nil {
		return fmt.Errorf("day tick: %w", err)
	}

	log.Info(LogMsgDayTickDone, "day", snapshot.Day, "items", len(snapshot.Items))
	return nil
}
