package worker

import (
	"errors"
	"time"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// Pool errors
var (
	ErrQueueFull   = errors.New("worker queue is full")
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
)

// ============================================================================
// Log Messages - Day Tick
// ============================================================================

const (
	JobNameDayTick     = "day_tick"
	LogMsgDayTickStart = "Day tick starting"
	LogMsgDayTickDone  = "Day tick completed"
)
