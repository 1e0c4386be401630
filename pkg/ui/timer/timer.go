// Package timer tracks command execution time for user-facing timing output.
package timer

import "time"

// Timer measures the total runtime of a command and the runtime of its current
// stage. Implementations are not safe for concurrent use; commands run
// single-threaded through their lifecycle.
type Timer interface {
	// Start begins timing. Calling Start again resets the timer.
	Start()
	// NewStage marks the beginning of a new stage, resetting the stage clock.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the
	// current stage.
	GetTiming() (total, stage time.Duration)
}

// New returns a Timer backed by the wall clock.
func New() Timer {
	return &clockTimer{}
}

type clockTimer struct {
	started      time.Time
	stageStarted time.Time
}

func (t *clockTimer) Start() {
	now := time.Now()
	t.started = now
	t.stageStarted = now
}

func (t *clockTimer) NewStage() {
	t.stageStarted = time.Now()
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	if t.started.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.started), now.Sub(t.stageStarted)
}
