package status

import (
	"sync"
	"time"
)

// Tracker holds the sync status. It is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	status SyncStatus
}

// NewTracker creates an idle tracker reporting the given schedule
func NewTracker(schedule time.Duration) *Tracker {
	return &Tracker{
		status: SyncStatus{
			Phase:        SyncPhaseIdle,
			SyncSchedule: schedule.String(),
		},
	}
}

// Get returns a copy of the current status
func (t *Tracker) Get() SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.status
	s.LastAttempt = copyTime(t.status.LastAttempt)
	s.LastSyncTime = copyTime(t.status.LastSyncTime)
	return s
}

// Started records the start of a pass
func (t *Tracker) Started(passID, trigger string, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Phase = SyncPhaseSyncing
	t.status.Message = "Sync in progress"
	t.status.PassID = passID
	t.status.Trigger = trigger
	t.status.LastAttempt = &at
}

// Succeeded records a successful pass
func (t *Tracker) Succeeded(at time.Time, elapsed time.Duration, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Phase = SyncPhaseComplete
	t.status.Message = message
	t.status.LastSyncTime = &at
	t.status.LastDuration = elapsed
	t.status.AttemptCount = 0
	t.status.PassCount++
}

// Failed records a failed pass
func (t *Tracker) Failed(elapsed time.Duration, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Phase = SyncPhaseFailed
	t.status.Message = err.Error()
	t.status.LastDuration = elapsed
	t.status.AttemptCount++
	t.status.FailureCount++
	t.status.PassCount++
}

// Skipped records a pass rejected because another one was running
func (t *Tracker) Skipped() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.SkippedCount++
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
