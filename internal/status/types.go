// Package status tracks the state of the periodic sync.
package status

import "time"

// SyncPhase represents the current phase of the sync supervisor
type SyncPhase string

const (
	// SyncPhaseIdle means no pass has run yet
	SyncPhaseIdle SyncPhase = "Idle"

	// SyncPhaseSyncing means a pass is currently in progress
	SyncPhaseSyncing SyncPhase = "Syncing"

	// SyncPhaseComplete means the last pass completed successfully
	SyncPhaseComplete SyncPhase = "Complete"

	// SyncPhaseFailed means the last pass failed
	SyncPhaseFailed SyncPhase = "Failed"
)

// SyncStatus represents the current state of the sync supervisor
type SyncStatus struct {
	// Phase represents the current sync phase
	Phase SyncPhase `json:"phase"`

	// Message provides additional information about the sync status
	Message string `json:"message,omitempty"`

	// PassID identifies the most recent pass
	PassID string `json:"passId,omitempty"`

	// Trigger is what started the most recent pass (timer, manual, startup)
	Trigger string `json:"trigger,omitempty"`

	// LastAttempt is the timestamp of the last pass start
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`

	// LastSyncTime is the timestamp of the last successful pass
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`

	// LastDuration is the wall time of the last finished pass
	LastDuration time.Duration `json:"lastDurationNs,omitempty"`

	// AttemptCount is the number of failed passes since the last success
	AttemptCount int `json:"attemptCount"`

	// PassCount is the number of finished passes
	PassCount int `json:"passCount"`

	// FailureCount is the number of failed passes
	FailureCount int `json:"failureCount"`

	// SkippedCount is the number of passes rejected because one was already running
	SkippedCount int `json:"skippedCount"`

	// SyncSchedule is the sync interval in effect (e.g., "3m0s")
	SyncSchedule string `json:"syncSchedule,omitempty"`
}
