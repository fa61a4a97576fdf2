// Package coordinator supervises sync passes for the dashboard server.
//
// A pass optionally re-ingests the configured source through sync.Manager and
// then warms the hot-path reads of service.HotPathService concurrently, so the
// first dashboard requests after a pass are served from the read cache.
//
// # Scheduling
//
// Start runs one pass inline and then one pass per configured interval, each
// scheduled pass on its own goroutine. Stop disarms the ticker; a pass already
// running finishes on a context detached from the caller.
//
// # Mutual exclusion
//
// At most one pass runs at a time. The guard is an atomic compare-and-swap:
// a pass requested while another runs returns ErrSyncInProgress immediately
// and is counted as skipped. ForceSync clears the guard before starting, so a
// wedged pass can be bypassed at the cost of possibly running two passes at once.
//
// # Status
//
// Every pass updates a status.Tracker (phase, pass id, timings and counters)
// and, when configured, the sync duration and skipped-pass metrics.
package coordinator
