package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/status"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/telemetry"
)

// CoordinatorTracerName is the name used for sync pass spans
const CoordinatorTracerName = "github.com/plantops/crane-dashboard/sync/coordinator"

// ErrSyncInProgress is returned when a pass is requested while another one runs
var ErrSyncInProgress = errors.New("sync already in progress")

// Triggers recorded on every pass
const (
	TriggerInitial   = "initial"
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
	TriggerForced    = "forced"
	TriggerRefresh   = "refresh"
)

//go:generate mockgen -destination=mocks/mock_coordinator.go -package=mocks -source=coordinator.go Coordinator

// Coordinator runs sync passes on a schedule and on demand
type Coordinator interface {
	// Start runs an initial pass, then one pass per interval.
	// Blocks until ctx is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop disarms the schedule and waits for Start to return. Running passes are not interrupted.
	Stop() error

	// PerformSync runs one pass now, or returns ErrSyncInProgress if one is running
	PerformSync(ctx context.Context) error

	// ForceSync clears the in-progress guard and runs one pass
	ForceSync(ctx context.Context) error

	// Refresh drops every cached read and then forces a pass
	Refresh(ctx context.Context) error

	// Status returns a snapshot of the sync status
	Status() status.SyncStatus
}

type defaultCoordinator struct {
	hotPath  service.HotPathService
	interval time.Duration

	// optional ingest run at the start of every pass
	manager   pkgsync.Manager
	ingestReq pkgsync.IngestRequest

	syncing atomic.Bool
	tracker *status.Tracker

	mu         gosync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{}

	syncMetrics *telemetry.SyncMetrics
	tracer      trace.Tracer
	now         func() time.Time
}

// Option configures the coordinator
type Option func(*defaultCoordinator)

// WithSyncMetrics sets the sync metrics for the coordinator
func WithSyncMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(c *defaultCoordinator) {
		c.syncMetrics = metrics
	}
}

// WithTracer sets the tracer used for pass spans
func WithTracer(tracer trace.Tracer) Option {
	return func(c *defaultCoordinator) {
		c.tracer = tracer
	}
}

// WithScheduledIngest makes every pass ingest req through manager before warming the cache
func WithScheduledIngest(manager pkgsync.Manager, req pkgsync.IngestRequest) Option {
	return func(c *defaultCoordinator) {
		c.manager = manager
		c.ingestReq = req
	}
}

// WithClock sets the clock used for status timestamps
func WithClock(now func() time.Time) Option {
	return func(c *defaultCoordinator) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a coordinator warming hotPath at the interval in cfg
func New(hotPath service.HotPathService, cfg *config.SyncConfig, opts ...Option) Coordinator {
	interval := getSyncInterval(cfg)
	c := &defaultCoordinator{
		hotPath:  hotPath,
		interval: interval,
		tracker:  status.NewTracker(interval),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start implements Coordinator.Start
func (c *defaultCoordinator) Start(ctx context.Context) error {
	coordCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	if c.cancelFunc != nil {
		c.mu.Unlock()
		cancel()
		return fmt.Errorf("coordinator already started")
	}
	c.cancelFunc = cancel
	c.done = done
	c.mu.Unlock()

	defer func() {
		close(done)
		slog.Info("Sync coordinator shutting down")
	}()

	slog.Info("Starting sync coordinator",
		"interval", c.interval,
		"ingest_on_schedule", c.manager != nil)

	c.runPass(coordCtx, TriggerInitial)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Each tick gets its own goroutine so a slow pass makes later ticks skip
			go c.runPass(coordCtx, TriggerScheduled)
		case <-coordCtx.Done():
			slog.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop implements Coordinator.Stop
func (c *defaultCoordinator) Stop() error {
	c.mu.Lock()
	cancel, done := c.cancelFunc, c.done
	c.mu.Unlock()

	if cancel != nil {
		slog.Info("Stopping sync coordinator")
		cancel()
		<-done
	}
	return nil
}

// PerformSync implements Coordinator.PerformSync
func (c *defaultCoordinator) PerformSync(ctx context.Context) error {
	return c.perform(ctx, TriggerManual)
}

// ForceSync implements Coordinator.ForceSync
func (c *defaultCoordinator) ForceSync(ctx context.Context) error {
	return c.force(ctx, TriggerForced)
}

// Refresh implements Coordinator.Refresh
func (c *defaultCoordinator) Refresh(ctx context.Context) error {
	if err := c.hotPath.InvalidateCache(ctx); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return c.force(ctx, TriggerRefresh)
}

// force clears the guard and runs a pass. A pass that was running keeps running.
func (c *defaultCoordinator) force(ctx context.Context, trigger string) error {
	if c.syncing.Swap(false) {
		slog.WarnContext(ctx, "Forcing sync while another pass is running", "trigger", trigger)
	}
	return c.perform(ctx, trigger)
}

// Status implements Coordinator.Status
func (c *defaultCoordinator) Status() status.SyncStatus {
	return c.tracker.Get()
}

// runPass performs a pass whose outcome nobody waits for
func (c *defaultCoordinator) runPass(ctx context.Context, trigger string) {
	if err := c.perform(ctx, trigger); err != nil && !errors.Is(err, ErrSyncInProgress) {
		slog.Error("Sync pass failed", "trigger", trigger, "error", err)
	}
}
