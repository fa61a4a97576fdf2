package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/plantops/crane-dashboard/internal/otel"
	"github.com/plantops/crane-dashboard/internal/service"
)

// perform runs one pass if no other pass holds the guard
func (c *defaultCoordinator) perform(ctx context.Context, trigger string) error {
	if !c.syncing.CompareAndSwap(false, true) {
		slog.InfoContext(ctx, "Sync already in progress, skipping", "trigger", trigger)
		c.tracker.Skipped()
		c.syncMetrics.RecordSyncSkipped(ctx, trigger)
		return ErrSyncInProgress
	}
	defer c.syncing.Store(false)

	// A pass outlives the request or ticker that started it
	ctx = context.WithoutCancel(ctx)

	passID := uuid.NewString()
	ctx, span := otel.StartSpan(ctx, c.tracer, "coordinator.SyncPass",
		trace.WithAttributes(
			otel.AttrPassID.String(passID),
			otel.AttrSyncTrigger.String(trigger),
		))
	defer span.End()

	c.tracker.Started(passID, trigger, c.now())
	slog.InfoContext(ctx, "Starting sync pass", "pass_id", passID, "trigger", trigger)

	start := time.Now()
	err := c.execute(ctx)
	elapsed := time.Since(start)

	c.syncMetrics.RecordSyncDuration(ctx, trigger, elapsed, err == nil)
	if err != nil {
		otel.RecordError(span, err)
		c.tracker.Failed(elapsed, err)
		slog.ErrorContext(ctx, "Sync pass failed",
			"pass_id", passID, "duration", elapsed, "error", err)
		return err
	}

	c.tracker.Succeeded(c.now(), elapsed, "Sync completed successfully")
	slog.InfoContext(ctx, "Sync pass completed", "pass_id", passID, "duration", elapsed)
	return nil
}

// execute runs the body of a pass, turning a panic into an error
func (c *defaultCoordinator) execute(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sync pass panicked: %v", r)
		}
	}()

	if c.manager != nil {
		result, err := c.manager.Ingest(ctx, c.ingestReq)
		if err != nil {
			return fmt.Errorf("scheduled ingest failed: %w", err)
		}
		for _, w := range result.Warnings {
			slog.WarnContext(ctx, "Scheduled ingest warning", "warning", w)
		}
	}

	return warmUp(ctx, c.hotPath)
}

// warmUp issues the hot-path reads concurrently and waits for all of them
func warmUp(ctx context.Context, svc service.HotPathService) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(recovering(func() error {
		_, err := svc.GetCranes(gctx)
		return wrapWarmUp("cranes", err)
	}))
	g.Go(recovering(func() error {
		_, err := svc.GetFailureRecords(gctx, service.FailureRecordQuery{})
		return wrapWarmUp("failure records", err)
	}))
	g.Go(recovering(func() error {
		_, err := svc.GetUniqueFactories(gctx)
		return wrapWarmUp("factories", err)
	}))
	g.Go(recovering(func() error {
		_, err := svc.GetUniqueCraneNames(gctx)
		return wrapWarmUp("crane names", err)
	}))
	g.Go(recovering(func() error {
		_, err := svc.GetDashboardSummary(gctx)
		return wrapWarmUp("dashboard summary", err)
	}))

	return g.Wait()
}

// recovering converts a panic in a warm-up query into an error.
// The recover in execute does not cover errgroup goroutines.
func recovering(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("warm-up query panicked: %v", r)
			}
		}()
		return fn()
	}
}

func wrapWarmUp(query string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to warm %s: %w", query, err)
}
