package service

import (
	"context"

	"github.com/plantops/crane-dashboard/internal/store"
)

//go:generate mockgen -destination=mocks/mock_hotpath.go -package=mocks -source=hotpath.go HotPathService

// HotPathService holds the queries warmed by every sync pass
type HotPathService interface {
	// GetCranes returns every crane
	GetCranes(ctx context.Context) ([]store.Crane, error)

	// GetFailureRecords returns failure records matching query; the zero query matches all
	GetFailureRecords(ctx context.Context, query FailureRecordQuery) ([]store.FailureRecord, error)

	// GetUniqueFactories returns the sorted distinct plant sections
	GetUniqueFactories(ctx context.Context) ([]string, error)

	// GetUniqueCraneNames returns the sorted distinct crane names
	GetUniqueCraneNames(ctx context.Context) ([]string, error)

	// GetDashboardSummary returns crane counts by status
	GetDashboardSummary(ctx context.Context) (store.DashboardSummary, error)

	// InvalidateCache drops every cached read
	InvalidateCache(ctx context.Context) error
}
