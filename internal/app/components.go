package app

import (
	"github.com/plantops/crane-dashboard/internal/service"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
	"github.com/plantops/crane-dashboard/internal/sync/coordinator"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// SyncCoordinator runs the periodic cache warm-up passes
	SyncCoordinator coordinator.Coordinator

	// SyncManager reads spreadsheets into the record store
	SyncManager pkgsync.Manager

	// DashboardService provides dashboard reads and record writes
	DashboardService service.DashboardService
}
