package coordinator

import (
	"log/slog"
	"time"

	"github.com/plantops/crane-dashboard/internal/config"
)

// getSyncInterval parses the configured interval, falling back to the default for empty or invalid values
func getSyncInterval(cfg *config.SyncConfig) time.Duration {
	if cfg != nil && cfg.Interval != "" {
		if interval, err := time.ParseDuration(cfg.Interval); err == nil && interval > 0 {
			return interval
		}
		slog.Warn("Invalid sync interval, using default",
			"interval", cfg.Interval,
			"default", config.DefaultSyncInterval)
	}
	return config.DefaultSyncInterval
}
