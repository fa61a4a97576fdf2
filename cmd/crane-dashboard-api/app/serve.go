package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dashboard "github.com/plantops/crane-dashboard/internal/app"
	"github.com/plantops/crane-dashboard/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the dashboard API server.

The optional configuration file (--config) selects:
- The spreadsheet source (Google Sheets or a local Excel workbook) and its sheets
- The sync interval and whether each pass re-reads the source
- The read cache (memory or Redis), MQTT alert publishing and telemetry

Without a file the server starts empty on a Google Sheets source whose API key
is read from CRANE_DASHBOARD_SHEETS_API_KEY or GOOGLE_SHEETS_API_KEY.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	telemetryFlushTimeout  = 5 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")

	err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address"))
	if err != nil {
		slog.Error("Failed to bind address flag", "error", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	address := viper.GetString("address")

	slog.Info("Starting crane dashboard API server", "address", address)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tel, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown telemetry", "error", err)
		}
	}()

	app, err := dashboard.NewDashboardApp(ctx,
		dashboard.WithConfig(cfg),
		dashboard.WithAddress(address),
		dashboard.WithTelemetry(tel),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		_ = app.Stop(defaultGracefulTimeout)
		return err
	case <-quit:
	}

	return app.Stop(defaultGracefulTimeout)
}
