package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	dashboard "github.com/plantops/crane-dashboard/internal/app"
	"github.com/plantops/crane-dashboard/internal/service"
	"github.com/plantops/crane-dashboard/internal/store"
	pkgsync "github.com/plantops/crane-dashboard/internal/sync"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Import the configured spreadsheets once and print the dashboard summary",
	Long: `Import the configured spreadsheets into an in-memory store and print the crane
status counts, the ingest report and the cranes with recorded failures.

Nothing is served and nothing is written back to the spreadsheets.`,
	RunE: runSummary,
}

const summaryStopTimeout = 5 * time.Second

func init() {
	summaryCmd.Flags().String("format", "table", "Output format (table or json)")
}

// summaryReport is everything the summary command prints
type summaryReport struct {
	Summary  store.DashboardSummary        `json:"summary"`
	Ingest   store.IngestReport            `json:"ingest"`
	Warnings []string                      `json:"warnings,omitempty"`
	Failures []service.CraneFailureSummary `json:"failures"`
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := dashboard.NewDashboardApp(ctx, dashboard.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer func() {
		_ = app.Stop(summaryStopTimeout)
	}()

	report, err := collectSummary(ctx, app.Components(), pkgsync.NewIngestRequest(&cfg.Source))
	if err != nil {
		return err
	}

	return writeSummary(cmd.OutOrStdout(), report, format)
}

func collectSummary(
	ctx context.Context,
	components *dashboard.AppComponents,
	req pkgsync.IngestRequest,
) (*summaryReport, error) {
	result, err := components.SyncManager.Ingest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to import spreadsheets: %w", err)
	}

	summary, err := components.DashboardService.GetDashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	failures, err := components.DashboardService.GetCranesWithFailureData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failures: %w", err)
	}

	return &summaryReport{
		Summary:  summary,
		Ingest:   result.Report,
		Warnings: result.Warnings,
		Failures: failures,
	}, nil
}

func writeSummary(w io.Writer, report *summaryReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "table", "":
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	statusTable := tablewriter.NewWriter(w)
	statusTable.Header("Total", "Operating", "Maintenance", "Urgent")
	if err := statusTable.Append(
		strconv.Itoa(report.Summary.TotalCranes),
		strconv.Itoa(report.Summary.OperatingCranes),
		strconv.Itoa(report.Summary.MaintenanceCranes),
		strconv.Itoa(report.Summary.UrgentCranes),
	); err != nil {
		return err
	}
	if err := statusTable.Render(); err != nil {
		return err
	}

	ingestTable := tablewriter.NewWriter(w)
	ingestTable.Header("Collection", "Accepted", "Skipped")
	for _, row := range []struct {
		name   string
		report store.CollectionReport
	}{
		{"cranes", report.Ingest.Cranes},
		{"maintenance", report.Ingest.Maintenance},
		{"failures", report.Ingest.Failures},
	} {
		if err := ingestTable.Append(row.name, strconv.Itoa(row.report.Accepted), strconv.Itoa(row.report.Skipped)); err != nil {
			return err
		}
	}
	if err := ingestTable.Render(); err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warning); err != nil {
			return err
		}
	}

	if len(report.Failures) == 0 {
		_, err := fmt.Fprintln(w, "No failures recorded")
		return err
	}

	failureTable := tablewriter.NewWriter(w)
	failureTable.Header("Crane ID", "Name", "Plant Section", "Failures")
	for _, f := range report.Failures {
		if err := failureTable.Append(f.CraneID, deref(f.CraneName), deref(f.PlantSection), strconv.Itoa(f.FailureCount)); err != nil {
			return err
		}
	}
	return failureTable.Render()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
