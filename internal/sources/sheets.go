package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/httpclient"
)

// fullColumnRange is the column span read from every sheet
const fullColumnRange = "A:Z"

var (
	editSuffix     = regexp.MustCompile(`/edit.*$`)
	documentPrefix = regexp.MustCompile(`^.*/d/`)
	trailingPath   = regexp.MustCompile(`/.*$`)
)

// CleanSpreadsheetID extracts the document id from a pasted Sheets URL
func CleanSpreadsheetID(id string) string {
	id = editSuffix.ReplaceAllString(id, "")
	id = documentPrefix.ReplaceAllString(id, "")
	return trailingPath.ReplaceAllString(id, "")
}

// sheetsHandler reads sheets through the Google Sheets v4 values API
type sheetsHandler struct {
	client  httpclient.Client
	baseURL string
	apiKey  func() (string, error)
}

// NewSheetsHandler creates a Google Sheets source handler
func NewSheetsHandler(cfg *config.SheetsConfig) SourceHandler {
	var opts []httpclient.Option
	if cfg != nil && cfg.MaxRetries > 0 {
		opts = append(opts, httpclient.WithMaxRetries(cfg.MaxRetries))
	}
	return newSheetsHandler(
		httpclient.NewDefaultClient(cfg.GetTimeout(), opts...),
		cfg.GetBaseURL(),
		cfg.GetAPIKey,
	)
}

func newSheetsHandler(client httpclient.Client, baseURL string, apiKey func() (string, error)) *sheetsHandler {
	return &sheetsHandler{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// FetchSheet implements SourceHandler.FetchSheet
func (h *sheetsHandler) FetchSheet(ctx context.Context, ref SheetRef) (*Sheet, error) {
	if ref.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}
	key, err := h.apiKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingAPIKey, err)
	}

	id := CleanSpreadsheetID(ref.SpreadsheetID)
	valuesRange := fullColumnRange
	if ref.SheetName != "" {
		valuesRange = url.PathEscape(ref.SheetName) + "!" + fullColumnRange
	}
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		h.baseURL, url.PathEscape(id), valuesRange, url.QueryEscape(key))

	slog.DebugContext(ctx, "Fetching sheet", "spreadsheet_id", id, "sheet", ref.SheetName)

	data, err := h.client.Get(ctx, reqURL)
	if err != nil {
		return nil, describeFetchError(err, ref)
	}

	sheet, err := parseValues(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet %q: %w", ref.SheetName, err)
	}
	return sheet, nil
}

// describeFetchError maps upstream status codes to actionable errors
func describeFetchError(err error, ref SheetRef) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return fmt.Errorf("failed to fetch sheet: %w", err)
	}

	switch httpErr.StatusCode {
	case http.StatusNotFound:
		hint := ""
		if ref.SheetName != "" {
			hint = fmt.Sprintf("; check that a sheet named %q exists", ref.SheetName)
		}
		return fmt.Errorf(
			"%w: check that %q is the id after /d/ in the sheet URL; "+
				"share the spreadsheet with anyone who has the link; "+
				"make sure the Sheets API is enabled%s",
			ErrSpreadsheetNotFound, ref.SpreadsheetID, hint)
	case http.StatusForbidden:
		return fmt.Errorf(
			"%w (403): make sure the Sheets API is enabled for the API key's project, "+
				"the API key is valid and the spreadsheet is public or link-shared",
			ErrAccessDenied)
	case http.StatusBadRequest:
		return fmt.Errorf(
			"%w (400): check the spreadsheet id format, special characters in the sheet name and the API key format",
			ErrBadRequest)
	default:
		message := gjson.Get(httpErr.Message, "error.message").String()
		if message == "" {
			message = http.StatusText(httpErr.StatusCode)
		}
		return fmt.Errorf("%w (%d): %s", ErrUpstream, httpErr.StatusCode, message)
	}
}

// parseValues decodes a values response into a Sheet
func parseValues(data []byte) (*Sheet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	values := gjson.GetBytes(data, "values").Array()
	grid := make([][]string, 0, len(values))
	for _, row := range values {
		cells := row.Array()
		line := make([]string, 0, len(cells))
		for _, cell := range cells {
			line = append(line, cell.String())
		}
		grid = append(grid, line)
	}
	return shapeRows(grid)
}
