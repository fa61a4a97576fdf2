// Package sources provides interfaces and implementations for reading
// crane, failure and maintenance rows from tabular sources.
//
// Every source produces a Sheet: the trimmed header row plus one store.Row per
// data row, keyed by header. Cells missing from a short row become "".
//
// Current implementations:
//   - sheetsHandler: reads a range of a Google Sheets document through the
//     Sheets v4 values API, retrying 5xx and transport failures
//   - excelHandler: reads a sheet of a local .xlsx workbook
//
// NewSourceHandler picks the implementation from the configured source type.
package sources
