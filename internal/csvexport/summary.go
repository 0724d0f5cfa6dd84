package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"maniflow/internal/edifact"
)

// summaryColumns defines the per-file summary header row.
var summaryColumns = []string{
	"File",
	"Manifest Number",
	"Message Type",
	"Sender",
	"Receiver",
	"Interchange Datetime",
	"Currency",
	"Warehouse",
	"Shipments",
	"Items",
	"Line Count",
	"Total Gross Weight (kg)",
	"Total Value",
}

// SummaryWriter writes one row per decoded file with header identity and
// control totals.
type SummaryWriter struct {
	csv *csv.Writer
}

// NewSummaryWriter creates a SummaryWriter that writes CSV to w.
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return &SummaryWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the summary header row.
func (w *SummaryWriter) WriteHeader() error {
	return w.csv.Write(summaryColumns)
}

// WriteInterchange writes the summary row for one decoded interchange.
func (w *SummaryWriter) WriteInterchange(sourceName string, ic *edifact.Interchange) error {
	return w.csv.Write(SummaryRow(sourceName, ic))
}

// SummaryColumns returns the summary header row.
func SummaryColumns() []string {
	cols := make([]string, len(summaryColumns))
	copy(cols, summaryColumns)
	return cols
}

// Flush flushes the underlying csv.Writer buffer.
func (w *SummaryWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *SummaryWriter) Error() error {
	return w.csv.Error()
}

// SummaryRow returns the summary row for one decoded interchange.
func SummaryRow(sourceName string, ic *edifact.Interchange) []string {
	items := 0
	for _, sh := range ic.Shipments {
		items += len(sh.Items)
	}

	return []string{
		sourceName,
		ic.Header.ManifestNumber,
		ic.Header.MessageType,
		ic.Header.Sender,
		ic.Header.Receiver,
		ic.Header.InterchangeDatetime,
		ic.Header.Currency,
		ic.Header.Warehouse,
		strconv.Itoa(len(ic.Shipments)),
		strconv.Itoa(items),
		strconv.Itoa(ic.Counts.LineCount),
		formatFloat(ic.Counts.TotalGrossWeightKG),
		formatFloat(ic.Counts.TotalValue),
	}
}
