// Package csvexport flattens decoded manifests into CSV rows for download
// and offline processing.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"maniflow/internal/edifact"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// shipmentColumns defines the flattened shipment/item header row (34 columns).
// One row per item; a shipment without items still yields one row so it stays
// visible in the export.
var shipmentColumns = []string{
	"File",
	"Manifest Number",
	"Shipment #",
	"Warehouse",
	"Currency",
	"Destination City",
	"Destination Country",
	"Route",
	"Packages",
	"Gross Weight (kg)",
	"Declared Weight (kg)",
	"Length (cm)",
	"Width (cm)",
	"Height (cm)",
	"Scheduled Delivery",
	"Pickup Time",
	"Invoice Date",
	"Order ID",
	"Tracking",
	"Phone",
	"Consignee Name",
	"Consignee Street",
	"Consignee Zip",
	"Consignee City",
	"Consignee State",
	"Consignee Country",
	"MOA ZZZ",
	"MOA 40",
	"Product Ref",
	"Quantity",
	"UOM",
	"Unit Price",
	"Delivery Terms",
	"Reason For Export",
}

// ShipmentWriter writes flattened shipment/item rows as CSV.
type ShipmentWriter struct {
	csv *csv.Writer
}

// NewShipmentWriter creates a ShipmentWriter that writes CSV to w.
func NewShipmentWriter(w io.Writer) *ShipmentWriter {
	return &ShipmentWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 34-column header row.
func (w *ShipmentWriter) WriteHeader() error {
	return w.csv.Write(shipmentColumns)
}

// WriteInterchange flattens one decoded interchange into rows. Rows from
// successive calls concatenate, which is how multi-file exports are built.
func (w *ShipmentWriter) WriteInterchange(sourceName string, ic *edifact.Interchange) error {
	for _, row := range FlattenInterchange(sourceName, ic) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *ShipmentWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *ShipmentWriter) Error() error {
	return w.csv.Error()
}

// ShipmentColumns returns the flattened shipment/item header row.
func ShipmentColumns() []string {
	cols := make([]string, len(shipmentColumns))
	copy(cols, shipmentColumns)
	return cols
}

// FlattenInterchange returns the flattened rows for one decoded interchange,
// one row per item. A shipment without items yields a single row with empty
// item columns.
func FlattenInterchange(sourceName string, ic *edifact.Interchange) [][]string {
	var rows [][]string
	for i, sh := range ic.Shipments {
		items := sh.Items
		if len(items) == 0 {
			items = []edifact.Item{{}}
		}
		for _, it := range items {
			rows = append(rows, shipmentRow(sourceName, ic, i+1, &sh, &it))
		}
	}
	return rows
}

func shipmentRow(sourceName string, ic *edifact.Interchange, index int, sh *edifact.Shipment, it *edifact.Item) []string {
	row := make([]string, len(shipmentColumns))

	row[0] = sourceName
	row[1] = ic.Header.ManifestNumber
	row[2] = strconv.Itoa(index)
	row[3] = ic.Header.Warehouse
	row[4] = ic.Header.Currency
	row[5] = sh.DestinationCity
	row[6] = sh.DestinationCountry
	row[7] = sh.Route
	row[8] = formatInt(sh.Packages)
	row[9] = formatFloat(sh.Weights.GrossKG)
	row[10] = formatFloat(sh.Weights.DeclaredKG)
	if d := sh.Dimensions; d != nil {
		row[11] = formatFloat(d.Length)
		row[12] = formatFloat(d.Width)
		row[13] = formatFloat(d.Height)
	}
	row[14] = sh.ScheduledDelivery
	row[15] = sh.PickupTime
	row[16] = sh.InvoiceDate
	row[17] = sh.OrderID
	row[18] = sh.Tracking
	row[19] = sh.Phone
	if c := sh.Consignee; c != nil {
		row[20] = c.Name
		row[21] = c.Street
		row[22] = c.Zip
		row[23] = c.City
		row[24] = c.State
		row[25] = c.Country
	}
	row[26] = formatFloat(sh.Monetary["ZZZ"])
	row[27] = formatFloat(sh.Monetary["40"])
	row[28] = it.ProductRef
	row[29] = formatFloat(it.Qty)
	row[30] = it.UOM
	row[31] = formatFloat(it.UnitPrice)
	row[32] = sh.DeliveryTerms
	row[33] = sh.ExportReason

	return row
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
