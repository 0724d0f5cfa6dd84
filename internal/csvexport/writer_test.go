package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maniflow/internal/edifact"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestShipmentWriterHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewShipmentWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 34)
	assert.Equal(t, "File", rows[0][0])
	assert.Equal(t, "Reason For Export", rows[0][33])
}

func TestShipmentWriterOneRowPerItem(t *testing.T) {
	ic := &edifact.Interchange{
		Header: edifact.Header{
			ManifestNumber: "2025101301",
			Currency:       "EUR",
			Warehouse:      "WTAM",
		},
		Shipments: []edifact.Shipment{
			{
				Packages:           intPtr(1),
				DestinationCity:    "BERLIN",
				DestinationCountry: "DE",
				Route:              "AMS-BER",
				Weights:            edifact.Weights{GrossKG: floatPtr(2.5)},
				Dimensions:         &edifact.Dimensions{Length: floatPtr(10), Width: floatPtr(50), Height: floatPtr(12)},
				Consignee:          &edifact.Consignee{Name: "JANE DOE", Street: "MAIN ST 1", City: "BERLIN", Zip: "10115", Country: "DE"},
				Monetary:           map[string]*float64{"ZZZ": floatPtr(528), "40": floatPtr(536)},
				Tracking:           "TRK123",
				OrderID:            "ORD9",
				DeliveryTerms:      "DDP",
				ExportReason:       "SALE",
				Items: []edifact.Item{
					{UOM: "EA", Qty: floatPtr(1), UnitPrice: floatPtr(528), ProductRef: "SKU-1"},
					{UOM: "EA", Qty: floatPtr(2), UnitPrice: floatPtr(8), ProductRef: "SKU-2"},
				},
			},
		},
	}

	var buf bytes.Buffer
	w := NewShipmentWriter(&buf)
	require.NoError(t, w.WriteInterchange("manifest.edi", ic))
	w.Flush()
	require.NoError(t, w.Error())

	rows := readRows(t, &buf)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "manifest.edi", first[0])
	assert.Equal(t, "2025101301", first[1])
	assert.Equal(t, "1", first[2])
	assert.Equal(t, "WTAM", first[3])
	assert.Equal(t, "EUR", first[4])
	assert.Equal(t, "BERLIN", first[5])
	assert.Equal(t, "DE", first[6])
	assert.Equal(t, "AMS-BER", first[7])
	assert.Equal(t, "1", first[8])
	assert.Equal(t, "2.5", first[9])
	assert.Equal(t, "", first[10])
	assert.Equal(t, "10", first[11])
	assert.Equal(t, "50", first[12])
	assert.Equal(t, "12", first[13])
	assert.Equal(t, "ORD9", first[17])
	assert.Equal(t, "TRK123", first[18])
	assert.Equal(t, "JANE DOE", first[20])
	assert.Equal(t, "MAIN ST 1", first[21])
	assert.Equal(t, "10115", first[22])
	assert.Equal(t, "528", first[26])
	assert.Equal(t, "536", first[27])
	assert.Equal(t, "SKU-1", first[28])
	assert.Equal(t, "1", first[29])
	assert.Equal(t, "EA", first[30])
	assert.Equal(t, "528", first[31])
	assert.Equal(t, "DDP", first[32])
	assert.Equal(t, "SALE", first[33])

	second := rows[1]
	assert.Equal(t, "SKU-2", second[28])
	assert.Equal(t, "2", second[29])
	assert.Equal(t, "8", second[31])
	// shipment columns repeat on every item row
	assert.Equal(t, "BERLIN", second[5])
}

func TestShipmentWriterItemlessShipment(t *testing.T) {
	ic := &edifact.Interchange{
		Shipments: []edifact.Shipment{
			{DestinationCity: "PARIS"},
		},
	}

	var buf bytes.Buffer
	w := NewShipmentWriter(&buf)
	require.NoError(t, w.WriteInterchange("a.edi", ic))
	w.Flush()

	rows := readRows(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, "PARIS", rows[0][5])
	assert.Equal(t, "", rows[0][28])
	assert.Equal(t, "", rows[0][29])
}

func TestShipmentWriterConcatenatesFiles(t *testing.T) {
	one := &edifact.Interchange{Shipments: []edifact.Shipment{{Route: "R1"}}}
	two := &edifact.Interchange{Shipments: []edifact.Shipment{{Route: "R2"}, {Route: "R3"}}}

	var buf bytes.Buffer
	w := NewShipmentWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInterchange("one.edi", one))
	require.NoError(t, w.WriteInterchange("two.edi", two))
	w.Flush()

	rows := readRows(t, &buf)
	require.Len(t, rows, 4)
	assert.Equal(t, "one.edi", rows[1][0])
	assert.Equal(t, "two.edi", rows[2][0])
	assert.Equal(t, "1", rows[2][2])
	assert.Equal(t, "2", rows[3][2])
}

func TestSummaryWriter(t *testing.T) {
	ic := &edifact.Interchange{
		Header: edifact.Header{
			ManifestNumber:      "2025101301",
			MessageType:         "IFTMIN",
			Sender:              "5450534000000",
			Receiver:            "8719333000008",
			InterchangeDatetime: "2025-10-13 00:23",
			Currency:            "EUR",
			Warehouse:           "WTAM",
		},
		Counts: edifact.Counts{
			LineCount:          6,
			TotalGrossWeightKG: floatPtr(12.5),
		},
		Shipments: []edifact.Shipment{
			{Items: []edifact.Item{{}, {}}},
			{Items: []edifact.Item{{}}},
		},
	}

	var buf bytes.Buffer
	w := NewSummaryWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInterchange("manifest.edi", ic))
	w.Flush()
	require.NoError(t, w.Error())

	rows := readRows(t, &buf)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 13)

	row := rows[1]
	assert.Equal(t, "manifest.edi", row[0])
	assert.Equal(t, "2025101301", row[1])
	assert.Equal(t, "IFTMIN", row[2])
	assert.Equal(t, "2025-10-13 00:23", row[5])
	assert.Equal(t, "2", row[8])
	assert.Equal(t, "3", row[9])
	assert.Equal(t, "6", row[10])
	assert.Equal(t, "12.5", row[11])
	assert.Equal(t, "", row[12])
}
