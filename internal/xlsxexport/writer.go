// Package xlsxexport renders decoded manifests as a two-sheet Excel workbook:
// a Summary sheet with one row per file and a Shipments sheet with the same
// flattened rows the CSV export produces.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"maniflow/internal/csvexport"
	"maniflow/internal/edifact"
)

const (
	summarySheet   = "Summary"
	shipmentsSheet = "Shipments"
)

// DecodedFile pairs a source file name with its decoded interchange.
type DecodedFile struct {
	Name        string
	Interchange *edifact.Interchange
}

// Write renders the workbook for the given files to w.
func Write(w io.Writer, files []DecodedFile) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(shipmentsSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeSheet(f, summarySheet, summaryRows(files)); err != nil {
		return err
	}
	if err := writeSheet(f, shipmentsSheet, shipmentRows(files)); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func summaryRows(files []DecodedFile) [][]string {
	rows := [][]string{csvexport.SummaryColumns()}
	for _, df := range files {
		rows = append(rows, csvexport.SummaryRow(df.Name, df.Interchange))
	}
	return rows
}

func shipmentRows(files []DecodedFile) [][]string {
	rows := [][]string{csvexport.ShipmentColumns()}
	for _, df := range files {
		rows = append(rows, csvexport.FlattenInterchange(df.Name, df.Interchange)...)
	}
	return rows
}

func writeSheet(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
