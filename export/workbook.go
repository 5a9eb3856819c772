// Package export writes a student's experiences to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"

	"portfolio-server-go/models"
	"portfolio-server-go/portfolio"
)

const (
	ExperiencesSheet = "Experiences"
	SummarySheet     = "Summary"
)

// WriteWorkbook writes records, in the order given, plus a summary sheet of
// the aggregate stats.
func WriteWorkbook(w io.Writer, student string, records []models.Record) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", ExperiencesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(models.ConsumedFields))
	for i, name := range models.ConsumedFields {
		header[i] = name
	}
	if err := f.SetSheetRow(ExperiencesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(models.ConsumedFields))
		for j, name := range models.ConsumedFields {
			row[j] = cellValue(record.Fields, name)
		}
		if err := f.SetSheetRow(ExperiencesSheet, cell, &row); err != nil {
			return fmt.Errorf("write record %s: %w", record.ID, err)
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	stats := portfolio.ComputeStats(records)
	summary := [][]interface{}{
		{"Student", student},
		{"Experiences", stats.TotalExperiences},
		{"Total hours", stats.TotalHours},
		{"Distinct skills", stats.TotalSkills},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// cellValue keeps numbers numeric so totals can be summed in the sheet.
func cellValue(f models.Fields, name string) interface{} {
	switch v := f[name].(type) {
	case float64:
		return v
	case bool:
		return v
	default:
		return f.Text(name)
	}
}
