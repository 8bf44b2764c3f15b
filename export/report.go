// Package export writes routing results out as engineering deliverables: an
// xlsx wire schedule and an HTML quality report.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"schemroute/routing"
)

// WireReport pairs a routed wire with its caller-assigned name.
type WireReport struct {
	Name   string
	Result routing.Result
}

const (
	summarySheet  = "Wires"
	segmentsSheet = "Segments"
)

// WriteSchedule writes a wire schedule workbook: one summary row per wire and
// a second sheet listing every segment.
func WriteSchedule(path string, wires []WireReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(segmentsSheet); err != nil {
		return fmt.Errorf("create segments sheet: %w", err)
	}

	summaryHeader := []interface{}{"Wire", "Segments", "Total Length", "Bends", "Quality", "Obstacles"}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return err
	}
	segmentHeader := []interface{}{"Wire", "Index", "Orientation", "Start X", "Start Y", "End X", "End Y", "Length"}
	if err := f.SetSheetRow(segmentsSheet, "A1", &segmentHeader); err != nil {
		return err
	}

	segRow := 2
	for i, w := range wires {
		row := []interface{}{
			w.Name,
			len(w.Result.Segments),
			w.Result.TotalLength,
			w.Result.BendCount,
			w.Result.Quality,
			len(w.Result.Obstacles),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}

		for j, s := range w.Result.Segments {
			line := []interface{}{
				w.Name, j, s.Orientation.String(),
				s.Start.X, s.Start.Y, s.End.X, s.End.Y, s.Length,
			}
			cell := fmt.Sprintf("A%d", segRow)
			if err := f.SetSheetRow(segmentsSheet, cell, &line); err != nil {
				return err
			}
			segRow++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}
