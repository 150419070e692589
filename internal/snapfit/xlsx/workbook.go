package xlsx

import (
	"fmt"

	snapfit "SnapForge/internal/snapfit"

	"github.com/xuri/excelize/v2"
)

// SweepWorkbook renders a sweep table as a single-sheet workbook. Shared
// by the HTTP export handler and the snapsweep CLI.
func SweepWorkbook(spec snapfit.SweepSpec, rows []snapfit.SweepRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		string(spec.Param),
		"deflection_mm",
		"deflection_force_n",
		"mating_force_n",
	}
	for col, hdr := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, hdr); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []float64{row.Value, row.DeflectionMM, row.DeflectionForceN, row.MatingForceN}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// RunSweepWorkbook evaluates a sweep and renders it in one step.
func RunSweepWorkbook(spec snapfit.SweepSpec) (*excelize.File, error) {
	rows, err := snapfit.Sweep(spec)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return SweepWorkbook(spec, rows)
}
