package tabular

import (
	"io"

	"github.com/xuri/excelize/v2"

	"graze/entities"
)

const exportSheet = "Rotation"

// ExportColumns is the fixed export layout, one row per entry.
var ExportColumns = []string{
	"Pasture", "Area (acres)", "Herd size",
	"Prev planned SD", "Prev actual SD", "Estimate A", "Estimate B",
	"Graze days", "Proposed SD", "Start date", "End date", "Notes",
}

// ExportXLSX writes the entry list as a workbook with the fixed column set.
func ExportXLSX(w io.Writer, entries []entities.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	head := make([]interface{}, len(ExportColumns))
	for i, c := range ExportColumns {
		head[i] = c
	}
	if err := f.SetSheetRow(exportSheet, "A1", &head); err != nil {
		return err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Name, e.AreaAcres, e.HerdSize,
			optCell(e.PrevPlannedSD), optCell(e.PrevActualSD),
			optCell(e.EstimateA), optCell(e.EstimateB),
			e.GrazeDays, e.ProposedSD, e.StartDate, e.EndDate, e.Notes,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func optCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
