package numt

import (
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// reportColumns are the output report's header, in order.
var reportColumns = []string{
	"NumtS Code",
	"Overlap Start",
	"Overlap End",
	"Overlap Length",
	"Overlap Percentage",
	"Overlap Type",
}

// WriteReport writes one row per overlap to an xlsx workbook at path.
// Records without overlap are included by default so the report accounts
// for the whole catalog; overlappingOnly drops them instead. The workbook
// is saved to a temporary name in the same directory and renamed into
// place, so a failed write never leaves a partial report at path.
func WriteReport(path string, overlaps []Overlap, overlappingOnly bool) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(reportColumns))
	for i, name := range reportColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	rowNum := 2
	for _, o := range overlaps {
		if overlappingOnly && o.Type == OverlapNone {
			continue
		}

		row := []interface{}{o.Code, o.Start, o.End, o.Length, round2(o.Percentage), o.Type.String()}
		if o.Type == OverlapNone {
			// no shared span, so no coordinates to report
			row[1], row[2] = nil, nil
		}

		cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		rowNum++
	}

	tmp := filepath.Join(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err := f.SaveAs(tmp); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// round2 rounds to two decimals, the precision reported for percentages.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
