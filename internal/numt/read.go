package numt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// catalogColumns are the required header names in the input workbook.
// Names are matched exactly (case-sensitive); column order is free.
var catalogColumns = []string{
	"NumtS Code",
	"Chr",
	"Mt Start",
	"Mt End",
	"Mt fragment length",
	"Nuc Start",
	"Nuc End",
	"Chr fragment length",
}

// ReadCatalog reads the NUMT catalog from the first sheet of an xlsx
// workbook, in file order. The first row is the header. Malformed rows
// fail the load: a bad coordinate is a *ParseError naming its row and
// column, never a coerced or dropped record.
func ReadCatalog(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &LoadError{Path: path, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("missing header row")}
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, want := range catalogColumns {
		if _, ok := cols[want]; !ok {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("missing column %q", want)}
		}
	}

	var records []Record
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rowNum := i + 2 // 1-based, after the header

		rec := Record{
			Code:  cell(row, cols["NumtS Code"]),
			Chrom: cell(row, cols["Chr"]),
		}
		for _, field := range []struct {
			column string
			dst    *int
		}{
			{"Mt Start", &rec.MtStart},
			{"Mt End", &rec.MtEnd},
			{"Mt fragment length", &rec.MtFragmentLength},
			{"Nuc Start", &rec.NucStart},
			{"Nuc End", &rec.NucEnd},
			{"Chr fragment length", &rec.NucFragmentLength},
		} {
			v, err := parseCoord(path, rowNum, field.column, cell(row, cols[field.column]))
			if err != nil {
				return nil, err
			}
			*field.dst = v
		}
		records = append(records, rec)
	}
	return records, nil
}

// cell returns the trimmed value at idx. Trailing empty cells are absent
// from excelize rows, so a short row reads as empty values.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseCoord(path string, row int, column, value string) (int, error) {
	if value == "" {
		return 0, &ParseError{Path: path, Row: row, Column: column}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Path: path, Row: row, Column: column, Value: value}
	}
	return n, nil
}
