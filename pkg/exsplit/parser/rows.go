package parser

import (
	"strconv"

	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet loads every row of a sheet into a SourceSheet snapshot.
// Blank rows in the middle of the sheet are kept so that row indexes match
// the worksheet.
func ReadSheet(f *excelize.File, sheetName string) (*models.SourceSheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]interface{}, len(row))
		for colIdx, cellValue := range row {
			if cellValue != "" {
				cells[colIdx] = cellValue
			}
		}

		r := models.Row{
			R:     rowIdx + 1, // 1-based row index
			Cells: cells,
		}
		if err := readFirstCell(f, sheetName, &r); err != nil {
			return nil, err
		}
		result = append(result, r)
	}

	return &models.SourceSheet{
		Name:      sheetName,
		Dimension: UsedRange(rows),
		Rows:      result,
	}, nil
}

// readFirstCell types the column A value of r and records its style and
// formula. Only column A is copied, so other columns stay raw strings.
func readFirstCell(f *excelize.File, sheetName string, r *models.Row) error {
	cellName, err := excelize.CoordinatesToCellName(1, r.R)
	if err != nil {
		return err
	}
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return err
	}
	raw, _ := r.First()
	if raw == nil && formula == "" {
		return nil
	}
	r.Formula = formula

	if r.Style, err = f.GetCellStyle(sheetName, cellName); err != nil {
		return err
	}
	if raw != nil {
		cellType, err := f.GetCellType(sheetName, cellName)
		if err != nil {
			return err
		}
		r.Cells[0] = typedValue(raw.(string), cellType)
	}
	return nil
}

// typedValue converts a raw cell value back to a Go value matching its cell type.
func typedValue(raw string, cellType excelize.CellType) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		switch raw {
		case "1":
			return true
		case "0":
			return false
		}
		return raw
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return parseValue(raw)
	default:
		return raw
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
