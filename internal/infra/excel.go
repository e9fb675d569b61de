package infra

// excel.go: spreadsheet export using xuri/excelize.
// Each Sheet becomes one worksheet: a bold title row, a header row, then
// one row per record. Numeric cells stay numeric so totals work in Excel.

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet is an ordered list of flat records plus their column labels.
type Sheet struct {
	Name    string // worksheet tab, max 31 chars
	Title   string
	Columns []string
	Rows    [][]interface{}
}

// WriteXLSX renders sheets into one workbook and streams it to w.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E0E0"}},
	})
	if err != nil {
		return err
	}

	for i, s := range sheets {
		name := sheetName(s.Name, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		if err := f.SetCellValue(name, "A1", s.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", "A1", bold); err != nil {
			return err
		}

		for c, label := range s.Columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, 3)
			if err := f.SetCellValue(name, cell, label); err != nil {
				return err
			}
		}
		if len(s.Columns) > 0 {
			last, _ := excelize.CoordinatesToCellName(len(s.Columns), 3)
			if err := f.SetCellStyle(name, "A3", last, header); err != nil {
				return err
			}
		}

		for r, row := range s.Rows {
			for c, v := range row {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+4)
				if err := f.SetCellValue(name, cell, cellValue(v)); err != nil {
					return err
				}
			}
		}
		if len(s.Columns) > 0 {
			lastCol, _ := excelize.ColumnNumberToName(len(s.Columns))
			if err := f.SetColWidth(name, "A", lastCol, 16); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func sheetName(name string, i int) string {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", i+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// cellValue unwraps money types so excelize stores numbers, not strings.
func cellValue(v interface{}) interface{} {
	switch x := v.(type) {
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		f, _ := x.Float64()
		return f
	case *string:
		if x == nil {
			return ""
		}
		return *x
	default:
		return v
	}
}
