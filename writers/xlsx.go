package writers

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/kweisgerber/sams2spielerplus/spielerplus"
)

// SheetName is the single sheet of the import workbook.
const SheetName = "Spielplan"

const (
	minColWidth = 10
	maxColWidth = 55
	headerFill  = "DDEBF7"
)

// buildWorkbook renders the rows as the import sheet: bold frozen header
// with a filter, and columns wide enough for their content.
func buildWorkbook(termine []spielerplus.Termin) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headers := spielerplus.Headers()
	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, t := range termine {
		if err := writeRow(f, i+2, t.Record()); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		return nil, err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	filterRange := fmt.Sprintf("A1:%s%d", lastCol, len(termine)+1)
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return nil, err
	}
	if err := sizeColumns(f, headers, termine); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// sizeColumns widens each column to its longest cell, within sane bounds.
func sizeColumns(f *excelize.File, headers []string, termine []spielerplus.Termin) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, t := range termine {
		for i, cell := range t.Record() {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := w + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
