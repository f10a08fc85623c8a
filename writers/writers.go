// Package writers exports the generated events: an xlsx workbook for the
// SpielerPlus import, with a semicolon CSV as the fallback when the
// workbook cannot be produced.
package writers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/kweisgerber/sams2spielerplus/spielerplus"
)

// Exporter writes the import sheet to disk.
type Exporter struct {
	// BuildWorkbook is swappable for tests; nil means the excelize builder.
	BuildWorkbook func(termine []spielerplus.Termin) (*excelize.File, error)
}

// Export writes termine to path as a workbook. When that fails it writes
// the same rows as CSV next to it and returns the CSV path instead. The
// returned path is whatever actually landed on disk.
func (e *Exporter) Export(termine []spielerplus.Termin, path string) (string, error) {
	if err := e.writeWorkbook(termine, path); err != nil {
		log.Warn("spreadsheet export failed, falling back to csv", "path", path, "err", err)
		csvPath := swapExt(path, ".csv")
		if err := writeCSV(termine, csvPath); err != nil {
			return "", fmt.Errorf("write csv fallback: %w", err)
		}
		return csvPath, nil
	}
	return path, nil
}

func (e *Exporter) writeWorkbook(termine []spielerplus.Termin, path string) error {
	build := e.BuildWorkbook
	if build == nil {
		build = buildWorkbook
	}
	f, err := build(termine)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
