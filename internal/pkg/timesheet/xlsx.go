package timesheet

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first worksheet of an Excel workbook. Time cells
// formatted with seconds are truncated to the minute.
func ReadXLSX(r io.Reader) ([]overtime.DailyRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx timesheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, overtime.ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return buildRecords(rows, rowOptions{trimSeconds: true})
}
