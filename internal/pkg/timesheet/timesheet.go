// Package timesheet turns uploaded attendance files into daily records.
package timesheet

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// Header names of the attendance export.
const (
	ColumnDate         = "日付"
	ColumnHolidayLabel = "休日区分"
	ColumnClockIn      = "出勤時刻"
	ColumnClockOut     = "退勤時刻"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromFilename picks the reader by file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", overtime.ErrUnsupportedFormat
	}
}

// Read parses r in the given format.
func Read(r io.Reader, format Format) ([]overtime.DailyRecord, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, overtime.ErrUnsupportedFormat
	}
}

type columns struct {
	date, holidayLabel, clockIn, clockOut int
}

func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	cols := columns{
		date:         lookup(ColumnDate),
		holidayLabel: lookup(ColumnHolidayLabel),
		clockIn:      lookup(ColumnClockIn),
		clockOut:     lookup(ColumnClockOut),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", overtime.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

// Spreadsheet time cells formatted as h:mm:ss.
var clockWithSecondsRegex = regexp.MustCompile(`^(\d{1,2}:\d{1,2}):\d{1,2}$`)

type rowOptions struct {
	// trimSeconds drops a trailing ":SS" from clock cells
	trimSeconds bool
}

// buildRecords maps data rows onto records. rows[0] must be the header.
// Short rows read their missing trailing cells as empty.
func buildRecords(rows [][]string, opts rowOptions) ([]overtime.DailyRecord, error) {
	if len(rows) == 0 {
		return nil, overtime.ErrEmptyFile
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	records := make([]overtime.DailyRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		line := i + 2

		in, err := clockCell(row, cols.clockIn, opts)
		if err != nil {
			errs = append(errs, cellError(line, ColumnClockIn))
		}
		out, err := clockCell(row, cols.clockOut, opts)
		if err != nil {
			errs = append(errs, cellError(line, ColumnClockOut))
		}

		records = append(records, overtime.DailyRecord{
			Date:         strings.TrimSpace(cell(row, cols.date)),
			HolidayLabel: cell(row, cols.holidayLabel),
			ClockIn:      in,
			ClockOut:     out,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func clockCell(row []string, i int, opts rowOptions) (*overtime.ClockTime, error) {
	v := strings.TrimSpace(cell(row, i))
	if v == "" {
		return nil, nil
	}
	if opts.trimSeconds {
		if m := clockWithSecondsRegex.FindStringSubmatch(v); m != nil {
			v = m[1]
		}
	}
	if !validator.IsValidClockTime(v) {
		return nil, fmt.Errorf("invalid clock time %q", v)
	}
	c, err := overtime.ParseClockTime(v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func cellError(line int, column string) validator.ValidationError {
	return validator.ValidationError{
		Field:   fmt.Sprintf("row %d %s", line, column),
		Message: column + " must be in HH:MM format",
	}
}

func isBlank(row []string) bool {
	for _, v := range row {
		if !validator.IsEmpty(v) {
			return false
		}
	}
	return true
}
