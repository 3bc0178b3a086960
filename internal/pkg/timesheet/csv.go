package timesheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV reads a UTF-8 timesheet; a leading byte-order mark is dropped.
func ReadCSV(r io.Reader) ([]overtime.DailyRecord, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv timesheet: %w", err)
	}
	return buildRecords(rows, rowOptions{})
}
