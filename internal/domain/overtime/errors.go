package overtime

import "errors"

// Overtime domain errors
var (
	// Timesheet ingestion errors
	ErrEmptyFile         = errors.New("timesheet file is empty")
	ErrMissingColumn     = errors.New("timesheet header is missing a required column")
	ErrUnsupportedFormat = errors.New("unsupported timesheet format: only csv and xlsx allowed")
	ErrTooManyRecords    = errors.New("timesheet has too many records")

	// Calculation errors
	ErrInvalidDate = errors.New("date must be in YYYY/MM/DD format")
)
