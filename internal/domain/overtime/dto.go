package overtime

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// ========================================
// OVERTIME DTOs
// ========================================

type RecordRequest struct {
	Date         string `json:"date"`
	HolidayLabel string `json:"holiday_label"`
	ClockIn      string `json:"clock_in"`
	ClockOut     string `json:"clock_out"`
}

type CalculateRequest struct {
	Records    []RecordRequest `json:"records"`
	MaxRecords int             `json:"-"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaxRecords > 0 && len(r.Records) > r.MaxRecords {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: fmt.Sprintf("records must not exceed %d entries", r.MaxRecords),
		})
	}

	for i, rec := range r.Records {
		if !validator.IsEmpty(rec.ClockIn) && !validator.IsValidClockTime(rec.ClockIn) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].clock_in", i),
				Message: "clock_in must be in HH:MM format",
			})
		}
		if !validator.IsEmpty(rec.ClockOut) && !validator.IsValidClockTime(rec.ClockOut) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].clock_out", i),
				Message: "clock_out must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRecords converts a validated request into daily records.
func (r *CalculateRequest) ToRecords() ([]DailyRecord, error) {
	records := make([]DailyRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		in, err := optionalClockTime(rec.ClockIn)
		if err != nil {
			return nil, err
		}
		out, err := optionalClockTime(rec.ClockOut)
		if err != nil {
			return nil, err
		}
		records = append(records, DailyRecord{
			Date:         strings.TrimSpace(rec.Date),
			HolidayLabel: rec.HolidayLabel,
			ClockIn:      in,
			ClockOut:     out,
		})
	}
	return records, nil
}

func optionalClockTime(s string) (*ClockTime, error) {
	if validator.IsEmpty(s) {
		return nil, nil
	}
	c, err := ParseClockTime(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

var allowedTimesheetExts = []string{".csv", ".xlsx"}

type UploadRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
	MaxBytes   int64                 `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FileHeader == nil || r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "timesheet file is required",
		})
	} else if ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename)); !validator.IsInSlice(ext, allowedTimesheetExts) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "invalid file type: only csv, xlsx allowed",
		})
	} else if r.MaxBytes > 0 && r.FileHeader.Size > r.MaxBytes {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("timesheet file size must not exceed %d bytes", r.MaxBytes),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DurationResponse struct {
	Minutes int64  `json:"minutes"`
	Text    string `json:"text"`
}

func NewDurationResponse(d time.Duration) DurationResponse {
	return DurationResponse{
		Minutes: int64(d / time.Minute),
		Text:    FormatDuration(d),
	}
}

type DayResponse struct {
	Date        string           `json:"date"`
	Category    Category         `json:"category"`
	HolidayKind *string          `json:"holiday_kind,omitempty"`
	WorkSpan    DurationResponse `json:"work_span"`
	ActualWork  DurationResponse `json:"actual_work"`
	Overtime    DurationResponse `json:"overtime"`
}

type ReportResponse struct {
	ReportID     string           `json:"report_id"`
	Source       string           `json:"source"`
	YearMonth    string           `json:"year_month"`
	RecordCount  int              `json:"record_count"`
	CountedDays  int              `json:"counted_days"`
	Total        DurationResponse `json:"total"`
	Weekday      DurationResponse `json:"weekday"`
	Holiday      DurationResponse `json:"holiday"`
	Days         []DayResponse    `json:"days"`
	CalculatedAt string           `json:"calculated_at"`
}
