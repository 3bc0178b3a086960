package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timesheet"
	"github.com/google/uuid"
)

type OvertimeServiceImpl struct {
	calculator *Calculator
	maxRecords int
	now        func() time.Time
}

func NewOvertimeService(calculator *Calculator, maxRecords int) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		calculator: calculator,
		maxRecords: maxRecords,
		now:        time.Now,
	}
}

// Calculate implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Calculate(ctx context.Context, req overtime.CalculateRequest) (overtime.ReportResponse, error) {
	req.MaxRecords = s.maxRecords
	if err := req.Validate(); err != nil {
		return overtime.ReportResponse{}, err
	}

	records, err := req.ToRecords()
	if err != nil {
		return overtime.ReportResponse{}, fmt.Errorf("failed to convert records: %w", err)
	}

	return s.report(ctx, "json", records)
}

// Upload implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Upload(ctx context.Context, req overtime.UploadRequest) (overtime.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.ReportResponse{}, err
	}

	format, err := timesheet.FormatFromFilename(req.FileHeader.Filename)
	if err != nil {
		return overtime.ReportResponse{}, err
	}

	records, err := timesheet.Read(req.File, format)
	if err != nil {
		return overtime.ReportResponse{}, err
	}

	return s.report(ctx, filepath.Base(req.FileHeader.Filename), records)
}

func (s *OvertimeServiceImpl) report(ctx context.Context, source string, records []overtime.DailyRecord) (overtime.ReportResponse, error) {
	if s.maxRecords > 0 && len(records) > s.maxRecords {
		return overtime.ReportResponse{}, fmt.Errorf("%w: %d > %d", overtime.ErrTooManyRecords, len(records), s.maxRecords)
	}

	yearMonth, err := s.calculator.YearMonth(records)
	if err != nil {
		return overtime.ReportResponse{}, err
	}

	result := s.calculator.ComputeOvertime(records)

	days := make([]overtime.DayResponse, 0, len(records))
	for _, record := range records {
		day, ok := s.calculator.EvaluateDay(record)
		if !ok {
			continue
		}
		days = append(days, toDayResponse(day))
	}

	reportID, err := uuid.NewV7()
	if err != nil {
		return overtime.ReportResponse{}, fmt.Errorf("failed to generate report id: %w", err)
	}

	slog.InfoContext(ctx, "Overtime report calculated",
		"report_id", reportID.String(),
		"source", source,
		"records", len(records),
		"counted_days", len(days),
		"total_minutes", int64(result.Total/time.Minute),
	)

	return overtime.ReportResponse{
		ReportID:     reportID.String(),
		Source:       source,
		YearMonth:    yearMonth,
		RecordCount:  len(records),
		CountedDays:  len(days),
		Total:        overtime.NewDurationResponse(result.Total),
		Weekday:      overtime.NewDurationResponse(result.Weekday),
		Holiday:      overtime.NewDurationResponse(result.Holiday),
		Days:         days,
		CalculatedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

func toDayResponse(day overtime.DayOvertime) overtime.DayResponse {
	resp := overtime.DayResponse{
		Date:       day.Date,
		Category:   day.Category,
		WorkSpan:   overtime.NewDurationResponse(day.WorkSpan),
		ActualWork: overtime.NewDurationResponse(day.ActualWork),
		Overtime:   overtime.NewDurationResponse(day.Overtime),
	}
	if day.Category == overtime.CategoryHoliday {
		kind := day.HolidayKind.String()
		resp.HolidayKind = &kind
	}
	return resp
}
