package overtime

import (
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

// Calculator derives weekday and holiday overtime from daily records.
// It holds no state and is safe for concurrent use.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeOvertime accumulates every record's contribution in order.
func (c *Calculator) ComputeOvertime(records []overtime.DailyRecord) overtime.Result {
	var result overtime.Result

	for _, record := range records {
		day, ok := c.EvaluateDay(record)
		if !ok {
			continue
		}

		switch day.Category {
		case overtime.CategoryHoliday:
			result.Holiday += day.Overtime
		case overtime.CategoryWeekday:
			result.Weekday += day.Overtime
		}
	}

	result.Total = result.Weekday + result.Holiday
	return result
}

// EvaluateDay returns the overtime one record contributes. It reports false
// when either clock time is absent.
func (c *Calculator) EvaluateDay(record overtime.DailyRecord) (overtime.DayOvertime, bool) {
	if record.ClockIn == nil || record.ClockOut == nil {
		return overtime.DayOvertime{}, false
	}

	workSpan := record.ClockOut.Sub(*record.ClockIn)
	day := overtime.DayOvertime{
		Date:     record.Date,
		WorkSpan: workSpan,
	}

	if kind, isHoliday := overtime.ClassifyHoliday(record.HolidayLabel); isHoliday {
		// every worked minute on a holiday is overtime
		actual := workSpan
		if actual >= overtime.HolidayBreakThreshold {
			actual -= overtime.BreakTime
		}
		day.Category = overtime.CategoryHoliday
		day.HolidayKind = kind
		day.ActualWork = actual
		day.Overtime = actual
		return day, true
	}

	actual := workSpan - overtime.BreakTime
	day.Category = overtime.CategoryWeekday
	day.ActualWork = actual
	if excess := actual - overtime.StandardWorkHours; excess > 0 {
		day.Overtime = excess
	}
	return day, true
}

// YearMonth labels the timesheet with the month of its first dated record,
// e.g. "2024年05月". It returns "" when no record carries a date.
func (c *Calculator) YearMonth(records []overtime.DailyRecord) (string, error) {
	for _, record := range records {
		if record.Date == "" {
			continue
		}
		date, ok := validator.IsValidDate(record.Date)
		if !ok {
			return "", fmt.Errorf("%w: %q", overtime.ErrInvalidDate, record.Date)
		}
		return date.Format("2006年01月"), nil
	}
	return "", nil
}
