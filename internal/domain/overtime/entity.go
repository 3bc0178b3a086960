package overtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// StandardWorkHours is the non-holiday daily baseline below which no overtime accrues.
	StandardWorkHours = 7*time.Hour + 30*time.Minute

	// BreakTime is deducted once per worked day.
	BreakTime = time.Hour

	// HolidayBreakThreshold is the span from which a holiday break is deducted.
	HolidayBreakThreshold = 6 * time.Hour
)

// ClockTime is a time of day stored as the offset from midnight.
type ClockTime time.Duration

// ParseClockTime parses "HH:MM"; single-digit hours and minutes are accepted.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:4", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// MustClockTime is ParseClockTime for literals.
func MustClockTime(s string) *ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return &c
}

func (c ClockTime) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Sub returns c-u. No day rollover is applied, so an overnight shift yields a negative span.
func (c ClockTime) Sub(u ClockTime) time.Duration {
	return time.Duration(c) - time.Duration(u)
}

// DailyRecord is one attendance row of a timesheet.
type DailyRecord struct {
	Date         string // YYYY/MM/DD, may be empty
	HolidayLabel string
	ClockIn      *ClockTime
	ClockOut     *ClockTime
}

// Category tells which accumulator a day contributes to.
type Category string

const (
	CategoryWeekday Category = "weekday"
	CategoryHoliday Category = "holiday"
)

// DayOvertime is the contribution of a single record.
type DayOvertime struct {
	Date        string
	Category    Category
	HolidayKind HolidayKind
	WorkSpan    time.Duration
	ActualWork  time.Duration
	Overtime    time.Duration
}

// Result holds the accumulated overtime of a timesheet. Total is always Weekday+Holiday.
type Result struct {
	Total   time.Duration
	Weekday time.Duration
	Holiday time.Duration
}

// FormatDuration renders d as "N時間 M分", truncating to whole minutes.
// Negative durations get a leading "-" in front of the absolute value.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return sign + strconv.FormatInt(minutes/60, 10) + "時間 " + strconv.FormatInt(minutes%60, 10) + "分"
}
