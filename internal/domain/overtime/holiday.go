package overtime

import "strings"

// HolidayKind enumerates the day classifications that count as holidays.
type HolidayKind int

const (
	NotHoliday HolidayKind = iota
	PublicHoliday
	StatutoryHoliday
	NationalHoliday
)

// holidayIndicators maps each kind to the token that marks it in a
// timesheet's holiday classification column. Order is match priority.
var holidayIndicators = []struct {
	kind  HolidayKind
	token string
}{
	{PublicHoliday, "公休"},
	{StatutoryHoliday, "法休"},
	{NationalHoliday, "祝日"},
}

func (k HolidayKind) String() string {
	switch k {
	case PublicHoliday:
		return "public_holiday"
	case StatutoryHoliday:
		return "statutory_holiday"
	case NationalHoliday:
		return "national_holiday"
	default:
		return "none"
	}
}

// Token returns the indicator text for k, or "" for NotHoliday.
func (k HolidayKind) Token() string {
	for _, ind := range holidayIndicators {
		if ind.kind == k {
			return ind.token
		}
	}
	return ""
}

// ClassifyHoliday reports the first holiday kind whose token is contained in label.
func ClassifyHoliday(label string) (HolidayKind, bool) {
	for _, ind := range holidayIndicators {
		if strings.Contains(label, ind.token) {
			return ind.kind, true
		}
	}
	return NotHoliday, false
}

// IsHoliday reports whether label contains any holiday indicator.
func IsHoliday(label string) bool {
	_, ok := ClassifyHoliday(label)
	return ok
}
