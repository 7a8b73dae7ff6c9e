package report

import (
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

// Period is a symbolic date-range selector applied before aggregation.
type Period string

const (
	PeriodCurrentMonth Period = "current_month"
	PeriodLastMonth    Period = "last_month"
	PeriodCurrentYear  Period = "current_year"
	PeriodAll          Period = "all"
	PeriodCustom       Period = "custom"
)

// ValidPeriod reports whether p is a known selector.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodCurrentMonth, PeriodLastMonth, PeriodCurrentYear, PeriodAll, PeriodCustom:
		return true
	}
	return false
}

// DateRange is a resolved inclusive interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve turns a period selector into a concrete interval against the
// caller's clock. Month and year boundaries come from now's local calendar;
// nothing is timezone-normalized or stored. The second return is false when
// the selector imposes no bounds: "all", an unknown selector, or "custom"
// without both dates.
func Resolve(p Period, now time.Time, start, end model.Date) (DateRange, bool) {
	loc := now.Location()
	switch p {
	case PeriodCurrentMonth:
		return DateRange{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc),
			End:   time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 999999999, loc),
		}, true
	case PeriodLastMonth:
		return DateRange{
			Start: time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc),
			End:   time.Date(now.Year(), now.Month(), 0, 23, 59, 59, 999999999, loc),
		}, true
	case PeriodCurrentYear:
		return DateRange{
			Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc),
			End:   time.Date(now.Year(), 12, 31, 23, 59, 59, 999999999, loc),
		}, true
	case PeriodCustom:
		if start.IsZero() || end.IsZero() {
			return DateRange{}, false
		}
		return DateRange{
			Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
			End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location()),
		}, true
	}
	return DateRange{}, false
}

// FilterByPeriod keeps the transactions whose date falls inside the resolved
// interval. An unbounded selector returns the input unchanged.
func FilterByPeriod(transactions []model.Transaction, p Period, now time.Time, start, end model.Date) []model.Transaction {
	r, bounded := Resolve(p, now, start, end)
	if !bounded {
		return transactions
	}
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date.IsZero() {
			continue
		}
		if r.Contains(t.Date.Time) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
