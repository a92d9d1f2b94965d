package core

import "time"

const (
	Monthly Period = "monthly"
	Weekly  Period = "weekly"
	Yearly  Period = "yearly"
	Custom  Period = "custom"
)

type (
	Period string

	// DateRange is a closed interval over transaction dates.
	DateRange struct {
		Start time.Time
		End   time.Time
	}
)

func (p Period) Validate() error {
	switch p {
	case Monthly, Weekly, Yearly, Custom:
		return nil
	}
	return ErrInvalidDate
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// MonthRange returns the calendar month containing t.
func MonthRange(t time.Time) DateRange {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return DateRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// WeekRange returns the calendar week containing t, starting on weekStart.
func WeekRange(t time.Time, weekStart time.Weekday) DateRange {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -diff)
	return DateRange{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
}

// YearRange returns the calendar year containing t.
func YearRange(t time.Time) DateRange {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return DateRange{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
}

// RangeFor resolves a period kind to the concrete interval containing now.
// Custom resolves to the current month; callers with explicit bounds should
// build the DateRange themselves.
func RangeFor(p Period, now time.Time, weekStart time.Weekday) DateRange {
	switch p {
	case Weekly:
		return WeekRange(now, weekStart)
	case Yearly:
		return YearRange(now)
	default:
		return MonthRange(now)
	}
}

// PreviousRangeFor returns the immediately preceding period of the same kind,
// contiguous and non-overlapping with the current one.
func PreviousRangeFor(p Period, now time.Time, weekStart time.Weekday) DateRange {
	switch p {
	case Weekly:
		return WeekRange(now.AddDate(0, 0, -7), weekStart)
	case Yearly:
		return YearRange(now.AddDate(-1, 0, 0))
	default:
		return MonthRange(MonthRange(now).Start.AddDate(0, 0, -1))
	}
}
