package core

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	r := MonthRange(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if r.Start != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("start = %v", r.Start)
	}
	if !r.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end of month not contained")
	}
	if r.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("next month contained")
	}
}

func TestWeekRangeStartsOnConfiguredDay(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	wed := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	sun := WeekRange(wed, time.Sunday)
	if sun.Start.Weekday() != time.Sunday || sun.Start.Day() != 7 {
		t.Fatalf("sunday week start = %v", sun.Start)
	}

	mon := WeekRange(wed, time.Monday)
	if mon.Start.Weekday() != time.Monday || mon.Start.Day() != 8 {
		t.Fatalf("monday week start = %v", mon.Start)
	}
}

func TestPreviousRangeFor(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	prev := PreviousRangeFor(Monthly, now, time.Sunday)
	if prev.Start != time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("previous month start = %v", prev.Start)
	}

	cur := RangeFor(Monthly, now, time.Sunday)
	if !prev.End.Before(cur.Start) {
		t.Fatalf("previous period overlaps current")
	}
	if cur.Start.Sub(prev.End) > time.Second {
		t.Fatalf("previous period not contiguous with current")
	}

	prevYear := PreviousRangeFor(Yearly, now, time.Sunday)
	if prevYear.Start.Year() != 2023 || prevYear.End.Year() != 2023 {
		t.Fatalf("previous year = %v .. %v", prevYear.Start, prevYear.End)
	}
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2024, 5, 20, 13, 45, 12, 0, time.UTC)
	if StartOfDay(ts).Hour() != 0 {
		t.Fatalf("start of day = %v", StartOfDay(ts))
	}
	end := EndOfDay(ts)
	if end.Day() != 20 || end.Hour() != 23 {
		t.Fatalf("end of day = %v", end)
	}
}
