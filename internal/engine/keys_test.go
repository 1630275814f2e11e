package engine

import (
	"testing"
	"time"
)

func TestDayKeySameDay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	if DayKey(morning) != DayKey(night) {
		t.Fatalf("same day produced different keys: %q vs %q", DayKey(morning), DayKey(night))
	}
	next := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	if DayKey(morning) == DayKey(next) {
		t.Fatalf("different days produced equal key %q", DayKey(morning))
	}
}

func TestWeekKeyStartsMonday(t *testing.T) {
	// 2026-03-09 is a Monday.
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	if got := WeekKey(monday); got != "2026-03-09" {
		t.Fatalf("WeekKey(monday)=%q, want 2026-03-09", got)
	}

	// Every day through the following Sunday shares the key.
	for d := 0; d < 7; d++ {
		day := monday.AddDate(0, 0, d)
		if got := WeekKey(day); got != "2026-03-09" {
			t.Fatalf("WeekKey(%s)=%q, want 2026-03-09", day.Weekday(), got)
		}
	}

	// Sunday counts as offset 6, not the start of a new week.
	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local)
	if got := WeekKey(sunday); got != "2026-03-09" {
		t.Fatalf("WeekKey(sunday)=%q, want 2026-03-09", got)
	}

	nextMonday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)
	if WeekKey(nextMonday) == WeekKey(monday) {
		t.Fatalf("next week shares key %q", WeekKey(monday))
	}
}
