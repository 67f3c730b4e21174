package dateutil

import (
	"testing"
	"time"

	"github.com/mkobaru/yotei/internal/model"
)

func TestMonthGridIsAlwaysFullWeeks(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		anchor := time.Date(2026, month, 15, 9, 30, 0, 0, time.Local)
		grid := MonthGrid(anchor)

		if len(grid)%7 != 0 {
			t.Fatalf("%s: grid length %d is not a multiple of 7", month, len(grid))
		}
		if grid[0].Weekday() != time.Sunday {
			t.Fatalf("%s: grid starts on %s, want Sunday", month, grid[0].Weekday())
		}
		if grid[len(grid)-1].Weekday() != time.Saturday {
			t.Fatalf("%s: grid ends on %s, want Saturday", month, grid[len(grid)-1].Weekday())
		}
	}
}

func TestMonthGridCoversWholeMonth(t *testing.T) {
	anchor := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)
	grid := MonthGrid(anchor)

	seen := make(map[int]bool)
	for _, d := range grid {
		if d.Month() == time.February {
			seen[d.Day()] = true
		}
	}
	for day := 1; day <= 28; day++ {
		if !seen[day] {
			t.Fatalf("grid is missing February %d", day)
		}
	}
}

func TestWeekRangeStartsOnSunday(t *testing.T) {
	// 2026-02-11 is a Wednesday.
	day := time.Date(2026, 2, 11, 15, 0, 0, 0, time.Local)
	start, end := WeekRange(day)

	if start.Weekday() != time.Sunday {
		t.Fatalf("start weekday = %s, want Sunday", start.Weekday())
	}
	if got := start.Format("2006-01-02"); got != "2026-02-08" {
		t.Fatalf("start = %s, want 2026-02-08", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-02-14" {
		t.Fatalf("end = %s, want 2026-02-14", got)
	}
	if !SameDay(day, start.AddDate(0, 0, 3)) {
		t.Fatal("day is not inside its own week range")
	}
}

func TestEventsOnPreservesCollectionOrder(t *testing.T) {
	day := time.Date(2026, 2, 9, 0, 0, 0, 0, time.Local)
	events := []model.Event{
		{ID: "b", Title: "Later first", Timestamp: day.Add(15 * time.Hour)},
		{ID: "a", Title: "Earlier second", Timestamp: day.Add(9 * time.Hour)},
		{ID: "c", Title: "Other day", Timestamp: day.AddDate(0, 0, 1)},
	}

	got := EventsOn(events, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("collection order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFormatTimeIs24Hour(t *testing.T) {
	ts := time.Date(2026, 2, 9, 19, 5, 0, 0, time.Local)
	if got := FormatTime(ts); got != "19:05" {
		t.Fatalf("FormatTime = %q, want 19:05", got)
	}
}

func TestSameDayIgnoresClockTime(t *testing.T) {
	a := time.Date(2026, 2, 9, 0, 0, 1, 0, time.Local)
	b := time.Date(2026, 2, 9, 23, 59, 0, 0, time.Local)
	c := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatal("expected same day for a and b")
	}
	if SameDay(b, c) {
		t.Fatal("expected different days for b and c")
	}
}
