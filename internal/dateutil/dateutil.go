// Package dateutil holds the calendar math shared by the month view and
// the chat assistant. Weeks start on Sunday.
package dateutil

import (
	"time"

	"github.com/mkobaru/yotei/internal/model"
)

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthGrid returns every date from the Sunday on or before the first of
// the anchor's month through the Saturday on or after its last day. The
// result length is always a multiple of 7.
func MonthGrid(anchor time.Time) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	grid := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, d)
	}
	return grid
}

// WeekRange returns the Sunday-start 7-day window containing day. Start
// is the Sunday at midnight, end is the following Saturday at midnight.
func WeekRange(day time.Time) (time.Time, time.Time) {
	start := StartOfDay(day).AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// EventsOn filters events whose timestamp falls on the same calendar day
// as day, preserving collection order.
func EventsOn(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if SameDay(ev.Timestamp, day) {
			out = append(out, ev)
		}
	}
	return out
}

// FormatTime renders t as 24-hour HH:mm.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayKanji returns the single-character Japanese weekday abbreviation.
func WeekdayKanji(d time.Weekday) string {
	return weekdayKanji[d]
}
