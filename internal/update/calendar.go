package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkobaru/yotei/internal/dateutil"
	"github.com/mkobaru/yotei/internal/model"
	"github.com/mkobaru/yotei/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h":
		m.shiftMonth(-1)
	case "l":
		m.shiftMonth(1)
	case "left":
		m.shiftDay(-1)
	case "right":
		m.shiftDay(1)
	case "up":
		m.shiftDay(-7)
	case "down":
		m.shiftDay(7)
	case "j":
		if n := len(m.dayDetail()); n > 0 && m.Calendar.EventCursor < n-1 {
			m.Calendar.EventCursor++
		}
	case "k":
		if m.Calendar.EventCursor > 0 {
			m.Calendar.EventCursor--
		}
	case "t":
		today := m.now()
		m.Calendar.Focus = today
		m.Calendar.Cursor = today
		m.Calendar.EventCursor = 0
	case "a":
		m.openForm(m.Calendar.Cursor)
	case "d":
		cmd := m.deleteSelectedEvent()
		return m, cmd
	}
	return m, nil
}

func (m *Model) shiftMonth(delta int) {
	m.Calendar.Focus = m.Calendar.Focus.AddDate(0, delta, 0)
	m.Calendar.Cursor = m.Calendar.Cursor.AddDate(0, delta, 0)
	m.Calendar.EventCursor = 0
}

func (m *Model) shiftDay(delta int) {
	m.Calendar.Cursor = m.Calendar.Cursor.AddDate(0, 0, delta)
	m.Calendar.Focus = m.Calendar.Cursor
	m.Calendar.EventCursor = 0
}

func (m *Model) deleteSelectedEvent() tea.Cmd {
	day := m.dayDetail()
	if len(day) == 0 {
		return setStatusCmd("no event selected")
	}
	idx := m.Calendar.EventCursor
	if idx >= len(day) {
		idx = len(day) - 1
	}
	target := day[idx]

	next := make([]model.Event, 0, len(m.Events)-1)
	for _, ev := range m.Events {
		if ev.ID != target.ID {
			next = append(next, ev)
		}
	}
	m.Calendar.EventCursor = 0
	return m.applyEvents(next, fmt.Sprintf("deleted: %s", target.Title))
}

func (m Model) calendarPanelData() views.CalendarPanelData {
	today := m.now()
	grid := dateutil.MonthGrid(m.Calendar.Focus)

	weeks := make([][]views.CalendarDayData, 0, len(grid)/7)
	for i := 0; i < len(grid); i += 7 {
		week := make([]views.CalendarDayData, 0, 7)
		for _, d := range grid[i : i+7] {
			dayEvents := dateutil.EventsOn(m.Events, d)
			cell := views.CalendarDayData{
				Day:        d.Day(),
				InMonth:    d.Month() == m.Calendar.Focus.Month(),
				IsToday:    dateutil.SameDay(d, today),
				IsCursor:   dateutil.SameDay(d, m.Calendar.Cursor),
				EventCount: len(dayEvents),
			}
			if len(dayEvents) > 0 {
				cell.ColorValue = dayEvents[0].Color().Value
			}
			week = append(week, cell)
		}
		weeks = append(weeks, week)
	}

	day := m.dayDetail()
	selected := m.Calendar.EventCursor
	if selected >= len(day) {
		selected = len(day) - 1
	}
	dayEvents := make([]views.DayEventData, 0, len(day))
	for i, ev := range day {
		dayEvents = append(dayEvents, views.DayEventData{
			Time:       dateutil.FormatTime(ev.Timestamp),
			Title:      ev.Title,
			ColorValue: ev.Color().Value,
			Selected:   i == selected,
		})
	}

	cursor := m.Calendar.Cursor
	return views.CalendarPanelData{
		Title: fmt.Sprintf("%d年%d月", m.Calendar.Focus.Year(), int(m.Calendar.Focus.Month())),
		Weeks: weeks,
		DayHeader: fmt.Sprintf("%d/%d(%s) の予定", int(cursor.Month()), cursor.Day(),
			dateutil.WeekdayKanji(cursor.Weekday())),
		DayEvents: dayEvents,
	}
}
