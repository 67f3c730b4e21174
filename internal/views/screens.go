package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type CalendarDayData struct {
	Day        int
	InMonth    bool
	IsToday    bool
	IsCursor   bool
	EventCount int
	ColorValue string
}

type DayEventData struct {
	Time       string
	Title      string
	ColorValue string
	Selected   bool
}

type CalendarPanelData struct {
	Title     string
	Weeks     [][]CalendarDayData
	DayHeader string
	DayEvents []DayEventData
}

type ChatEntryData struct {
	Role string
	Text string
}

type ChatPanelData struct {
	Entries   []ChatEntryData
	InputView string
}

type FormFieldData struct {
	Label   string
	View    string
	Focused bool
}

type FormPanelData struct {
	Title  string
	Fields []FormFieldData
	Color  string
	Err    string
}

var weekdayHeader = "日  月  火  水  木  金  土"

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString("actions: [h/l]month [arrows]day [j/k]event [a]add [d]delete\n")
	b.WriteString(weekdayHeader + "\n")

	for _, week := range data.Weeks {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, renderDayCell(day))
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	if data.DayHeader != "" {
		b.WriteString("\n" + data.DayHeader + "\n")
		if len(data.DayEvents) == 0 {
			b.WriteString(dimStyle.Render("  (no events)") + "\n")
		}
		for _, ev := range data.DayEvents {
			line := "  " + ev.Time + " " + ev.Title
			if ev.ColorValue != "" {
				line = "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(ev.ColorValue)).Render("●") + " " + ev.Time + " " + ev.Title
			}
			if ev.Selected {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDayCell(day CalendarDayData) string {
	cell := fmt.Sprintf("%2d", day.Day)
	if day.EventCount > 0 {
		mark := "●"
		if day.ColorValue != "" {
			mark = lipgloss.NewStyle().Foreground(lipgloss.Color(day.ColorValue)).Render("●")
		}
		cell += mark
	} else {
		cell += " "
	}

	switch {
	case day.IsCursor:
		return cursorStyle.Render(cell)
	case day.IsToday:
		return todayStyle.Render(cell)
	case !day.InMonth:
		return dimStyle.Render(cell)
	default:
		return cell
	}
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	b.WriteString("chat:\n")
	b.WriteString("actions: [enter]send [1]calendar [?]help\n\n")

	for _, entry := range data.Entries {
		prefix := "アシスタント> "
		if entry.Role == "user" {
			prefix = "あなた> "
		}
		lines := strings.Split(entry.Text, "\n")
		b.WriteString(prefix + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(strings.Repeat(" ", len("> ")) + line + "\n")
		}
	}
	b.WriteString("\n" + data.InputView)
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString("actions: [tab]next field [enter]save [ctrl+o]color [esc]cancel\n")
	for _, field := range data.Fields {
		marker := "  "
		if field.Focused {
			marker = "> "
		}
		b.WriteString(marker + field.Label + ": " + field.View + "\n")
	}
	if data.Color != "" {
		b.WriteString("  color: " + data.Color + "\n")
	}
	if data.Err != "" {
		b.WriteString(errorStyle.Render("  "+data.Err) + "\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func RenderHelpPanel() string {
	return panelStyle.Render(RenderMarkdown(helpMarkdown))
}

const helpMarkdown = `# yotei

Keys:

- **1** calendar view, **2** chat view
- **h / l** previous / next month, arrows move the day cursor
- **j / k** select an event within the day, **a** add, **d** delete
- **?** toggle this help, **q** quit

Chat understands 「今日の予定」「明日の予定」「今週の予定」「予定を追加」
and 「使い方」.
`
