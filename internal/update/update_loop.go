package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkobaru/yotei/internal/dateutil"
	"github.com/mkobaru/yotei/internal/model"
	"github.com/mkobaru/yotei/internal/notify"
	"github.com/mkobaru/yotei/internal/scheduler"
	"github.com/mkobaru/yotei/internal/storage"
	"github.com/mkobaru/yotei/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Engine != nil {
		return waitForReminderCmd(m.Engine.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Form.Active {
			return m.handleFormKey(typed)
		}
		if m.CurrentView == ViewChat {
			return m.handleChatKey(typed)
		}

		switch typed.String() {
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Chat:
			m.CurrentView = ViewChat
			m.chatInput.Focus()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleCalendarKey(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text}
		return m, clearStatusAfter()

	case ClearStatusMsg:
		// Error statuses stay up until the next action replaces them.
		if !m.Status.IsError {
			m.Status = StatusBar{}
		}
		return m, nil

	case AppErrorMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case SaveDoneMsg:
		// Persistence is best-effort: the collection stays live in
		// memory for this session either way.
		return m, nil

	case ReminderDueMsg:
		m.ReminderLog = append(m.ReminderLog, typed.Trigger)
		if len(m.ReminderLog) > 20 {
			m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
		}
		m.Status = StatusBar{Text: typed.Trigger.Title + " " + typed.Trigger.Body}
		_ = m.Notifier.Send(notify.Notification{
			Title:      typed.Trigger.Title,
			Body:       typed.Trigger.Body,
			Tag:        typed.Trigger.Tag,
			RequireAck: typed.Trigger.RequireAck,
		})
		if m.Engine != nil {
			return m, waitForReminderCmd(m.Engine.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var body string
	switch {
	case m.HelpVisible:
		body = views.RenderHelpPanel()
	case m.Form.Active:
		body = views.RenderFormPanel(m.formPanelData())
	case m.CurrentView == ViewChat:
		body = views.RenderChatPanel(m.chatPanelData())
	default:
		body = views.RenderCalendarPanel(m.calendarPanelData())
	}

	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}
	return views.RenderApp(views.AppData{
		Header:     "yotei | カレンダーアシスタント",
		Body:       body,
		StatusLine: status,
		Footer:     "[1]calendar [2]chat [?]help [q]quit",
	})
}

// statusTTL is how long a non-error status line stays visible.
const statusTTL = 5 * time.Second

func setStatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Text: text}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func waitForReminderCmd(ch <-chan scheduler.Trigger) tea.Cmd {
	return func() tea.Msg {
		tr, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Trigger: tr}
	}
}

// applyEvents installs the replacement collection and fans out the
// reactions: publish to the bus, rearm reminders, persist. The save is
// fire-and-forget on purpose.
func (m *Model) applyEvents(events []model.Event, status string) tea.Cmd {
	m.Events = events
	if m.Bus != nil {
		m.Bus.Publish(events)
	}
	if m.Planner != nil {
		m.Planner.Rearm(events, m.now())
	}
	cmds := []tea.Cmd{setStatusCmd(status)}
	if m.Store != nil {
		cmds = append(cmds, saveCmd(m.Store, events))
	}
	return tea.Batch(cmds...)
}

func saveCmd(store storage.Store, events []model.Event) tea.Cmd {
	snapshot := make([]model.Event, len(events))
	copy(snapshot, events)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Save(ctx, snapshot); err != nil {
			return AppErrorMsg{Err: fmt.Errorf("save failed: %w", err)}
		}
		return SaveDoneMsg{}
	}
}

func (m Model) dayDetail() []model.Event {
	// The day detail sorts by time; the chat assistant deliberately
	// keeps collection order instead.
	return model.SortedByTime(dateutil.EventsOn(m.Events, m.Calendar.Cursor))
}
