package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkobaru/yotei/internal/assistant"
	"github.com/mkobaru/yotei/internal/views"
)

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.CurrentView = ViewCalendar
		m.chatInput.Blur()
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.chatInput.Value())
		if input == "" {
			return m, nil
		}
		m.chatInput.SetValue("")

		m.Chat.Entries = append(m.Chat.Entries, ChatEntry{Role: "user", Text: input})
		reply := assistant.Respond(input, m.Events, m.now())
		m.Chat.Entries = append(m.Chat.Entries, ChatEntry{Role: "assistant", Text: reply.Text})

		if reply.Action != nil && reply.Action.Type == assistant.ActionAdd {
			return m, setStatusCmd("カレンダー画面で [a] を押すと予定を追加できます")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) chatPanelData() views.ChatPanelData {
	entries := make([]views.ChatEntryData, 0, len(m.Chat.Entries))
	for _, entry := range m.Chat.Entries {
		entries = append(entries, views.ChatEntryData{Role: entry.Role, Text: entry.Text})
	}
	return views.ChatPanelData{
		Entries:   entries,
		InputView: m.chatInput.View(),
	}
}
