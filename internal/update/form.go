package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mkobaru/yotei/internal/model"
	"github.com/mkobaru/yotei/internal/views"
)

const (
	formFieldTitle = iota
	formFieldDate
	formFieldTime
	formFieldDescription
	formFieldCount
)

var formLabels = [formFieldCount]string{"タイトル", "日付", "時刻", "メモ"}

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, formFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 120
		in.Width = 32
		inputs[i] = in
	}
	inputs[formFieldTitle].Placeholder = "ランチミーティング"
	inputs[formFieldDate].Placeholder = "2006-01-02"
	inputs[formFieldTime].Placeholder = "15:04"
	inputs[formFieldDescription].Placeholder = "(任意)"
	return inputs
}

func (m *Model) openForm(day time.Time) {
	m.Form = FormState{
		Active: true,
		Inputs: newFormInputs(),
	}
	m.Form.Inputs[formFieldDate].SetValue(day.Format("2006-01-02"))
	m.Form.Inputs[formFieldTitle].Focus()
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Form.Active = false
		m.Form.Err = ""
		return m, nil
	case "tab", "down":
		m.moveFormFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return m, nil
	case "ctrl+o":
		m.Form.ColorIdx = (m.Form.ColorIdx + 1) % len(model.Palette)
		return m, nil
	case "enter":
		return m.submitForm()
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Form.Inputs[m.Form.Focus], cmd = m.Form.Inputs[m.Form.Focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFormFocus(delta int) {
	m.Form.Inputs[m.Form.Focus].Blur()
	m.Form.Focus = (m.Form.Focus + delta + formFieldCount) % formFieldCount
	m.Form.Inputs[m.Form.Focus].Focus()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.Form.Inputs[formFieldTitle].Value())
	if title == "" {
		// An empty title is treated as "never mind", not an error.
		return m, nil
	}

	date := strings.TrimSpace(m.Form.Inputs[formFieldDate].Value())
	clock := strings.TrimSpace(m.Form.Inputs[formFieldTime].Value())
	if clock == "" {
		clock = "00:00"
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		m.Form.Err = "日付は 2006-01-02、時刻は 15:04 の形式で入力してください"
		return m, nil
	}

	ev := model.Event{
		ID:          uuid.NewString(),
		Title:       title,
		Timestamp:   ts,
		Description: strings.TrimSpace(m.Form.Inputs[formFieldDescription].Value()),
		ColorTag:    model.Palette[m.Form.ColorIdx].Name,
	}

	next := make([]model.Event, 0, len(m.Events)+1)
	next = append(next, m.Events...)
	next = append(next, ev)

	m.Form.Active = false
	m.Form.Err = ""
	cmd := m.applyEvents(next, "added: "+ev.Title)
	return m, cmd
}

func (m Model) formPanelData() views.FormPanelData {
	fields := make([]views.FormFieldData, 0, formFieldCount)
	for i, in := range m.Form.Inputs {
		fields = append(fields, views.FormFieldData{
			Label:   formLabels[i],
			View:    in.View(),
			Focused: i == m.Form.Focus,
		})
	}
	return views.FormPanelData{
		Title:  "予定を追加",
		Fields: fields,
		Color:  model.Palette[m.Form.ColorIdx].Name,
		Err:    m.Form.Err,
	}
}
