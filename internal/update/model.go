package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mkobaru/yotei/internal/bus"
	"github.com/mkobaru/yotei/internal/model"
	"github.com/mkobaru/yotei/internal/notify"
	"github.com/mkobaru/yotei/internal/scheduler"
	"github.com/mkobaru/yotei/internal/storage"
)

type View string

const (
	ViewCalendar View = "Calendar"
	ViewChat     View = "Chat"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Calendar string
	Chat     string
	Help     string
	Quit     string
}

type ChatEntry struct {
	Role string
	Text string
}

type ChatState struct {
	Entries []ChatEntry
}

type CalendarState struct {
	Focus       time.Time
	Cursor      time.Time
	EventCursor int
}

type FormState struct {
	Active   bool
	Inputs   []textinput.Model
	Focus    int
	ColorIdx int
	Err      string
}

type Model struct {
	CurrentView View
	Events      []model.Event
	Calendar    CalendarState
	Chat        ChatState
	Form        FormState
	Engine      *scheduler.Engine
	Planner     *scheduler.Planner
	Bus         *bus.Bus
	Store       storage.Store
	Notifier    notify.Notifier
	ReminderLog []scheduler.Trigger
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	chatInput   textinput.Model
	now         func() time.Time
}

type SetStatusMsg struct {
	Text string
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SaveDoneMsg acknowledges a successful background save. Failures
// arrive as AppErrorMsg instead.
type SaveDoneMsg struct{}

type ReminderDueMsg struct {
	Trigger scheduler.Trigger
}

// Runtime bundles the collaborators wired up in main. Everything is
// optional: a zero Runtime yields a model that works purely in memory,
// which is also how the tests drive it.
type Runtime struct {
	Events   []model.Event
	Engine   *scheduler.Engine
	Planner  *scheduler.Planner
	Bus      *bus.Bus
	Store    storage.Store
	Notifier notify.Notifier
	Now      func() time.Time
}

func NewModel(events []model.Event) Model {
	return NewModelWithRuntime(Runtime{Events: events})
}

func NewModelWithRuntime(rt Runtime) Model {
	now := rt.Now
	if now == nil {
		now = time.Now
	}
	var notifier notify.Notifier = notify.Noop{}
	if rt.Notifier != nil {
		notifier = rt.Notifier
	}

	chatInput := textinput.New()
	chatInput.Placeholder = "予定について聞いてみてください…"
	chatInput.CharLimit = 200
	chatInput.Width = 48

	today := now()
	m := Model{
		CurrentView: ViewCalendar,
		Events:      rt.Events,
		Calendar: CalendarState{
			Focus:  today,
			Cursor: today,
		},
		Chat: ChatState{
			Entries: []ChatEntry{
				{Role: "assistant", Text: "こんにちは！予定のことなら何でも聞いてくださいね。"},
			},
		},
		Engine:   rt.Engine,
		Planner:  rt.Planner,
		Bus:      rt.Bus,
		Store:    rt.Store,
		Notifier: notifier,
		Keys: GlobalKeyMap{
			Calendar: "1",
			Chat:     "2",
			Help:     "?",
			Quit:     "q",
		},
		chatInput: chatInput,
		now:       now,
	}
	m.Form.Inputs = newFormInputs()
	return m
}
