package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/mkobaru/yotei/internal/dateutil"
	"github.com/mkobaru/yotei/internal/model"
)

const (
	// DefaultLead is how long before an event the pre-event reminder fires.
	DefaultLead = 10 * time.Minute
	// DefaultLookahead bounds how far ahead triggers are armed. Timers do
	// not survive long process suspensions; anything further out is left
	// for the periodic resync to pick up closer to its due time.
	DefaultLookahead = 24 * time.Hour

	preTitle = "まもなく予定の時間です⏰"
	atTitle  = "予定の時間になりました🔔"
)

// PlanTriggers computes the triggers to arm for events as of now: one
// pre-event and one at-time trigger per event, each kept only when its
// fire instant is strictly in the future and less than lookahead away.
func PlanTriggers(events []model.Event, now time.Time, lead, lookahead time.Duration) []Trigger {
	var out []Trigger
	for _, ev := range events {
		candidates := []struct {
			kind  Kind
			at    time.Time
			title string
			ack   bool
		}{
			{kind: KindPre, at: ev.Timestamp.Add(-lead), title: preTitle},
			{kind: KindAt, at: ev.Timestamp, title: atTitle, ack: true},
		}
		for _, c := range candidates {
			if !c.at.After(now) {
				continue
			}
			if c.at.Sub(now) >= lookahead {
				continue
			}
			out = append(out, Trigger{
				EventID:    ev.ID,
				Kind:       c.kind,
				Tag:        ev.ID + "-" + string(c.kind),
				FireAt:     c.at,
				Title:      c.title,
				Body:       triggerBody(ev),
				RequireAck: c.ack,
			})
		}
	}
	return out
}

func triggerBody(ev model.Event) string {
	body := dateutil.FormatTime(ev.Timestamp) + " " + ev.Title
	if ev.Description != "" {
		body += "\n" + ev.Description
	}
	return body
}

// Planner owns the set of currently armed triggers. Rearm is the single
// entry point: it clears and recomputes in one step relative to the
// planner's own state, so an unchanged event set rearms to the same tag
// set with no duplicates.
type Planner struct {
	engine    *Engine
	lead      time.Duration
	lookahead time.Duration

	mu    sync.Mutex
	armed map[string]Trigger
}

func NewPlanner(engine *Engine, lead, lookahead time.Duration) *Planner {
	if lead <= 0 {
		lead = DefaultLead
	}
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Planner{
		engine:    engine,
		lead:      lead,
		lookahead: lookahead,
		armed:     make(map[string]Trigger),
	}
}

// Rearm replaces every armed trigger with a fresh plan for events.
// Scheduling failures are skipped silently: reminders are an optional
// feature, never an error state.
func (p *Planner) Rearm(events []model.Event, now time.Time) []Trigger {
	p.mu.Lock()
	defer p.mu.Unlock()

	planned := PlanTriggers(events, now, p.lead, p.lookahead)
	p.engine.Reset()

	armed := make(map[string]Trigger, len(planned))
	for _, tr := range planned {
		if _, dup := armed[tr.Tag]; dup {
			continue
		}
		if err := p.engine.Schedule(tr); err != nil {
			continue
		}
		armed[tr.Tag] = tr
	}
	p.armed = armed
	return p.armedLocked()
}

// Armed returns the currently armed triggers ordered by tag.
func (p *Planner) Armed() []Trigger {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.armedLocked()
}

func (p *Planner) armedLocked() []Trigger {
	out := make([]Trigger, 0, len(p.armed))
	for _, tr := range p.armed {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
