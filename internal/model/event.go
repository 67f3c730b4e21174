package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var ErrDuplicateID = errors.New("model: duplicate event id")

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
	ColorTag    string    `json:"colorTag,omitempty"`
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("model: event title is required")
	}
	if e.Timestamp.IsZero() {
		return errors.New("model: event timestamp is required")
	}
	return nil
}

// Color resolves the event's palette entry. Absent or unrecognized tags
// fall back to the first palette color.
func (e Event) Color() Color {
	return ColorByName(e.ColorTag)
}

// ValidateCollection checks every event and the cross-collection
// invariant that ids are unique.
func ValidateCollection(events []Event) error {
	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			return err
		}
		if seen[ev.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, ev.ID)
		}
		seen[ev.ID] = true
	}
	return nil
}

// SortedByTime returns a copy ordered by timestamp. Collection order
// itself carries no meaning; day-detail views sort through this.
func SortedByTime(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
