// Package notify presents system notifications. Delivery is best-effort:
// a failing or absent presenter is not an error state for callers.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// Notification carries one user-visible alert. Tag is a stable dedup
// key: re-sending the same tag replaces a still-pending notification
// instead of stacking a duplicate.
type Notification struct {
	Title      string
	Body       string
	Tag        string
	RequireAck bool
}

type Notifier interface {
	Send(Notification) error
}

// Noop is used when notifications are disabled or unavailable.
type Noop struct{}

func (Noop) Send(Notification) error { return nil }

// Exec shells out to the platform notification command.
type Exec struct{}

func (Exec) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		args := []string{"-a", "yotei"}
		if n.Tag != "" {
			args = append(args, "-h", "string:x-canonical-private-synchronous:"+n.Tag)
		}
		if n.RequireAck {
			args = append(args, "-u", "critical")
		}
		args = append(args, n.Title, n.Body)
		return exec.Command("notify-send", args...).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`,
			escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Send(n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
