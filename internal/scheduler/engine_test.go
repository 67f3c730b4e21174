package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Trigger{Tag: "later", FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Trigger{Tag: "sooner", FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitTrigger(t, engine.C(), time.Second)
	second := waitTrigger(t, engine.C(), time.Second)
	if first.Tag != "sooner" || second.Tag != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.Tag, second.Tag)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	fireAt := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(Trigger{Tag: "evt", FireAt: fireAt}); err != nil {
			t.Fatalf("schedule trigger: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped triggers > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesFireTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Trigger{Tag: "bad"}); err != ErrInvalidFireTime {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
}

func TestResetDiscardsPendingTriggers(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule(Trigger{Tag: "far", FireAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected 1 pending trigger, got %d", engine.Pending())
	}

	engine.Reset()
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue after reset, got %d", engine.Pending())
	}

	select {
	case tr := <-engine.C():
		t.Fatalf("cleared trigger fired anyway: %s", tr.Tag)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitTrigger(t *testing.T, ch <-chan Trigger, timeout time.Duration) Trigger {
	t.Helper()
	select {
	case tr := <-ch:
		return tr
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for trigger")
		return Trigger{}
	}
}
