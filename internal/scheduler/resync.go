package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mkobaru/yotei/internal/model"
)

// DefaultResyncSpec is the cadence at which armed triggers are rebuilt
// from the authoritative event collection.
const DefaultResyncSpec = "@every 30m"

// Source supplies the authoritative event collection. The resync never
// trusts a cached copy; it asks the owner every tick.
type Source interface {
	Events(ctx context.Context) ([]model.Event, error)
}

// Resync periodically rearms the planner from its source. It recovers
// triggers that fall inside the look-ahead window only after the last
// rearm, and rebuilds scheduling state after a restart.
type Resync struct {
	cron    *cron.Cron
	planner *Planner
	source  Source
	timeout time.Duration
}

func NewResync(planner *Planner, source Source, spec string) (*Resync, error) {
	if spec == "" {
		spec = DefaultResyncSpec
	}
	r := &Resync{
		cron:    cron.New(),
		planner: planner,
		source:  source,
		timeout: 10 * time.Second,
	}
	if _, err := r.cron.AddFunc(spec, r.tick); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resync) Start() {
	r.cron.Start()
}

func (r *Resync) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Resync) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_ = r.RunOnce(ctx)
}

// RunOnce performs a single resynchronization pass.
func (r *Resync) RunOnce(ctx context.Context) error {
	events, err := r.source.Events(ctx)
	if err != nil {
		return err
	}
	r.planner.Rearm(events, time.Now())
	return nil
}
