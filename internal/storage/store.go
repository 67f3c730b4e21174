package storage

import (
	"context"

	"github.com/mkobaru/yotei/internal/model"
)

// Store persists the full event collection under a single key. There
// are no partial updates: callers operate on the in-memory collection
// and persist via full replace.
type Store interface {
	Load(ctx context.Context) ([]model.Event, error)
	Save(ctx context.Context, events []model.Event) error
}
