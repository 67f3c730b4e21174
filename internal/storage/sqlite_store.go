package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkobaru/yotei/internal/model"
)

// eventsKey is the single fixed key the collection lives under.
const eventsKey = "events"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted collection. Missing or corrupt payloads
// fall back to the seed defaults instead of surfacing an error; only
// database access failures propagate.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.Event, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, eventsKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Seed(time.Now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	var events []model.Event
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return Seed(time.Now()), nil
	}
	return events, nil
}

// Save replaces the stored collection with events, idempotently.
func (s *SQLiteStore) Save(ctx context.Context, events []model.Event) error {
	if err := model.ValidateCollection(events); err != nil {
		return err
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		eventsKey, string(payload))
	if err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}
