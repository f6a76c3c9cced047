package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
)

// BlockingStore is a blocking.Store persisted in the settings table.
//
// Reads are served from an in-memory copy. Writes go to SQLite first; a
// failed write is logged and the in-memory flag still changes.
type BlockingStore struct {
	db     *DB
	logger *slog.Logger

	enabled atomic.Bool
	writeMu sync.Mutex
}

// NewBlockingStore loads the persisted flag, seeding it with defaultEnabled
// on first use.
func NewBlockingStore(db *DB, defaultEnabled bool, logger *slog.Logger) (*BlockingStore, error) {
	s := &BlockingStore{db: db, logger: logger}

	raw, err := db.GetSetting(SettingBlockingEnabled)
	switch {
	case errors.Is(err, ErrSettingNotFound):
		if err := db.SetSetting(SettingBlockingEnabled, strconv.FormatBool(defaultEnabled)); err != nil {
			return nil, err
		}
		s.enabled.Store(defaultEnabled)
	case err != nil:
		return nil, err
	default:
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", SettingBlockingEnabled, raw, err)
		}
		s.enabled.Store(enabled)
	}

	return s, nil
}

// Enabled returns the current flag.
func (s *BlockingStore) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled persists and applies the flag.
func (s *BlockingStore) SetEnabled(enabled bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.db.SetSetting(SettingBlockingEnabled, strconv.FormatBool(enabled)); err != nil && s.logger != nil {
		s.logger.Error("failed to persist blocking flag", "enabled", enabled, "err", err)
	}
	s.enabled.Store(enabled)
}
