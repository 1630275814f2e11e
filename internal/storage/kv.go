package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// KV is the persistent key-value adapter backing all durable app state.
// Values are JSON-encoded so numbers, strings and string slices round-trip
// losslessly.
//
// Writes fail silently: a full or unavailable store logs a warning and drops
// the write rather than surfacing an error to domain code. Reads of missing
// or corrupt keys report absent. The application is never blocked by storage
// errors.
type KV struct {
	db  *sql.DB
	log *zap.Logger
}

func NewKV(db *sql.DB, log *zap.Logger) *KV {
	if log == nil {
		log = zap.NewNop()
	}
	return &KV{db: db, log: log}
}

// Get loads the value stored under key into out. It returns false when the
// key is absent or its stored value cannot be decoded.
func (s *KV) Get(ctx context.Context, key string, out any) bool {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn("kv read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("kv value corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores v under key, replacing any prior value.
func (s *KV) Set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("kv encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		s.log.Warn("kv write failed", zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes key. Missing keys are not an error.
func (s *KV) Remove(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("kv delete failed", zap.String("key", key), zap.Error(err))
	}
}

// SetMany writes several keys inside one transaction so a multi-field record
// is not torn by a crash mid-update. Same silent-fail contract as Set.
func (s *KV) SetMany(ctx context.Context, values map[string]any) {
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for key, v := range values {
			raw, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encode %s: %w", key, err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, string(raw)); err != nil {
				return fmt.Errorf("write %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("kv batch write failed", zap.Error(err))
	}
}
