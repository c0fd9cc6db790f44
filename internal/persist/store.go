package persist

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saves (
	slot     TEXT PRIMARY KEY,
	session  TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	body     BLOB NOT NULL
)`

// Store keeps states in named slots of a SQLite database.
type Store struct {
	sqlDB *sql.DB
}

// OpenStore opens (creating it if need be) a save database.
func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save writes a state into a slot, replacing what was there.
func (s *Store) Save(ctx context.Context, slot string, st *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if slot == "" {
		return fmt.Errorf("save slot is required")
	}
	if st.SavedAt.IsZero() {
		st.SavedAt = time.Now().UTC()
	}
	var buf bytes.Buffer
	if err := Encode(&buf, st); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO saves (slot, session, saved_at, body) VALUES (?, ?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
	session = excluded.session,
	saved_at = excluded.saved_at,
	body = excluded.body
`,
		slot,
		st.Session.String(),
		st.SavedAt.UTC().UnixMilli(),
		buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads the state in a slot; ok is false if the slot is empty.
func (s *Store) Load(ctx context.Context, slot string) (st *State, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var body []byte
	err = s.sqlDB.QueryRowContext(ctx, `SELECT body FROM saves WHERE slot = ?`, slot).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %q: %w", slot, err)
	}
	st, err = Decode(bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return st, true, nil
}

// Delete empties a slot; deleting an empty slot is not an error.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists the non-empty slots, most recently saved first.
func (s *Store) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT slot FROM saves ORDER BY saved_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("list slots: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}
