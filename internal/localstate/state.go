// Package localstate keeps completion state in a SQLite file for the CLI,
// where no PostgreSQL server is available.
package localstate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
)

// StateDB stores completions in <dir>/state.db.
type StateDB struct {
	db *sql.DB
}

// Compile-time check: *StateDB satisfies progress.Store.
var _ progress.Store = (*StateDB)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS exercise_completions (
	user_id      INTEGER NOT NULL,
	day          INTEGER NOT NULL,
	instance_id  INTEGER NOT NULL,
	completed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, day, instance_id)
);
CREATE TABLE IF NOT EXISTS day_completions (
	user_id      INTEGER NOT NULL,
	day          INTEGER NOT NULL,
	completed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, day)
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Open opens (or creates) the SQLite state database at dir/state.db.
func Open(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	// One writer at a time; SQLite would otherwise report SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state tables: %w", err)
	}

	return &StateDB{db: db}, nil
}

// Load returns everything the user has marked done.
func (s *StateDB) Load(ctx context.Context, userID int) (progress.CompletionState, error) {
	state := progress.NewCompletionState()

	rows, err := s.db.QueryContext(ctx,
		`SELECT day, instance_id FROM exercise_completions WHERE user_id = ?`, userID)
	if err != nil {
		return state, fmt.Errorf("querying exercise completions: %w", err)
	}
	for rows.Next() {
		var day, id int
		if err := rows.Scan(&day, &id); err != nil {
			rows.Close()
			return state, fmt.Errorf("scanning exercise completion: %w", err)
		}
		state.Exercises[progress.Key(day, id)] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("iterating exercise completions: %w", err)
	}

	dayRows, err := s.db.QueryContext(ctx,
		`SELECT day FROM day_completions WHERE user_id = ?`, userID)
	if err != nil {
		return state, fmt.Errorf("querying day completions: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var day int
		if err := dayRows.Scan(&day); err != nil {
			return state, fmt.Errorf("scanning day completion: %w", err)
		}
		state.Days[day] = true
	}
	if err := dayRows.Err(); err != nil {
		return state, fmt.Errorf("iterating day completions: %w", err)
	}
	return state, nil
}

// SetExercise marks or clears one exercise instance.
func (s *StateDB) SetExercise(ctx context.Context, userID, day, instanceID int, done bool) error {
	var err error
	if done {
		_, err = s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO exercise_completions (user_id, day, instance_id) VALUES (?, ?, ?)`,
			userID, day, instanceID)
	} else {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM exercise_completions WHERE user_id = ? AND day = ? AND instance_id = ?`,
			userID, day, instanceID)
	}
	if err != nil {
		return fmt.Errorf("setting exercise %d on day %d: %w", instanceID, day, err)
	}
	return nil
}

// SetDay marks or clears a whole day.
func (s *StateDB) SetDay(ctx context.Context, userID, day int, done bool) error {
	var err error
	if done {
		_, err = s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO day_completions (user_id, day) VALUES (?, ?)`, userID, day)
	} else {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM day_completions WHERE user_id = ? AND day = ?`, userID, day)
	}
	if err != nil {
		return fmt.Errorf("setting day %d: %w", day, err)
	}
	return nil
}

// Reset removes all of the user's completions.
func (s *StateDB) Reset(ctx context.Context, userID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM exercise_completions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing exercise completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM day_completions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing day completions: %w", err)
	}
	return tx.Commit()
}

// CheckFingerprint records fp as the program the stored completions refer
// to. It reports whether a different fingerprint was recorded before, in
// which case instance ids in the store may point at other exercises.
func (s *StateDB) CheckFingerprint(ctx context.Context, fp string) (changed bool, err error) {
	var prev string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'program'`).Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("reading program fingerprint: %w", err)
	}
	if prev == fp {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('program', ?)`, fp)
	if err != nil {
		return false, fmt.Errorf("writing program fingerprint: %w", err)
	}
	return prev != "", nil
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// Fingerprint computes the SHA-256 hash of the program's JSON encoding.
func Fingerprint(p *program.Program) (string, error) {
	data, err := json.Marshal(p.Workouts())
	if err != nil {
		return "", fmt.Errorf("encoding program: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
