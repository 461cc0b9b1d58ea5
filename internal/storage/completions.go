package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/fitprogram/internal/progress"
)

// Compile-time check: *DB satisfies progress.Store.
var _ progress.Store = (*DB)(nil)

// Load returns everything the user has marked done.
func (db *DB) Load(ctx context.Context, userID int) (progress.CompletionState, error) {
	state := progress.NewCompletionState()

	rows, err := db.Pool.Query(ctx,
		`SELECT day, instance_id FROM exercise_completions WHERE user_id = $1`, userID)
	if err != nil {
		return state, fmt.Errorf("querying exercise completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day, id int
		if err := rows.Scan(&day, &id); err != nil {
			return state, fmt.Errorf("scanning exercise completion: %w", err)
		}
		state.Exercises[progress.Key(day, id)] = true
	}
	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("iterating exercise completions: %w", err)
	}

	dayRows, err := db.Pool.Query(ctx,
		`SELECT day FROM day_completions WHERE user_id = $1`, userID)
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

// SetExercise marks or clears one exercise instance. Marking is idempotent.
func (db *DB) SetExercise(ctx context.Context, userID, day, instanceID int, done bool) error {
	var err error
	if done {
		_, err = db.Pool.Exec(ctx, `
			INSERT INTO exercise_completions (user_id, day, instance_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, day, instance_id) DO NOTHING
		`, userID, day, instanceID)
	} else {
		_, err = db.Pool.Exec(ctx,
			`DELETE FROM exercise_completions WHERE user_id = $1 AND day = $2 AND instance_id = $3`,
			userID, day, instanceID)
	}
	if err != nil {
		return fmt.Errorf("setting exercise %d on day %d: %w", instanceID, day, err)
	}
	return nil
}

// SetDay marks or clears a whole day.
func (db *DB) SetDay(ctx context.Context, userID, day int, done bool) error {
	var err error
	if done {
		_, err = db.Pool.Exec(ctx, `
			INSERT INTO day_completions (user_id, day)
			VALUES ($1, $2)
			ON CONFLICT (user_id, day) DO NOTHING
		`, userID, day)
	} else {
		_, err = db.Pool.Exec(ctx,
			`DELETE FROM day_completions WHERE user_id = $1 AND day = $2`, userID, day)
	}
	if err != nil {
		return fmt.Errorf("setting day %d: %w", day, err)
	}
	return nil
}

// Reset removes all of the user's completions in one transaction.
func (db *DB) Reset(ctx context.Context, userID int) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning reset: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM exercise_completions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clearing exercise completions: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM day_completions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clearing day completions: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}
	return nil
}
