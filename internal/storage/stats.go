package storage

import (
	"context"
	"fmt"
	"time"
)

// CompletionStats holds aggregate statistics about a user's recorded completions.
type CompletionStats struct {
	ExercisesCompleted int64      `json:"exercises_completed"`
	DaysCompleted      int64      `json:"days_completed"`
	FirstCompletion    *time.Time `json:"first_completion"`
	LastCompletion     *time.Time `json:"last_completion"`
}

// GetCompletionStats returns aggregate statistics for a user's completions.
func (db *DB) GetCompletionStats(ctx context.Context, userID int) (*CompletionStats, error) {
	stats := &CompletionStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercise_completions WHERE user_id = $1`, userID,
	).Scan(&stats.ExercisesCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting exercise completions: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM day_completions WHERE user_id = $1`, userID,
	).Scan(&stats.DaysCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting day completions: %w", err)
	}

	// Date range across both tables
	err = db.Pool.QueryRow(ctx, `
		SELECT MIN(completed_at), MAX(completed_at) FROM (
			SELECT completed_at FROM exercise_completions WHERE user_id = $1
			UNION ALL
			SELECT completed_at FROM day_completions WHERE user_id = $1
		) c
	`, userID).Scan(&stats.FirstCompletion, &stats.LastCompletion)
	if err != nil {
		return nil, fmt.Errorf("querying completion range: %w", err)
	}

	return stats, nil
}
