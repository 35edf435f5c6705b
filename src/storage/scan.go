package storage

import (
	"database/sql"
	"fmt"

	"fitness-spc/src/models"
)

// Row scanning shared by the SQLite and Postgres backends. Both select the
// columns in table order with NULLs coalesced.

// -----------------------------------------------------------------------------

func scanDailyStats(rows *sql.Rows) ([]models.MDailyStats, error) {
	defer rows.Close()

	out := make([]models.MDailyStats, 0)
	for rows.Next() {
		var s models.MDailyStats
		if err := rows.Scan(&s.Date, &s.Weight, &s.ActiveCalories, &s.ExerciseMins, &s.WorkoutType); err != nil {
			return nil, fmt.Errorf("failed to scan daily_stats row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily_stats: %w", err)
	}
	return out, nil
}

// -----------------------------------------------------------------------------

func scanNutrition(rows *sql.Rows) ([]models.MNutrition, error) {
	defer rows.Close()

	out := make([]models.MNutrition, 0)
	for rows.Next() {
		var n models.MNutrition
		if err := rows.Scan(&n.Date, &n.CaloriesIn, &n.Protein, &n.Carbs, &n.Fat); err != nil {
			return nil, fmt.Errorf("failed to scan nutrition row: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nutrition: %w", err)
	}
	return out, nil
}
