package storage

import (
	"context"
	"database/sql"
	"fmt"

	"fitness-spc/src/logger"
	"fitness-spc/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type SQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*SQLiteDB, error) {
	if cfg.Storage.DBPath == "" {
		return nil, fmt.Errorf("sqlite database path is empty")
	}
	return &SQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	// Open DB
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}

	// Single writer keeps INSERT OR REPLACE free of SQLITE_BUSY
	db.SetMaxOpenConns(1)
	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	if err := d.createTables(); err != nil {
		d.DB.Close()
		d.DB = nil
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) createTables() error {
	// One row per calendar day; date is stored as YYYY-MM-DD text
	query := `
		CREATE TABLE IF NOT EXISTS daily_stats (
			date TEXT PRIMARY KEY,
			weight REAL,
			active_calories INTEGER,
			exercise_mins INTEGER,
			workout_type TEXT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create daily_stats: %w", err)
	}

	query = `
		CREATE TABLE IF NOT EXISTS nutrition (
			date TEXT PRIMARY KEY,
			calories_in INTEGER,
			protein INTEGER,
			carbs INTEGER,
			fat INTEGER
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create nutrition: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) SaveDailyStats(ctx context.Context, s models.MDailyStats) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO daily_stats (date, weight, active_calories, exercise_mins, workout_type)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			weight = excluded.weight,
			active_calories = excluded.active_calories,
			exercise_mins = excluded.exercise_mins,
			workout_type = excluded.workout_type
	`, s.Date, s.Weight, s.ActiveCalories, s.ExerciseMins, s.WorkoutType)
	if err != nil {
		return fmt.Errorf("failed to save daily_stats for %s: %w", s.Date, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) SaveNutrition(ctx context.Context, n models.MNutrition) error {
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO nutrition (date, calories_in, protein, carbs, fat)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			calories_in = excluded.calories_in,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat
	`, n.Date, n.CaloriesIn, n.Protein, n.Carbs, n.Fat)
	if err != nil {
		return fmt.Errorf("failed to save nutrition for %s: %w", n.Date, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) LoadDailyStats(ctx context.Context) ([]models.MDailyStats, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, COALESCE(weight, 0), COALESCE(active_calories, 0), COALESCE(exercise_mins, 0), COALESCE(workout_type, '')
		FROM daily_stats ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_stats: %w", err)
	}
	return scanDailyStats(rows)
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) LoadNutrition(ctx context.Context) ([]models.MNutrition, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, COALESCE(calories_in, 0), COALESCE(protein, 0), COALESCE(carbs, 0), COALESCE(fat, 0)
		FROM nutrition ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nutrition: %w", err)
	}
	return scanNutrition(rows)
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
