package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fitness-spc/src/logger"
	"fitness-spc/src/models"

	"github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) (*PostgresDB, error) {
	schema := cfg.Storage.Schema
	if schema == "" {
		// Fall back to the executable name, as a per-install namespace
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable name: %w", err)
		}
		schema = filepath.Base(exe)
		schema = strings.TrimSuffix(schema, filepath.Ext(schema))
	}

	return &PostgresDB{
		Config: cfg,
		Schema: schema,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

// table returns the schema-qualified, quoted table name.
func (d *PostgresDB) table(name string) string {
	return pq.QuoteIdentifier(d.Schema) + "." + pq.QuoteIdentifier(name)
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	// Retries are the caller's; one attempt here
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}

	d.DB = db

	// Create Schema
	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pq.QuoteIdentifier(d.Schema))); err != nil {
		d.closeOnFailure()
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	if err := d.createTables(); err != nil {
		d.closeOnFailure()
		return err
	}

	d.Logger.Info("PostgresDB initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

// closeOnFailure drops a handle opened by a failed Initialize so the next
// attempt starts clean.
func (d *PostgresDB) closeOnFailure() {
	d.DB.Close()
	d.DB = nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			date DATE PRIMARY KEY,
			weight DOUBLE PRECISION,
			active_calories INTEGER,
			exercise_mins INTEGER,
			workout_type TEXT
		);
	`, d.table("daily_stats"))
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create daily_stats: %w", err)
	}

	query = fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			date DATE PRIMARY KEY,
			calories_in INTEGER,
			protein INTEGER,
			carbs INTEGER,
			fat INTEGER
		);
	`, d.table("nutrition"))
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create nutrition: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SaveDailyStats(ctx context.Context, s models.MDailyStats) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (date, weight, active_calories, exercise_mins, workout_type)
		VALUES ($1::date, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			weight = EXCLUDED.weight,
			active_calories = EXCLUDED.active_calories,
			exercise_mins = EXCLUDED.exercise_mins,
			workout_type = EXCLUDED.workout_type
	`, d.table("daily_stats"))
	if _, err := d.DB.ExecContext(ctx, query, s.Date, s.Weight, s.ActiveCalories, s.ExerciseMins, s.WorkoutType); err != nil {
		return fmt.Errorf("failed to save daily_stats for %s: %w", s.Date, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SaveNutrition(ctx context.Context, n models.MNutrition) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (date, calories_in, protein, carbs, fat)
		VALUES ($1::date, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			calories_in = EXCLUDED.calories_in,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat
	`, d.table("nutrition"))
	if _, err := d.DB.ExecContext(ctx, query, n.Date, n.CaloriesIn, n.Protein, n.Carbs, n.Fat); err != nil {
		return fmt.Errorf("failed to save nutrition for %s: %w", n.Date, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) LoadDailyStats(ctx context.Context) ([]models.MDailyStats, error) {
	query := fmt.Sprintf(`
		SELECT to_char(date, 'YYYY-MM-DD'), COALESCE(weight, 0), COALESCE(active_calories, 0), COALESCE(exercise_mins, 0), COALESCE(workout_type, '')
		FROM %s ORDER BY date
	`, d.table("daily_stats"))
	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_stats: %w", err)
	}
	return scanDailyStats(rows)
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) LoadNutrition(ctx context.Context) ([]models.MNutrition, error) {
	query := fmt.Sprintf(`
		SELECT to_char(date, 'YYYY-MM-DD'), COALESCE(calories_in, 0), COALESCE(protein, 0), COALESCE(carbs, 0), COALESCE(fat, 0)
		FROM %s ORDER BY date
	`, d.table("nutrition"))
	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query nutrition: %w", err)
	}
	return scanNutrition(rows)
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
