package interfaces

import (
	"context"

	"fitness-spc/src/models"
)

// -----------------------------------------------------------------------------
// IDatabase defines the contract for storage operations.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// -----------------------------------------------------------------------------

	// Initialize opens the connection and creates missing tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveDailyStats inserts or replaces the stats row for its date.
	SaveDailyStats(ctx context.Context, stats models.MDailyStats) error

	// -----------------------------------------------------------------------------

	// SaveNutrition inserts or replaces the nutrition row for its date.
	SaveNutrition(ctx context.Context, nutrition models.MNutrition) error

	// -----------------------------------------------------------------------------

	// LoadDailyStats returns every stats row ascending by date.
	LoadDailyStats(ctx context.Context) ([]models.MDailyStats, error)

	// -----------------------------------------------------------------------------

	// LoadNutrition returns every nutrition row ascending by date.
	LoadNutrition(ctx context.Context) ([]models.MNutrition, error)

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
