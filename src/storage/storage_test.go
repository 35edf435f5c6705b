package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-spc/src/interfaces"
	"fitness-spc/src/logger"
	"fitness-spc/src/models"
)

func quietLogger() *logger.Logger {
	l := logger.NewLogger("ERROR", "storage")
	l.SetOutput(&bytes.Buffer{})
	return l
}

func openSQLite(t *testing.T) *SQLiteDB {
	t.Helper()
	cfg := &models.MConfig{Storage: models.MStorageConfig{
		DBType: "sqlite",
		DBPath: filepath.Join(t.TempDir(), "fitness.db"),
	}}
	db, err := NewSQLiteDB(cfg, quietLogger())
	require.NoError(t, err)
	require.NoError(t, db.Initialize())
	t.Cleanup(func() { db.Close() })
	return db
}

// exerciseBackend runs the IDatabase contract against any backend.
func exerciseBackend(t *testing.T, db interfaces.IDatabase) {
	ctx := context.Background()

	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-04-03", Weight: 80.2, ActiveCalories: 350, ExerciseMins: 40, WorkoutType: models.WorkoutCardio}))
	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-04-01", Weight: 81.0, ActiveCalories: 500, ExerciseMins: 60, WorkoutType: models.WorkoutStrength}))
	// Same date replaces the earlier entry
	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-04-03", Weight: 80.0, ActiveCalories: 300, ExerciseMins: 30, WorkoutType: models.WorkoutYoga}))

	stats, err := db.LoadDailyStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MDailyStats{
		{Date: "2025-04-01", Weight: 81.0, ActiveCalories: 500, ExerciseMins: 60, WorkoutType: models.WorkoutStrength},
		{Date: "2025-04-03", Weight: 80.0, ActiveCalories: 300, ExerciseMins: 30, WorkoutType: models.WorkoutYoga},
	}, stats)

	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-04-02", CaloriesIn: 2300, Protein: 150, Carbs: 220, Fat: 70}))
	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-04-01", CaloriesIn: 2100, Protein: 140, Carbs: 200, Fat: 65}))
	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-04-02", CaloriesIn: 2400, Protein: 155, Carbs: 230, Fat: 75}))

	nutrition, err := db.LoadNutrition(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MNutrition{
		{Date: "2025-04-01", CaloriesIn: 2100, Protein: 140, Carbs: 200, Fat: 65},
		{Date: "2025-04-02", CaloriesIn: 2400, Protein: 155, Carbs: 230, Fat: 75},
	}, nutrition)
}

func TestSQLiteBackend(t *testing.T) {
	exerciseBackend(t, openSQLite(t))
}

func TestSQLiteEmptyTables(t *testing.T) {
	db := openSQLite(t)

	stats, err := db.LoadDailyStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)

	nutrition, err := db.LoadNutrition(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nutrition)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitness.db")
	cfg := &models.MConfig{Storage: models.MStorageConfig{DBType: "sqlite", DBPath: path}}
	ctx := context.Background()

	first, err := NewSQLiteDB(cfg, quietLogger())
	require.NoError(t, err)
	require.NoError(t, first.Initialize())
	require.NoError(t, first.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-04-01", Weight: 79.5}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteDB(cfg, quietLogger())
	require.NoError(t, err)
	require.NoError(t, second.Initialize())
	defer second.Close()

	stats, err := second.LoadDailyStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 79.5, stats[0].Weight)
}

func TestSQLiteCancelledContext(t *testing.T) {
	db := openSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.LoadDailyStats(ctx)
	assert.Error(t, err)
}

func TestSQLiteFailedInitializeReleasesHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.db")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 64), 0644))

	cfg := &models.MConfig{Storage: models.MStorageConfig{DBType: "sqlite", DBPath: path}}
	db, err := NewSQLiteDB(cfg, quietLogger())
	require.NoError(t, err)

	assert.Error(t, db.Initialize())
	assert.Nil(t, db.DB)
	assert.NoError(t, db.Close())
}

func TestPostgresInitializeMakesOneAttempt(t *testing.T) {
	cfg := &models.MConfig{Storage: models.MStorageConfig{
		DBType:             "postgres",
		DBConnectionString: "postgres://fitness@127.0.0.1:1/fitness?sslmode=disable&connect_timeout=2",
		Schema:             "fitness_spc_test",
		ConnectRetries:     3,
	}}
	db, err := NewPostgresDB(cfg, quietLogger())
	require.NoError(t, err)

	start := time.Now()
	assert.Error(t, db.Initialize())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Nil(t, db.DB)
}

func TestPostgresBackend(t *testing.T) {
	dsn := os.Getenv("FITNESS_SPC_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FITNESS_SPC_POSTGRES_DSN not set")
	}
	cfg := &models.MConfig{Storage: models.MStorageConfig{
		DBType:             "postgres",
		DBConnectionString: dsn,
		Schema:             "fitness_spc_test",
		ConnectRetries:     1,
	}}
	db, err := NewPostgresDB(cfg, quietLogger())
	require.NoError(t, err)
	require.NoError(t, db.Initialize())
	defer db.Close()

	_, err = db.DB.Exec(`TRUNCATE ` + db.table("daily_stats") + `, ` + db.table("nutrition"))
	require.NoError(t, err)

	exerciseBackend(t, db)
}

func TestNewSelectsBackend(t *testing.T) {
	db, err := New(&models.MConfig{Storage: models.MStorageConfig{DBType: "sqlite", DBPath: "x.db"}}, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteDB{}, db)

	db, err = New(&models.MConfig{Storage: models.MStorageConfig{DBType: "postgres", Schema: "s"}}, quietLogger())
	require.NoError(t, err)
	pg, ok := db.(*PostgresDB)
	require.True(t, ok)
	assert.Equal(t, `"s"."nutrition"`, pg.table("nutrition"))

	_, err = New(&models.MConfig{Storage: models.MStorageConfig{DBType: "mysql"}}, quietLogger())
	assert.Error(t, err)

	_, err = NewSQLiteDB(&models.MConfig{}, quietLogger())
	assert.Error(t, err)
}
