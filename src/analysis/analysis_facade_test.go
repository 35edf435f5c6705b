package analysis

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-spc/src/helpers"
	"fitness-spc/src/logger"
	"fitness-spc/src/models"
)

// memoryDB is an in-memory IDatabase keyed by date.
type memoryDB struct {
	stats     map[string]models.MDailyStats
	nutrition map[string]models.MNutrition
	loadErr   error
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		stats:     make(map[string]models.MDailyStats),
		nutrition: make(map[string]models.MNutrition),
	}
}

func (m *memoryDB) Initialize() error { return nil }
func (m *memoryDB) Close() error      { return nil }

func (m *memoryDB) SaveDailyStats(_ context.Context, s models.MDailyStats) error {
	m.stats[s.Date] = s
	return nil
}

func (m *memoryDB) SaveNutrition(_ context.Context, n models.MNutrition) error {
	m.nutrition[n.Date] = n
	return nil
}

func (m *memoryDB) LoadDailyStats(context.Context) ([]models.MDailyStats, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	rows := make([]models.MDailyStats, 0, len(m.stats))
	for _, s := range m.stats {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

func (m *memoryDB) LoadNutrition(context.Context) ([]models.MNutrition, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	rows := make([]models.MNutrition, 0, len(m.nutrition))
	for _, n := range m.nutrition {
		rows = append(rows, n)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

func ptr(v float64) *float64 { return &v }

func newTestFacade(t *testing.T, cfg *models.MConfig) (*AnalysisFacade, *memoryDB) {
	t.Helper()
	if cfg == nil {
		cfg = &models.MConfig{Name: "test"}
	}
	log := logger.NewLogger("DEBUG", "analysis")
	log.SetOutput(&bytes.Buffer{})
	db := newMemoryDB()
	return NewAnalysisFacade(cfg, db, log), db
}

func seedWeights(db *memoryDB, weights ...float64) {
	for i, w := range weights {
		d := models.FormatDate(mustDate("2025-01-01").AddDate(0, 0, i))
		db.stats[d] = models.MDailyStats{Date: d, Weight: w, ActiveCalories: 400 + 10*i, WorkoutType: models.WorkoutCardio}
	}
}

func mustDate(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildMetricPolicies(t *testing.T) {
	cfg := models.MAnalysisConfig{Metrics: map[string]models.MMetricConfig{
		models.MetricWeight:      {LSL: ptr(70), USL: ptr(85)},
		models.MetricProtein:     {ClampLCL: new(bool)},
		models.MetricNetCalories: {},
	}}

	policies := BuildMetricPolicies(cfg)
	require.Len(t, policies, len(models.KnownMetrics))

	assert.True(t, policies[models.MetricWeight].ClampLCL)
	assert.Equal(t, 70.0, *policies[models.MetricWeight].LSL)
	assert.False(t, policies[models.MetricProtein].ClampLCL)
	assert.False(t, policies[models.MetricNetCalories].ClampLCL)
	assert.True(t, policies[models.MetricFat].ClampLCL)
	assert.Equal(t, models.SourceNutrition, policies[models.MetricFat].Source)
}

func TestIMRReport(t *testing.T) {
	f, db := newTestFacade(t, nil)
	seedWeights(db, 100, 102, 101, 105, 103)

	report, err := f.IMRReport(context.Background(), models.MetricWeight)
	require.NoError(t, err)

	assert.Equal(t, models.StatusOK, report.Status)
	require.NotNil(t, report.Limits)
	assert.InDelta(t, 108.185, report.Limits.UCL, 1e-9)
	assert.Len(t, report.Points, 5)
	assert.Nil(t, report.Points[0].MovingRange)
	assert.Empty(t, report.Signals)
}

func TestIMRReportInsufficientData(t *testing.T) {
	f, db := newTestFacade(t, nil)
	seedWeights(db, 150)

	report, err := f.IMRReport(context.Background(), models.MetricWeight)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInsufficientData, report.Status)
	assert.Nil(t, report.Limits)
	assert.Len(t, report.Points, 1)
}

func TestIMRReportUnknownMetric(t *testing.T) {
	f, _ := newTestFacade(t, nil)

	_, err := f.IMRReport(context.Background(), "steps")
	assert.ErrorIs(t, err, helpers.ErrUnknownMetric)
	assert.True(t, helpers.IsValidation(err))
}

func TestIMRReportSurfacesStorageErrors(t *testing.T) {
	f, db := newTestFacade(t, nil)
	db.loadErr = errors.New("disk gone")

	_, err := f.IMRReport(context.Background(), models.MetricWeight)
	var dbErr *helpers.DatabaseError
	require.True(t, errors.As(err, &dbErr))
	assert.Contains(t, err.Error(), "disk gone")
}

func TestCapabilityReport(t *testing.T) {
	cfg := &models.MConfig{Analysis: models.MAnalysisConfig{Metrics: map[string]models.MMetricConfig{
		models.MetricWeight: {LSL: ptr(95), USL: ptr(110)},
	}}}
	f, db := newTestFacade(t, cfg)
	seedWeights(db, 100, 102, 101, 105, 103)
	ctx := context.Background()

	report, err := f.CapabilityReport(ctx, models.MetricWeight, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, report.Capability)
	assert.Equal(t, models.StatusOK, report.Status)
	assert.InDelta(t, 1.30, report.Capability.Cp, 1e-9)
	assert.InDelta(t, 1.25, report.Capability.Cpk, 1e-9)

	override, err := f.CapabilityReport(ctx, models.MetricWeight, ptr(90), nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, override.LSL)
	assert.Equal(t, 110.0, override.USL)

	_, err = f.CapabilityReport(ctx, models.MetricWeight, ptr(120), nil)
	assert.ErrorIs(t, err, helpers.ErrInvalidSpecLimits)

	_, err = f.CapabilityReport(ctx, models.MetricProtein, nil, nil)
	assert.ErrorIs(t, err, helpers.ErrInvalidSpecLimits)
}

func TestCapabilityReportInsufficientData(t *testing.T) {
	f, db := newTestFacade(t, nil)
	seedWeights(db, 150, 151, 149, 150)

	report, err := f.CapabilityReport(context.Background(), models.MetricWeight, ptr(140), ptr(160))
	require.NoError(t, err)
	assert.Equal(t, models.StatusInsufficientData, report.Status)
	assert.Nil(t, report.Capability)
	assert.Equal(t, 4, report.Points)
}

func TestEnergyBalanceReport(t *testing.T) {
	f, db := newTestFacade(t, nil)
	ctx := context.Background()

	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-01-01", Weight: 80, ActiveCalories: 500}))
	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-01-02", Weight: 80.4, ActiveCalories: 300}))
	require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: "2025-01-03", Weight: 80.1, ActiveCalories: 450}))
	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-01-02", CaloriesIn: 2600}))
	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-01-03", CaloriesIn: 2100}))
	require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: "2025-01-04", CaloriesIn: 2400}))

	report, err := f.EnergyBalanceReport(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, report.Basal)
	require.Len(t, report.Days, 2)
	assert.Equal(t, "2025-01-02", models.FormatDate(report.Days[0].Date))
	assert.Equal(t, 300.0, report.Days[0].NetCalories)
	assert.Equal(t, -350.0, report.Days[1].NetCalories)
	require.NotNil(t, report.WeightCorrelation)
	assert.InDelta(t, 1.0, *report.WeightCorrelation, 1e-9)

	custom, err := f.EnergyBalanceReport(ctx, ptr(1500))
	require.NoError(t, err)
	assert.Equal(t, 800.0, custom.Days[0].NetCalories)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = f.EnergyBalanceReport(ctx, ptr(bad))
		assert.True(t, helpers.IsValidation(err), "basal %v", bad)
	}
}

func TestNetCaloriesMetricIsNotClamped(t *testing.T) {
	f, db := newTestFacade(t, nil)
	ctx := context.Background()
	for i, in := range []int{1200, 1500, 1100, 1400} {
		d := models.FormatDate(mustDate("2025-02-01").AddDate(0, 0, i))
		require.NoError(t, db.SaveDailyStats(ctx, models.MDailyStats{Date: d, Weight: 70, ActiveCalories: 200}))
		require.NoError(t, db.SaveNutrition(ctx, models.MNutrition{Date: d, CaloriesIn: in}))
	}

	report, err := f.IMRReport(ctx, models.MetricNetCalories)
	require.NoError(t, err)
	require.NotNil(t, report.Limits)
	assert.Less(t, report.Limits.LCL, 0.0)
	assert.False(t, report.Limits.LCLClamped)
}

func TestAffectedMetrics(t *testing.T) {
	f, _ := newTestFacade(t, nil)

	assert.Equal(t,
		[]string{models.MetricActiveCalories, models.MetricExerciseMins, models.MetricNetCalories, models.MetricWeight},
		f.AffectedMetrics(models.SourceDailyStats))
	assert.Equal(t,
		[]string{models.MetricCaloriesIn, models.MetricCarbs, models.MetricFat, models.MetricNetCalories, models.MetricProtein},
		f.AffectedMetrics(models.SourceNutrition))
}

func TestReportsFor(t *testing.T) {
	f, db := newTestFacade(t, nil)
	seedWeights(db, 80, 81, 80.5)

	reports, err := f.ReportsFor(context.Background(), []string{models.MetricWeight, models.MetricActiveCalories})
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, models.StatusOK, reports[models.MetricActiveCalories].Status)
}
