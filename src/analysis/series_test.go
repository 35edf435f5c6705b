package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-spc/src/helpers"
	"fitness-spc/src/models"
)

func date(t *testing.T, s string) models.MObservation {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return models.MObservation{Date: d}
}

func TestPrepareSeriesSortsCopy(t *testing.T) {
	a, b, c := date(t, "2025-03-01"), date(t, "2025-03-02"), date(t, "2025-03-05")
	a.Value, b.Value, c.Value = 1, 2, 3
	in := []models.MObservation{c, a, b}

	series := PrepareSeries(models.MetricWeight, in)

	assert.Equal(t, models.MetricWeight, series.Metric)
	assert.Equal(t, []float64{1, 2, 3}, series.Values())
	assert.Equal(t, []models.MObservation{c, a, b}, in)
}

func TestPrepareSeriesEmpty(t *testing.T) {
	series := PrepareSeries(models.MetricWeight, nil)
	assert.Equal(t, 0, series.Len())
	assert.Empty(t, series.Values())
}

func TestSeriesFromDailyStats(t *testing.T) {
	rows := []models.MDailyStats{
		{Date: "2025-03-03", Weight: 80.5, ActiveCalories: 300},
		{Date: "2025-03-01", Weight: 81.0, ActiveCalories: 500},
	}

	weight, err := SeriesFromDailyStats(rows, models.MetricWeight)
	require.NoError(t, err)
	assert.Equal(t, []float64{81.0, 80.5}, weight.Values())

	active, err := SeriesFromDailyStats(rows, models.MetricActiveCalories)
	require.NoError(t, err)
	assert.Equal(t, []float64{500, 300}, active.Values())

	_, err = SeriesFromDailyStats(rows, models.MetricProtein)
	assert.ErrorIs(t, err, helpers.ErrUnknownMetric)

	_, err = SeriesFromDailyStats([]models.MDailyStats{{Date: "03/01/2025"}}, models.MetricWeight)
	assert.True(t, helpers.IsValidation(err))
}

func TestSeriesFromNutrition(t *testing.T) {
	rows := []models.MNutrition{
		{Date: "2025-03-02", CaloriesIn: 2100, Protein: 140},
		{Date: "2025-03-01", CaloriesIn: 1900, Protein: 120},
	}

	protein, err := SeriesFromNutrition(rows, models.MetricProtein)
	require.NoError(t, err)
	assert.Equal(t, []float64{120, 140}, protein.Values())

	_, err = SeriesFromNutrition(rows, models.MetricWeight)
	assert.ErrorIs(t, err, helpers.ErrUnknownMetric)
}

func TestJoinSeriesInner(t *testing.T) {
	d1, d2, d3, d4 := date(t, "2025-03-01"), date(t, "2025-03-02"), date(t, "2025-03-03"), date(t, "2025-03-04")

	l1, l2, l3 := d1, d2, d3
	l1.Value, l2.Value, l3.Value = 2000, 2200, 1800
	r2, r3, r4 := d2, d3, d4
	r2.Value, r3.Value, r4.Value = 300, 500, 700

	left := PrepareSeries(models.MetricCaloriesIn, []models.MObservation{l3, l1, l2})
	right := PrepareSeries(models.MetricActiveCalories, []models.MObservation{r4, r2, r3})

	joined := JoinSeries(left, right)
	require.Len(t, joined, 2)
	assert.Equal(t, d2.Date, joined[0].Date)
	assert.Equal(t, 2200.0, joined[0].Left)
	assert.Equal(t, 300.0, joined[0].Right)
	assert.Equal(t, d3.Date, joined[1].Date)
	assert.Equal(t, 1800.0, joined[1].Left)
	assert.Equal(t, 500.0, joined[1].Right)

	assert.Empty(t, JoinSeries(left, models.MSeries{}))
}
