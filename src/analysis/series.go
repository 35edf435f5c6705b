package analysis

import (
	"sort"

	"fitness-spc/src/analysis/core"
	"fitness-spc/src/helpers"
	"fitness-spc/src/models"
)

// -----------------------------------------------------------------------------

// PrepareSeries orders observations ascending by date. The input slice is
// copied, never reordered in place. Empty input yields an empty series.
func PrepareSeries(metric string, obs []models.MObservation) models.MSeries {
	return models.MSeries{
		Metric:       metric,
		Observations: core.SortByDate(obs),
	}
}

// -----------------------------------------------------------------------------

// SeriesFromDailyStats exposes one daily_stats column as a prepared series.
func SeriesFromDailyStats(rows []models.MDailyStats, column string) (models.MSeries, error) {
	if _, ok := (models.MDailyStats{}).Column(column); !ok {
		return models.MSeries{}, helpers.NewValidationError(helpers.ErrUnknownMetric, "%q is not a daily stats column", column)
	}

	obs := make([]models.MObservation, 0, len(rows))
	for _, r := range rows {
		d, err := models.ParseDate(r.Date)
		if err != nil {
			return models.MSeries{}, helpers.NewValidationError(err, "daily stats row")
		}
		v, _ := r.Column(column)
		obs = append(obs, models.MObservation{Date: d, Value: v})
	}
	return PrepareSeries(column, obs), nil
}

// -----------------------------------------------------------------------------

// SeriesFromNutrition exposes one nutrition column as a prepared series.
func SeriesFromNutrition(rows []models.MNutrition, column string) (models.MSeries, error) {
	if _, ok := (models.MNutrition{}).Column(column); !ok {
		return models.MSeries{}, helpers.NewValidationError(helpers.ErrUnknownMetric, "%q is not a nutrition column", column)
	}

	obs := make([]models.MObservation, 0, len(rows))
	for _, r := range rows {
		d, err := models.ParseDate(r.Date)
		if err != nil {
			return models.MSeries{}, helpers.NewValidationError(err, "nutrition row")
		}
		v, _ := r.Column(column)
		obs = append(obs, models.MObservation{Date: d, Value: v})
	}
	return PrepareSeries(column, obs), nil
}

// -----------------------------------------------------------------------------

// JoinSeries inner-joins two series on date. Only dates present in both
// survive; the result is ascending by date with left's value in Left.
func JoinSeries(left, right models.MSeries) []models.MJoinedPoint {
	rightByDay := make(map[string]float64, len(right.Observations))
	for _, o := range right.Observations {
		rightByDay[models.FormatDate(o.Date)] = o.Value
	}

	joined := make([]models.MJoinedPoint, 0)
	for _, o := range left.Observations {
		if v, ok := rightByDay[models.FormatDate(o.Date)]; ok {
			joined = append(joined, models.MJoinedPoint{Date: o.Date, Left: o.Value, Right: v})
		}
	}

	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].Date.Before(joined[j].Date)
	})
	return joined
}
