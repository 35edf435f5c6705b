package models

// Metric names. Each stored metric is a column of one source table.
const (
	MetricWeight         = "weight"
	MetricActiveCalories = "active_calories"
	MetricExerciseMins   = "exercise_mins"
	MetricCaloriesIn     = "calories_in"
	MetricProtein        = "protein"
	MetricCarbs          = "carbs"
	MetricFat            = "fat"
	MetricNetCalories    = "net_calories"
)

// Metric sources.
const (
	SourceDailyStats = "daily_stats"
	SourceNutrition  = "nutrition"
	SourceDerived    = "derived"
)

// KnownMetrics maps every metric name to the table (or derivation) it comes from.
var KnownMetrics = map[string]string{
	MetricWeight:         SourceDailyStats,
	MetricActiveCalories: SourceDailyStats,
	MetricExerciseMins:   SourceDailyStats,
	MetricCaloriesIn:     SourceNutrition,
	MetricProtein:        SourceNutrition,
	MetricCarbs:          SourceNutrition,
	MetricFat:            SourceNutrition,
	MetricNetCalories:    SourceDerived,
}

// -----------------------------------------------------------------------------

// MMetricPolicy holds the analysis settings that apply to one metric.
// ClampLCL floors the individuals-chart lower limit at zero; it is meant for
// quantities that cannot go negative.
type MMetricPolicy struct {
	Name     string   `json:"name"`
	Source   string   `json:"source"`
	ClampLCL bool     `json:"clamp_lcl"`
	LSL      *float64 `json:"lsl,omitempty"`
	USL      *float64 `json:"usl,omitempty"`
}
