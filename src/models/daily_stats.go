package models

// Workout types accepted for a daily stats entry.
const (
	WorkoutStrength = "Strength"
	WorkoutCardio   = "Cardio"
	WorkoutYoga     = "Yoga"
	WorkoutRest     = "Rest"
)

// WorkoutTypes lists the accepted workout types in display order.
var WorkoutTypes = []string{WorkoutStrength, WorkoutCardio, WorkoutYoga, WorkoutRest}

// MDailyStats is one row of the physical stats log, keyed by date.
type MDailyStats struct {
	Date           string  `json:"date"`
	Weight         float64 `json:"weight"`
	ActiveCalories int     `json:"active_calories"`
	ExerciseMins   int     `json:"exercise_mins"`
	WorkoutType    string  `json:"workout_type"`
}

// Column returns the numeric value of a daily_stats column.
func (s MDailyStats) Column(name string) (float64, bool) {
	switch name {
	case MetricWeight:
		return s.Weight, true
	case MetricActiveCalories:
		return float64(s.ActiveCalories), true
	case MetricExerciseMins:
		return float64(s.ExerciseMins), true
	}
	return 0, false
}
