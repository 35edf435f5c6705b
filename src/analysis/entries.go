package analysis

import (
	"context"
	"slices"

	"fitness-spc/src/helpers"
	"fitness-spc/src/models"
)

// -----------------------------------------------------------------------------

// ValidateDailyStats checks a stats entry before it is stored.
func ValidateDailyStats(s models.MDailyStats) error {
	if _, err := models.ParseDate(s.Date); err != nil {
		return helpers.NewValidationError(err, "daily stats")
	}
	if s.Weight < 0 {
		return helpers.NewValidationError(nil, "weight cannot be negative (got %v)", s.Weight)
	}
	if s.ActiveCalories < 0 {
		return helpers.NewValidationError(nil, "active calories cannot be negative (got %d)", s.ActiveCalories)
	}
	if s.ExerciseMins < 0 {
		return helpers.NewValidationError(nil, "exercise minutes cannot be negative (got %d)", s.ExerciseMins)
	}
	if !slices.Contains(models.WorkoutTypes, s.WorkoutType) {
		return helpers.NewValidationError(nil, "workout type %q is not one of %v", s.WorkoutType, models.WorkoutTypes)
	}
	return nil
}

// -----------------------------------------------------------------------------

// ValidateNutrition checks a nutrition entry before it is stored.
func ValidateNutrition(n models.MNutrition) error {
	if _, err := models.ParseDate(n.Date); err != nil {
		return helpers.NewValidationError(err, "nutrition")
	}
	fields := []struct {
		name  string
		value int
	}{
		{models.MetricCaloriesIn, n.CaloriesIn},
		{models.MetricProtein, n.Protein},
		{models.MetricCarbs, n.Carbs},
		{models.MetricFat, n.Fat},
	}
	for _, f := range fields {
		if f.value < 0 {
			return helpers.NewValidationError(nil, "%s cannot be negative (got %d)", f.name, f.value)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// RecordDailyStats validates and upserts a stats entry.
func (a *AnalysisFacade) RecordDailyStats(ctx context.Context, s models.MDailyStats) error {
	if err := ValidateDailyStats(s); err != nil {
		return err
	}
	if err := a.DB.SaveDailyStats(ctx, s); err != nil {
		return helpers.NewDatabaseError(err, "save daily stats")
	}
	a.Logger.Info("Saved daily stats for %s", s.Date)
	return nil
}

// -----------------------------------------------------------------------------

// RecordNutrition validates and upserts a nutrition entry.
func (a *AnalysisFacade) RecordNutrition(ctx context.Context, n models.MNutrition) error {
	if err := ValidateNutrition(n); err != nil {
		return err
	}
	if err := a.DB.SaveNutrition(ctx, n); err != nil {
		return helpers.NewDatabaseError(err, "save nutrition")
	}
	a.Logger.Info("Saved nutrition for %s", n.Date)
	return nil
}
