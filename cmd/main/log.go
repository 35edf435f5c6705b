package main

import (
	"fmt"
	"time"

	"fitness-spc/src/models"

	"github.com/spf13/cobra"
)

var (
	logDate      string
	statsEntry   models.MDailyStats
	nutritionRow models.MNutrition
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a daily entry",
}

// -----------------------------------------------------------------------------

var logStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Record weight, activity and workout for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		statsEntry.Date = entryDate()
		if err := analyzer.RecordDailyStats(cmd.Context(), statsEntry); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s daily stats for %s\n", green("✓ Saved"), statsEntry.Date)
		return nil
	},
}

// -----------------------------------------------------------------------------

var logNutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Record calories and macros for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		nutritionRow.Date = entryDate()
		if err := analyzer.RecordNutrition(cmd.Context(), nutritionRow); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s nutrition for %s\n", green("✓ Saved"), nutritionRow.Date)
		return nil
	},
}

// -----------------------------------------------------------------------------

// entryDate defaults to today in local time.
func entryDate() string {
	if logDate != "" {
		return logDate
	}
	return time.Now().Format(models.DateLayout)
}

func init() {
	logCmd.PersistentFlags().StringVarP(&logDate, "date", "d", "", "entry date (YYYY-MM-DD, default today)")

	logStatsCmd.Flags().Float64VarP(&statsEntry.Weight, "weight", "w", 0, "body weight")
	logStatsCmd.Flags().IntVar(&statsEntry.ActiveCalories, "active-calories", 0, "active calories burned")
	logStatsCmd.Flags().IntVar(&statsEntry.ExerciseMins, "exercise-mins", 0, "minutes of exercise")
	logStatsCmd.Flags().StringVarP(&statsEntry.WorkoutType, "workout", "t", models.WorkoutRest, "workout type (Strength, Cardio, Yoga, Rest)")
	logStatsCmd.MarkFlagRequired("weight")

	logNutritionCmd.Flags().IntVar(&nutritionRow.CaloriesIn, "calories", 0, "calories eaten")
	logNutritionCmd.Flags().IntVar(&nutritionRow.Protein, "protein", 0, "protein grams")
	logNutritionCmd.Flags().IntVar(&nutritionRow.Carbs, "carbs", 0, "carbohydrate grams")
	logNutritionCmd.Flags().IntVar(&nutritionRow.Fat, "fat", 0, "fat grams")
	logNutritionCmd.MarkFlagRequired("calories")

	logCmd.AddCommand(logStatsCmd, logNutritionCmd)
	rootCmd.AddCommand(logCmd)
}
