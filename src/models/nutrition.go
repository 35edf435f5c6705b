package models

// MNutrition is one row of the nutrition log, keyed by date.
type MNutrition struct {
	Date       string `json:"date"`
	CaloriesIn int    `json:"calories_in"`
	Protein    int    `json:"protein"`
	Carbs      int    `json:"carbs"`
	Fat        int    `json:"fat"`
}

// Column returns the numeric value of a nutrition column.
func (n MNutrition) Column(name string) (float64, bool) {
	switch name {
	case MetricCaloriesIn:
		return float64(n.CaloriesIn), true
	case MetricProtein:
		return float64(n.Protein), true
	case MetricCarbs:
		return float64(n.Carbs), true
	case MetricFat:
		return float64(n.Fat), true
	}
	return 0, false
}
