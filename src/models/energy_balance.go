package models

import "time"

// MEnergyBalance is the net calorie figure for one date.
type MEnergyBalance struct {
	Date              time.Time `json:"date"`
	CaloriesIn        float64   `json:"calories_in"`
	ActiveCaloriesOut float64   `json:"active_calories_out"`
	Basal             float64   `json:"basal"`
	NetCalories       float64   `json:"net_calories"`
}
