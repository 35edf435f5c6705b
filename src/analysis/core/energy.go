package core

import "fitness-spc/src/models"

// DefaultBasalCalories is the basal burn assumed when none is configured.
const DefaultBasalCalories = 2000.0

// -----------------------------------------------------------------------------

// NetCalories is intake minus active burn minus basal burn.
func NetCalories(caloriesIn, activeCaloriesOut, basal float64) float64 {
	return caloriesIn - activeCaloriesOut - basal
}

// -----------------------------------------------------------------------------

// ComputeEnergyBalance computes net calories per joined date. Left of each
// point is calories in, Right is active calories out.
func ComputeEnergyBalance(joined []models.MJoinedPoint, basal float64) []models.MEnergyBalance {
	out := make([]models.MEnergyBalance, len(joined))
	for i, p := range joined {
		out[i] = models.MEnergyBalance{
			Date:              p.Date,
			CaloriesIn:        p.Left,
			ActiveCaloriesOut: p.Right,
			Basal:             basal,
			NetCalories:       NetCalories(p.Left, p.Right, basal),
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// NetCaloriesSeries turns an energy balance into an observation series.
func NetCaloriesSeries(balance []models.MEnergyBalance) []models.MObservation {
	obs := make([]models.MObservation, len(balance))
	for i, b := range balance {
		obs[i] = models.MObservation{Date: b.Date, Value: b.NetCalories}
	}
	return obs
}
