package simulation

import "keynes-cross/internal/model"

// FindEquilibrium locates where curve crosses the identity line (demand == income).
//
// d(y_i) = AD(y_i) - y_i is scanned from the low end of the grid. An exact zero
// returns that sample; otherwise the first pair of neighbours with opposite signs
// is linearly interpolated. The second return value is false when d never
// changes sign, i.e. there is no equilibrium inside [grid[0], grid[n-1]].
func FindEquilibrium(grid model.IncomeGrid, curve model.DemandCurve) (model.EquilibriumPoint, bool) {
	if len(grid) == 0 || len(curve.Points) != len(grid) {
		return model.EquilibriumPoint{}, false
	}

	prev := curve.Points[0].Demand - grid[0]
	if prev == 0 {
		return model.EquilibriumPoint{Label: curve.Label, Income: grid[0], Demand: curve.Points[0].Demand}, true
	}

	for i := 1; i < len(grid); i++ {
		ad := curve.Points[i].Demand
		d := ad - grid[i]
		if d == 0 {
			return model.EquilibriumPoint{Label: curve.Label, Income: grid[i], Demand: ad}, true
		}
		if (prev < 0) != (d < 0) {
			frac := prev / (prev - d)
			adPrev := curve.Points[i-1].Demand
			return model.EquilibriumPoint{
				Label:  curve.Label,
				Income: grid[i-1] + frac*(grid[i]-grid[i-1]),
				Demand: adPrev + frac*(ad-adPrev),
			}, true
		}
		prev = d
	}
	return model.EquilibriumPoint{}, false
}
