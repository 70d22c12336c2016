package simulation

import "keynes-cross/internal/model"

// Result is one model evaluation: four curves in label order and a parallel
// slice of equilibria.
type Result struct {
	Variant    model.Variant
	Params     model.Parameters
	Grid       model.IncomeGrid
	Curves     []model.DemandCurve
	Equilibria []model.Equilibrium
}

// Curve returns the curve with the given label.
func (r *Result) Curve(l model.Label) (model.DemandCurve, bool) {
	for _, c := range r.Curves {
		if c.Label == l {
			return c, true
		}
	}
	return model.DemandCurve{}, false
}

// Equilibrium returns the locator outcome for the given label.
func (r *Result) Equilibrium(l model.Label) (model.Equilibrium, bool) {
	for _, e := range r.Equilibria {
		if e.Label == l {
			return e, true
		}
	}
	return model.Equilibrium{}, false
}
