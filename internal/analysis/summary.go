package analysis

import (
	"math"

	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"
)

// CurveSummary is a per-curve diagnostic you can show next to a chart.
// It does not feed back into the locator; ClosedFormIncome is only there to
// show how far the interpolated crossing is from the analytic root.
type CurveSummary struct {
	Label model.Label

	// AD(y) = Intercept + Slope*y for every curve both models produce.
	Intercept float64
	Slope     float64

	// Multiplier is 1/(1-Slope). HasMultiplier is false when Slope == 1.
	Multiplier    float64
	HasMultiplier bool

	// ClosedFormIncome solves y = Intercept + Slope*y, ignoring the grid.
	ClosedFormIncome float64

	Located            model.Equilibrium
	InterpolationError float64
}

// Summary bundles the diagnostics of one simulation result.
type Summary struct {
	Variant model.Variant
	Curves  []CurveSummary
}

// Summarize derives slope, intercept and multiplier for each curve in r.
func Summarize(r *simulation.Result) Summary {
	s := Summary{Variant: r.Variant, Curves: make([]CurveSummary, 0, len(r.Curves))}
	lines := affineLines(r.Variant, r.Params)

	for _, eq := range r.Equilibria {
		ln, ok := lines[eq.Label]
		if !ok {
			continue
		}
		cs := CurveSummary{
			Label:     eq.Label,
			Intercept: ln.intercept,
			Slope:     ln.slope,
			Located:   eq,
		}
		if ln.slope != 1 {
			cs.HasMultiplier = true
			cs.Multiplier = 1 / (1 - ln.slope)
			cs.ClosedFormIncome = ln.intercept * cs.Multiplier
			if eq.Found {
				cs.InterpolationError = math.Abs(eq.Point.Income - cs.ClosedFormIncome)
			}
		}
		s.Curves = append(s.Curves, cs)
	}
	return s
}

// Headline returns the summary of the full C+I+G+NX curve.
func (s Summary) Headline() (CurveSummary, bool) {
	for _, c := range s.Curves {
		if c.Label == model.LabelCIGNX {
			return c, true
		}
	}
	return CurveSummary{}, false
}

type line struct {
	intercept float64
	slope     float64
}

func affineLines(v model.Variant, p model.Parameters) map[model.Label]line {
	var c, nx line
	switch v {
	case model.VariantLumpSum:
		tax := 0.0
		if t, ok := p.Tax.(model.LumpSumTax); ok {
			tax = t.Amount
		}
		c = line{intercept: p.AutonomousConsumption - tax, slope: p.MarginalPropensityToConsume}
		if tr, ok := p.Trade.(model.NetExportsFixed); ok {
			nx = line{intercept: tr.Value}
		}
	case model.VariantProportional:
		keep := 1 - p.Tax.(model.ProportionalTax).Rate
		flows := p.Trade.(model.TradeFlows)
		c = line{intercept: p.AutonomousConsumption, slope: p.MarginalPropensityToConsume * keep}
		nx = line{intercept: flows.Exports, slope: -flows.MarginalPropensityToImport * keep}
	default:
		return nil
	}

	ci := line{intercept: c.intercept + p.Investment, slope: c.slope}
	cig := line{intercept: ci.intercept + p.GovernmentSpending, slope: c.slope}
	return map[model.Label]line{
		model.LabelC:     c,
		model.LabelCI:    ci,
		model.LabelCIG:   cig,
		model.LabelCIGNX: {intercept: cig.intercept + nx.intercept, slope: cig.slope + nx.slope},
	}
}
