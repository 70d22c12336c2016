package simulation

import (
	"fmt"

	"keynes-cross/internal/model"
)

// components is the expenditure breakdown at one income level.
type components struct {
	Consumption float64
	NetExports  float64
}

// componentFunc evaluates consumption and net exports at gross income y.
type componentFunc func(p model.Parameters, y float64) components

// builders dispatches each variant to its closed-form component function.
var builders = map[model.Variant]componentFunc{
	model.VariantLumpSum:      lumpSumComponents,
	model.VariantProportional: proportionalComponents,
}

// Engine evaluates parameter sets over income grids. It holds no state and is safe for concurrent use.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Run evaluates the four partial aggregate-demand curves over grid and locates
// the 45-degree crossing of each one.
func (e *Engine) Run(params model.Parameters, grid model.IncomeGrid) (*Result, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	variant, err := params.Variant()
	if err != nil {
		return nil, err
	}
	eval, ok := builders[variant]
	if !ok {
		return nil, fmt.Errorf("no curve builder for model %q", variant)
	}

	// Copy so the result never aliases caller data.
	g := make(model.IncomeGrid, len(grid))
	copy(g, grid)

	labels := model.Labels()
	curves := make([]model.DemandCurve, len(labels))
	for i, l := range labels {
		curves[i] = model.DemandCurve{Label: l, Points: make([]model.Point, len(g))}
	}

	for idx, y := range g {
		c := eval(params, y)
		ci := c.Consumption + params.Investment
		cig := ci + params.GovernmentSpending
		cignx := cig + c.NetExports

		curves[0].Points[idx] = model.Point{Income: y, Demand: c.Consumption}
		curves[1].Points[idx] = model.Point{Income: y, Demand: ci}
		curves[2].Points[idx] = model.Point{Income: y, Demand: cig}
		curves[3].Points[idx] = model.Point{Income: y, Demand: cignx}
	}

	equilibria := make([]model.Equilibrium, len(curves))
	for i, c := range curves {
		pt, found := FindEquilibrium(g, c)
		equilibria[i] = model.Equilibrium{Label: c.Label, Found: found, Point: pt}
	}

	return &Result{
		Variant:    variant,
		Params:     params,
		Grid:       g,
		Curves:     curves,
		Equilibria: equilibria,
	}, nil
}

// validateGrid rejects grids that BuildGrid could not have produced.
func validateGrid(g model.IncomeGrid) error {
	if len(g) < 2 {
		return &model.DomainError{Lower: g.Lower(), Upper: g.Upper(), Count: len(g), Reason: "count must be >= 2"}
	}
	for i := 1; i < len(g); i++ {
		if !(g[i] > g[i-1]) {
			return &model.DomainError{Lower: g.Lower(), Upper: g.Upper(), Count: len(g), Reason: "grid must be strictly increasing"}
		}
	}
	return nil
}
