package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keynes-cross/internal/model"
)

func curveOf(label model.Label, grid model.IncomeGrid, f func(float64) float64) model.DemandCurve {
	c := model.DemandCurve{Label: label, Points: make([]model.Point, len(grid))}
	for i, y := range grid {
		c.Points[i] = model.Point{Income: y, Demand: f(y)}
	}
	return c
}

func TestFindEquilibriumInterpolates(t *testing.T) {
	grid := model.IncomeGrid{0, 10, 20, 30}
	// d = 12 - 0.5y: 12, 7, 2, -3.
	curve := curveOf(model.LabelC, grid, func(y float64) float64 { return 12 + 0.5*y })

	pt, ok := FindEquilibrium(grid, curve)
	require.True(t, ok)
	assert.Equal(t, model.LabelC, pt.Label)
	assert.InDelta(t, 24, pt.Income, 1e-12)
	assert.InDelta(t, 24, pt.Demand, 1e-12)
}

func TestFindEquilibriumExactSample(t *testing.T) {
	grid := model.IncomeGrid{0, 10, 20, 30}
	curve := curveOf(model.LabelCI, grid, func(y float64) float64 { return 10 + 0.5*y })

	pt, ok := FindEquilibrium(grid, curve)
	require.True(t, ok)
	assert.Equal(t, 20.0, pt.Income)
	assert.Equal(t, 20.0, pt.Demand)
}

func TestFindEquilibriumFirstCrossingWins(t *testing.T) {
	grid := model.IncomeGrid{0, 10, 20, 30, 40, 50}
	// Non-monotonic: above, below, above again.
	demand := []float64{5, 5, 25, 35, 30, 60}
	curve := model.DemandCurve{Label: model.LabelCIG, Points: make([]model.Point, len(grid))}
	for i, y := range grid {
		curve.Points[i] = model.Point{Income: y, Demand: demand[i]}
	}

	pt, ok := FindEquilibrium(grid, curve)
	require.True(t, ok)
	// d: 5, -5, ... first sign change between 0 and 10 at y = 5.
	assert.InDelta(t, 5, pt.Income, 1e-12)
}

func TestFindEquilibriumNotFound(t *testing.T) {
	grid := model.IncomeGrid{0, 10, 20}

	above := curveOf(model.LabelC, grid, func(y float64) float64 { return y + 1 })
	_, ok := FindEquilibrium(grid, above)
	assert.False(t, ok)

	below := curveOf(model.LabelC, grid, func(y float64) float64 { return y - 1 })
	_, ok = FindEquilibrium(grid, below)
	assert.False(t, ok)
}

func TestFindEquilibriumMismatchedLengths(t *testing.T) {
	grid := model.IncomeGrid{0, 10, 20}
	curve := curveOf(model.LabelC, model.IncomeGrid{0, 10}, func(y float64) float64 { return 5 })

	_, ok := FindEquilibrium(grid, curve)
	assert.False(t, ok)

	_, ok = FindEquilibrium(nil, model.DemandCurve{})
	assert.False(t, ok)
}
