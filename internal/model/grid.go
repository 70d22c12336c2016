package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default income domain used by both simulations.
const (
	DefaultGridLower   = 0.0
	DefaultGridUpper   = 700.0
	DefaultGridSamples = 100
)

// IncomeGrid is a strictly increasing, evenly spaced sequence of income values.
type IncomeGrid []float64

// BuildGrid samples count evenly spaced incomes over [lower, upper].
// The first element is exactly lower and the last exactly upper.
func BuildGrid(lower, upper float64, count int) (IncomeGrid, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return nil, &DomainError{Lower: lower, Upper: upper, Count: count, Reason: "bounds must be finite"}
	}
	if lower >= upper {
		return nil, &DomainError{Lower: lower, Upper: upper, Count: count, Reason: "lower must be < upper"}
	}
	if count < 2 {
		return nil, &DomainError{Lower: lower, Upper: upper, Count: count, Reason: "count must be >= 2"}
	}
	g := floats.Span(make([]float64, count), lower, upper)
	g[0] = lower
	g[count-1] = upper
	return IncomeGrid(g), nil
}

// DefaultGrid is [0, 700] sampled 100 times.
func DefaultGrid() IncomeGrid {
	g, _ := BuildGrid(DefaultGridLower, DefaultGridUpper, DefaultGridSamples)
	return g
}

// Lower returns the first grid value, or 0 for an empty grid.
func (g IncomeGrid) Lower() float64 {
	if len(g) == 0 {
		return 0
	}
	return g[0]
}

// Upper returns the last grid value, or 0 for an empty grid.
func (g IncomeGrid) Upper() float64 {
	if len(g) == 0 {
		return 0
	}
	return g[len(g)-1]
}

// Spacing is the distance between adjacent samples.
func (g IncomeGrid) Spacing() float64 {
	if len(g) < 2 {
		return 0
	}
	return (g.Upper() - g.Lower()) / float64(len(g)-1)
}
