package model

// Label identifies which expenditure components a demand curve includes.
// Keep these values stable; they are intended for CSV and API output.
type Label string

const (
	LabelC     Label = "C"
	LabelCI    Label = "C+I"
	LabelCIG   Label = "C+I+G"
	LabelCIGNX Label = "C+I+G+NX"
)

// Labels lists curve labels in their fixed presentation order.
func Labels() []Label {
	return []Label{LabelC, LabelCI, LabelCIG, LabelCIGNX}
}

// Point is one (income, aggregate demand) sample.
type Point struct {
	Income float64
	Demand float64
}

// DemandCurve is parallel in length and index to the IncomeGrid it was built on.
type DemandCurve struct {
	Label  Label
	Points []Point
}

// Demand returns the aggregate-demand values in grid order.
func (c DemandCurve) Demand() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Demand
	}
	return out
}

// EquilibriumPoint is where a demand curve crosses the 45-degree line.
type EquilibriumPoint struct {
	Label  Label
	Income float64
	Demand float64
}

// Equilibrium is the locator outcome for one curve.
// Found is false when the curve does not cross the identity line within the grid.
type Equilibrium struct {
	Label Label
	Found bool
	Point EquilibriumPoint
}
