package analysis

import (
	"sort"

	"keynes-cross/internal/simulation"
)

type RankedScenario struct {
	// Index is the position in the outcomes slice; names need not be unique.
	Index   int
	Name    string
	Summary Summary
	// Income is the C+I+G+NX equilibrium; Found is false when it lies outside the grid.
	Income float64
	Found  bool
}

// RankByEquilibrium summarizes successful outcomes and sorts them by the
// C+I+G+NX equilibrium income, highest first. Scenarios without an in-range
// equilibrium sort last, keeping their input order.
func RankByEquilibrium(outcomes []simulation.Outcome) []RankedScenario {
	out := make([]RankedScenario, 0, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil || o.Result == nil {
			continue
		}
		s := Summarize(o.Result)
		r := RankedScenario{Index: i, Name: o.Name, Summary: s}
		if h, ok := s.Headline(); ok && h.Located.Found {
			r.Income = h.Located.Point.Income
			r.Found = true
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Found != out[j].Found {
			return out[i].Found
		}
		return out[i].Income > out[j].Income
	})
	return out
}
