package simulation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"keynes-cross/internal/model"
)

// Scenario is a named parameter set evaluated by RunAll.
type Scenario struct {
	Name   string
	Params model.Parameters
}

// Outcome pairs a scenario with its result or its validation error.
type Outcome struct {
	Name   string
	Result *Result
	Err    error
}

// RunAll evaluates scenarios concurrently over the same grid.
// Outcomes are returned in input order. Model errors are reported per outcome;
// only context cancellation fails the whole call.
func (e *Engine) RunAll(ctx context.Context, grid model.IncomeGrid, scenarios []Scenario) ([]Outcome, error) {
	out := make([]Outcome, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Run(sc.Params, grid)
			out[i] = Outcome{Name: sc.Name, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
