package main

import (
	"fmt"

	"keynes-cross/internal/analysis"
	"keynes-cross/internal/config"
	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"

	flag "github.com/spf13/pflag"
)

// Demo:
// - Build the default [0, 700] x 100 income grid
// - Run both simulations at their starting slider positions (or a YAML config)
// - Print a few curve samples and the equilibrium of every curve
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 8, "Number of grid samples to print per scenario")
	outCSV := flag.String("out", "", "Optional path to write the first scenario's curves CSV")
	flag.Parse()

	scenarios := []config.ScenarioConfig{
		config.Defaults(model.VariantLumpSum),
		config.Defaults(model.VariantProportional),
	}
	grid := model.DefaultGrid()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		scenarios = []config.ScenarioConfig{cfg.Scenario}
		grid, err = cfg.Grid.Build()
		if err != nil {
			panic(err)
		}
	}

	engine := simulation.New()
	for i, sc := range scenarios {
		params, err := sc.ToModelParams()
		if err != nil {
			panic(err)
		}
		res, err := engine.Run(params, grid)
		if err != nil {
			panic(err)
		}

		fmt.Printf("== %s (%s)\n", sc.Name, res.Variant)
		step := len(grid) / max(1, *n)
		if step == 0 {
			step = 1
		}
		for idx := 0; idx < len(grid); idx += step {
			fmt.Printf("Y=%7.2f  C=%8.2f  C+I=%8.2f  C+I+G=%8.2f  C+I+G+NX=%8.2f\n",
				grid[idx],
				res.Curves[0].Points[idx].Demand,
				res.Curves[1].Points[idx].Demand,
				res.Curves[2].Points[idx].Demand,
				res.Curves[3].Points[idx].Demand,
			)
		}

		fmt.Println()
		for _, c := range analysis.Summarize(res).Curves {
			if !c.Located.Found {
				fmt.Printf("  %-9s no equilibrium in [%.0f, %.0f]\n", c.Label, grid.Lower(), grid.Upper())
				continue
			}
			fmt.Printf("  %-9s Y*=%8.3f  (closed form %8.3f, multiplier %.3f)\n",
				c.Label, c.Located.Point.Income, c.ClosedFormIncome, c.Multiplier)
		}
		fmt.Println()

		if i == 0 && *outCSV != "" {
			if err := simulation.SaveCurvesCSV(*outCSV, res); err != nil {
				panic(err)
			}
			fmt.Printf("Wrote CSV: %s\n\n", *outCSV)
		}
	}
}
