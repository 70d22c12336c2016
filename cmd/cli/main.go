package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"keynes-cross/internal/analysis"
	"keynes-cross/internal/config"
	"keynes-cross/internal/data"
	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"

	flag "github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/curves.csv")
	fmt.Println("  cli compare --presets examples/scenarios")
	fmt.Println("  cli presets --dir examples/scenarios")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints the 45-degree equilibria and writes one CSV column per demand curve")
	fmt.Println("  - compare runs every preset concurrently and ranks them by C+I+G+NX equilibrium income")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path for the curves")
	eqPath := fs.String("equilibria-out", "", "Optional output CSV path for the equilibria")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	params, err := cfg.Scenario.ToModelParams()
	if err != nil {
		fail(err)
	}
	grid, err := cfg.Grid.Build()
	if err != nil {
		fail(err)
	}

	res, err := simulation.New().Run(params, grid)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Scenario=%s model=%s grid=[%.1f, %.1f] x %d\n", cfg.Scenario.Name, res.Variant, grid.Lower(), grid.Upper(), len(grid))
	printSummary(analysis.Summarize(res))

	if *outPath != "" {
		if err := simulation.SaveCurvesCSV(*outPath, res); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Grid), *outPath)
	}
	if *eqPath != "" {
		f, err := os.Create(*eqPath)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		if err := simulation.WriteEquilibriaCSV(f, res); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote equilibria to %s\n", *eqPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	dir := fs.String("presets", data.DefaultPresetDir, "Directory of scenario YAML files")
	lower := fs.Float64("lower", model.DefaultGridLower, "Lowest income on the grid")
	upper := fs.Float64("upper", model.DefaultGridUpper, "Highest income on the grid")
	samples := fs.Int("samples", model.DefaultGridSamples, "Number of grid samples")
	_ = fs.Parse(args)

	grid, err := model.BuildGrid(*lower, *upper, *samples)
	if err != nil {
		fail(err)
	}
	presets, skipped, err := data.ListPresets(*dir)
	if err != nil {
		fail(err)
	}
	for name, err := range skipped {
		fmt.Fprintf(os.Stderr, "skipping %s: %v\n", name, err)
	}

	scenarios := make([]simulation.Scenario, 0, len(presets))
	for _, p := range presets {
		params, err := p.Scenario.ToModelParams()
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", p.ID, err)
			continue
		}
		scenarios = append(scenarios, simulation.Scenario{Name: p.Scenario.Name, Params: params})
	}

	outcomes, err := simulation.New().RunAll(context.Background(), grid, scenarios)
	if err != nil {
		fail(err)
	}
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", o.Name, o.Err)
		}
	}

	fmt.Printf("%-4s %-32s %-14s %-12s %-10s\n", "rank", "scenario", "model", "Y*", "multiplier")
	for i, r := range analysis.RankByEquilibrium(outcomes) {
		income := "not found"
		if r.Found {
			income = fmt.Sprintf("%.2f", r.Income)
		}
		mult := "-"
		if h, ok := r.Summary.Headline(); ok && h.HasMultiplier {
			mult = fmt.Sprintf("%.3f", h.Multiplier)
		}
		fmt.Printf("%-4d %-32s %-14s %-12s %-10s\n", i+1, r.Name, r.Summary.Variant, income, mult)
	}
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	dir := fs.String("dir", data.DefaultPresetDir, "Directory of scenario YAML files")
	_ = fs.Parse(args)

	presets, skipped, err := data.ListPresets(*dir)
	if err != nil {
		fail(err)
	}
	for _, p := range presets {
		fmt.Printf("%-24s %-14s %s\n", p.ID, p.Scenario.Model, p.Scenario.Name)
	}
	for name, err := range skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", name, err)
	}
}

func printSummary(s analysis.Summary) {
	fmt.Printf("%-10s %-10s %-8s %-12s %-12s\n", "curve", "intercept", "slope", "Y*", "closed-form")
	for _, c := range s.Curves {
		located := "not found"
		if c.Located.Found {
			located = fmt.Sprintf("%.3f", c.Located.Point.Income)
		}
		closed := "-"
		if c.HasMultiplier {
			closed = fmt.Sprintf("%.3f", c.ClosedFormIncome)
		}
		fmt.Printf("%-10s %-10.2f %-8.3f %-12s %-12s\n", c.Label, c.Intercept, c.Slope, located, closed)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", strings.TrimSpace(err.Error()))
	os.Exit(1)
}
