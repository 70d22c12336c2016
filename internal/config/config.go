package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"keynes-cross/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the resolved configuration: scenario_file merged with the inline scenario.
type Config struct {
	// Optional: load scenario parameters from a separate YAML (e.g. examples/scenarios/*.yaml).
	// If both ScenarioFile and Scenario are provided, keys set under scenario override the file,
	// including explicit zeros.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	Grid         GridConfig     `yaml:"grid"`
}

// ScenarioConfig holds slider-style parameters for either model.
// Lump-sum fields: tax, net_exports. Proportional fields: tax_rate, exports, marginal_propensity_to_import.
type ScenarioConfig struct {
	Name                        string  `yaml:"name"`
	Model                       string  `yaml:"model"`
	AutonomousConsumption       float64 `yaml:"autonomous_consumption"`
	MarginalPropensityToConsume float64 `yaml:"marginal_propensity_to_consume"`
	Investment                  float64 `yaml:"investment"`
	GovernmentSpending          float64 `yaml:"government_spending"`

	Tax        float64 `yaml:"tax"`
	NetExports float64 `yaml:"net_exports"`

	TaxRate                    float64 `yaml:"tax_rate"`
	Exports                    float64 `yaml:"exports"`
	MarginalPropensityToImport float64 `yaml:"marginal_propensity_to_import"`
}

// ScenarioOverride holds only the keys a caller actually set.
// A nil field keeps the base value; an explicit 0 replaces it.
type ScenarioOverride struct {
	Name                        string   `yaml:"name"`
	Model                       string   `yaml:"model"`
	AutonomousConsumption       *float64 `yaml:"autonomous_consumption"`
	MarginalPropensityToConsume *float64 `yaml:"marginal_propensity_to_consume"`
	Investment                  *float64 `yaml:"investment"`
	GovernmentSpending          *float64 `yaml:"government_spending"`

	Tax        *float64 `yaml:"tax"`
	NetExports *float64 `yaml:"net_exports"`

	TaxRate                    *float64 `yaml:"tax_rate"`
	Exports                    *float64 `yaml:"exports"`
	MarginalPropensityToImport *float64 `yaml:"marginal_propensity_to_import"`
}

// fileConfig is Config as written on disk, before the scenario is resolved.
type fileConfig struct {
	ScenarioFile string           `yaml:"scenario_file"`
	Scenario     ScenarioOverride `yaml:"scenario"`
	Grid         GridConfig       `yaml:"grid"`
}

type GridConfig struct {
	Lower   float64 `yaml:"lower"`
	Upper   float64 `yaml:"upper"`
	Samples int     `yaml:"samples"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c := Config{ScenarioFile: f.ScenarioFile, Grid: f.Grid}
	// If scenario_file is set, load it and apply the keys c.Scenario sets explicitly.
	var base ScenarioConfig
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file directory,
			// falling back to the provided path (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		base, err = LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
	}
	c.Scenario = MergeScenario(base, f.Scenario)
	return &c, nil
}

// ApplyDefaults fills the grid with the [0, 700] x 100 domain when it is unset.
func (c *Config) ApplyDefaults() {
	if c.Grid.Lower == 0 && c.Grid.Upper == 0 {
		c.Grid.Upper = model.DefaultGridUpper
	}
	if c.Grid.Samples == 0 {
		c.Grid.Samples = model.DefaultGridSamples
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Scenario.Model == "" {
		return errors.New("scenario.model is required")
	}
	params, err := c.Scenario.ToModelParams()
	if err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if _, err := c.Grid.Build(); err != nil {
		return fmt.Errorf("grid config invalid: %w", err)
	}
	return nil
}

// ToModelParams maps the flat YAML shape onto the tagged model parameters.
func (s ScenarioConfig) ToModelParams() (model.Parameters, error) {
	v, err := model.ParseVariant(s.Model)
	if err != nil {
		return model.Parameters{}, err
	}
	switch v {
	case model.VariantProportional:
		return model.ProportionalParameters(
			s.AutonomousConsumption,
			s.MarginalPropensityToConsume,
			s.TaxRate,
			s.Investment,
			s.GovernmentSpending,
			s.MarginalPropensityToImport,
			s.Exports,
		), nil
	default:
		return model.LumpSumParameters(
			s.AutonomousConsumption,
			s.MarginalPropensityToConsume,
			s.Tax,
			s.Investment,
			s.GovernmentSpending,
			s.NetExports,
		), nil
	}
}

func (g GridConfig) Build() (model.IncomeGrid, error) {
	return model.BuildGrid(g.Lower, g.Upper, g.Samples)
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset file with a top-level `scenario:` key.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Scenario, nil
}

// MergeScenario applies every field set in override onto base.
// This is used when loading a scenario file and then applying overrides from the request.
func MergeScenario(base ScenarioConfig, override ScenarioOverride) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Model != "" {
		out.Model = override.Model
	}
	overlay(&out.AutonomousConsumption, override.AutonomousConsumption)
	overlay(&out.MarginalPropensityToConsume, override.MarginalPropensityToConsume)
	overlay(&out.Investment, override.Investment)
	overlay(&out.GovernmentSpending, override.GovernmentSpending)
	overlay(&out.Tax, override.Tax)
	overlay(&out.NetExports, override.NetExports)
	overlay(&out.TaxRate, override.TaxRate)
	overlay(&out.Exports, override.Exports)
	overlay(&out.MarginalPropensityToImport, override.MarginalPropensityToImport)
	return out
}

func overlay(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Defaults reproduces the starting slider positions of the two simulations.
func Defaults(v model.Variant) ScenarioConfig {
	if v == model.VariantProportional {
		return ScenarioConfig{
			Name:                        "Simulation-2",
			Model:                       string(model.VariantProportional),
			AutonomousConsumption:       20,
			MarginalPropensityToConsume: 0.9,
			TaxRate:                     0.3,
			Investment:                  60,
			GovernmentSpending:          100,
			MarginalPropensityToImport:  0.1,
			Exports:                     30,
		}
	}
	return ScenarioConfig{
		Name:                        "Simulation-1",
		Model:                       string(model.VariantLumpSum),
		AutonomousConsumption:       50,
		MarginalPropensityToConsume: 0.5,
		Tax:                         20,
		Investment:                  50,
		GovernmentSpending:          20,
		NetExports:                  50,
	}
}
