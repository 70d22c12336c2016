package models

// SimulateRequest represents the request body for running one simulation
type SimulateRequest struct {
	// ScenarioFile is a preset ID (e.g. "1_simulation_1"); Scenario fields override it.
	ScenarioFile string          `json:"scenario_file,omitempty"`
	Scenario     ScenarioConfig  `json:"scenario"`
	Grid         *GridConfig     `json:"grid,omitempty"`
	Options      SimulateOptions `json:"options,omitempty"`
}

// ScenarioConfig defines model parameters. Which fields apply depends on Model.
// Numeric fields are pointers so an explicit 0 can replace a preset or base value.
type ScenarioConfig struct {
	Name                        string   `json:"name,omitempty"`
	Model                       string   `json:"model,omitempty"` // "lump_sum" or "proportional"
	AutonomousConsumption       *float64 `json:"autonomous_consumption,omitempty"`
	MarginalPropensityToConsume *float64 `json:"marginal_propensity_to_consume,omitempty"`
	Investment                  *float64 `json:"investment,omitempty"`
	GovernmentSpending          *float64 `json:"government_spending,omitempty"`
	Tax                         *float64 `json:"tax,omitempty"`
	NetExports                  *float64 `json:"net_exports,omitempty"`
	TaxRate                     *float64 `json:"tax_rate,omitempty"`
	Exports                     *float64 `json:"exports,omitempty"`
	MarginalPropensityToImport  *float64 `json:"marginal_propensity_to_import,omitempty"`
}

// GridConfig defines the income domain; omitted means [0, 700] x 100.
// Samples is capped at the API boundary.
type GridConfig struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Samples int     `json:"samples"`
}

// SimulateOptions contains optional output settings
type SimulateOptions struct {
	IncludeCurves bool `json:"include_curves,omitempty"` // default: false
}

// CompareRequest represents a request to compare scenario variations
type CompareRequest struct {
	ScenarioFile string              `json:"scenario_file,omitempty"`
	Base         ScenarioConfig      `json:"base"`
	Grid         *GridConfig         `json:"grid,omitempty"`
	Variations   []ScenarioVariation `json:"variations" binding:"required,min=1"`
}

// ScenarioVariation defines a variation to test
type ScenarioVariation struct {
	Name     string         `json:"name" binding:"required"`
	Scenario ScenarioConfig `json:"scenario"`
}
