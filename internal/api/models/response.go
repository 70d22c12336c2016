package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID         string             `json:"id,omitempty"`
	Variant    string             `json:"variant"`
	Grid       GridInfo           `json:"grid"`
	Equilibria []EquilibriumInfo  `json:"equilibria"`
	Summary    []CurveSummaryInfo `json:"summary"`
	Curves     []CurveInfo        `json:"curves,omitempty"`
}

// GridInfo describes the sampled income domain
type GridInfo struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Samples int     `json:"samples"`
	Spacing float64 `json:"spacing"`
}

// EquilibriumInfo is one 45-degree crossing. Income and Demand are omitted when not found.
type EquilibriumInfo struct {
	Label  string   `json:"label"`
	Found  bool     `json:"found"`
	Income *float64 `json:"income,omitempty"`
	Demand *float64 `json:"demand,omitempty"`
}

// CurveSummaryInfo carries slope/multiplier diagnostics for a curve
type CurveSummaryInfo struct {
	Label            string   `json:"label"`
	Intercept        float64  `json:"intercept"`
	Slope            float64  `json:"slope"`
	Multiplier       *float64 `json:"multiplier,omitempty"`
	ClosedFormIncome *float64 `json:"closed_form_income,omitempty"`
}

// CurveInfo is a demand curve; Demand is parallel to the grid
type CurveInfo struct {
	Label  string    `json:"label"`
	Income []float64 `json:"income"`
	Demand []float64 `json:"demand"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name       string            `json:"name"`
	Rank       int               `json:"rank,omitempty"`
	Variant    string            `json:"variant,omitempty"`
	Equilibria []EquilibriumInfo `json:"equilibria,omitempty"`
	Error      *ErrorDetail      `json:"error,omitempty"`
}

// ModelInfo represents information about a model variant
type ModelInfo struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a model parameter
type ParameterInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Default     float64  `json:"default"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// ScenarioInfo represents a preset scenario file
type ScenarioInfo struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Model    string         `json:"model"`
	Scenario ScenarioConfig `json:"scenario"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
