package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"keynes-cross/internal/analysis"
	"keynes-cross/internal/api/models"
	"keynes-cross/internal/config"
	"keynes-cross/internal/data"
	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// responsePlaces is the number of decimals kept in JSON numbers.
const responsePlaces = 6

func round(x float64) float64 {
	return decimal.NewFromFloat(x).Round(responsePlaces).InexactFloat64()
}

func roundPtr(x float64) *float64 {
	r := round(x)
	return &r
}

// maxGridSamples bounds the grid a single request may allocate.
const maxGridSamples = 10000

func num(x float64) *float64 { return &x }

func toOverride(s models.ScenarioConfig) config.ScenarioOverride {
	return config.ScenarioOverride{
		Name:                        s.Name,
		Model:                       s.Model,
		AutonomousConsumption:       s.AutonomousConsumption,
		MarginalPropensityToConsume: s.MarginalPropensityToConsume,
		Investment:                  s.Investment,
		GovernmentSpending:          s.GovernmentSpending,
		Tax:                         s.Tax,
		NetExports:                  s.NetExports,
		TaxRate:                     s.TaxRate,
		Exports:                     s.Exports,
		MarginalPropensityToImport:  s.MarginalPropensityToImport,
	}
}

// fromConfigScenario reports the fields that apply to the scenario's model.
func fromConfigScenario(s config.ScenarioConfig) models.ScenarioConfig {
	out := models.ScenarioConfig{
		Name:                        s.Name,
		Model:                       s.Model,
		AutonomousConsumption:       num(s.AutonomousConsumption),
		MarginalPropensityToConsume: num(s.MarginalPropensityToConsume),
		Investment:                  num(s.Investment),
		GovernmentSpending:          num(s.GovernmentSpending),
	}
	if model.Variant(s.Model) == model.VariantProportional {
		out.TaxRate = num(s.TaxRate)
		out.Exports = num(s.Exports)
		out.MarginalPropensityToImport = num(s.MarginalPropensityToImport)
	} else {
		out.Tax = num(s.Tax)
		out.NetExports = num(s.NetExports)
	}
	return out
}

// resolveScenario loads the optional preset and applies each set of request
// fields on top of it, in order.
func resolveScenario(presetDir, presetID string, overrides ...models.ScenarioConfig) (config.ScenarioConfig, error) {
	var sc config.ScenarioConfig
	if presetID != "" {
		p, err := data.LoadPreset(presetDir, presetID)
		if err != nil {
			return config.ScenarioConfig{}, &requestError{code: "INVALID_SCENARIO_FILE", err: err}
		}
		sc = p.Scenario
	}
	for _, o := range overrides {
		sc = config.MergeScenario(sc, toOverride(o))
	}
	if sc.Model == "" {
		return config.ScenarioConfig{}, &requestError{code: "INVALID_REQUEST", err: errors.New("scenario.model is required")}
	}
	return sc, nil
}

func buildGrid(g *models.GridConfig) (model.IncomeGrid, error) {
	if g == nil {
		return model.DefaultGrid(), nil
	}
	if g.Samples > maxGridSamples {
		return nil, &model.DomainError{
			Lower:  g.Lower,
			Upper:  g.Upper,
			Count:  g.Samples,
			Reason: fmt.Sprintf("count must be <= %d", maxGridSamples),
		}
	}
	return model.BuildGrid(g.Lower, g.Upper, g.Samples)
}

func gridInfo(g model.IncomeGrid) models.GridInfo {
	return models.GridInfo{
		Lower:   g.Lower(),
		Upper:   g.Upper(),
		Samples: len(g),
		Spacing: round(g.Spacing()),
	}
}

func equilibriaInfo(eqs []model.Equilibrium) []models.EquilibriumInfo {
	out := make([]models.EquilibriumInfo, len(eqs))
	for i, eq := range eqs {
		out[i] = models.EquilibriumInfo{Label: string(eq.Label), Found: eq.Found}
		if eq.Found {
			out[i].Income = roundPtr(eq.Point.Income)
			out[i].Demand = roundPtr(eq.Point.Demand)
		}
	}
	return out
}

func summaryInfo(s analysis.Summary) []models.CurveSummaryInfo {
	out := make([]models.CurveSummaryInfo, len(s.Curves))
	for i, c := range s.Curves {
		out[i] = models.CurveSummaryInfo{
			Label:     string(c.Label),
			Intercept: round(c.Intercept),
			Slope:     round(c.Slope),
		}
		if c.HasMultiplier {
			out[i].Multiplier = roundPtr(c.Multiplier)
			out[i].ClosedFormIncome = roundPtr(c.ClosedFormIncome)
		}
	}
	return out
}

func curvesInfo(r *simulation.Result) []models.CurveInfo {
	out := make([]models.CurveInfo, len(r.Curves))
	for i, c := range r.Curves {
		ci := models.CurveInfo{
			Label:  string(c.Label),
			Income: make([]float64, len(c.Points)),
			Demand: make([]float64, len(c.Points)),
		}
		for j, p := range c.Points {
			ci.Income[j] = round(p.Income)
			ci.Demand[j] = round(p.Demand)
		}
		out[i] = ci
	}
	return out
}

// requestError tags an error with the API code it should be reported under.
type requestError struct {
	code string
	err  error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// errorDetail maps core errors onto the API error envelope.
func errorDetail(err error) (int, models.ErrorDetail) {
	var pe *model.ParameterError
	var de *model.DomainError
	var re *requestError
	switch {
	case errors.As(err, &pe):
		details := map[string]interface{}{"param": pe.Param}
		switch {
		case pe.Raw != "":
			details["value"] = pe.Raw
		case !math.IsNaN(pe.Value) && !math.IsInf(pe.Value, 0):
			details["value"] = pe.Value
		}
		return http.StatusBadRequest, models.ErrorDetail{Code: "INVALID_PARAMETER", Message: err.Error(), Details: details}
	case errors.As(err, &de):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_DOMAIN",
			Message: err.Error(),
			Details: map[string]interface{}{"lower": de.Lower, "upper": de.Upper, "samples": de.Count},
		}
	case errors.As(err, &re):
		return http.StatusBadRequest, models.ErrorDetail{Code: re.code, Message: err.Error()}
	default:
		return http.StatusBadRequest, models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()}
	}
}

func writeError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	c.JSON(status, models.ErrorResponse{Error: detail})
}
