package handlers

import (
	"net/http"

	"keynes-cross/internal/api/models"
	"keynes-cross/internal/config"
	"keynes-cross/internal/model"

	"github.com/gin-gonic/gin"
)

func bound(x float64) *float64 { return &x }

// parameterDocs describes every input per variant; defaults come from config.Defaults.
var parameterDocs = map[model.Variant]func(d config.ScenarioConfig) []models.ParameterInfo{
	model.VariantLumpSum: func(d config.ScenarioConfig) []models.ParameterInfo {
		return append(commonParameters(d),
			models.ParameterInfo{Name: "tax", Description: "Taxation amount (T), subtracted from autonomous consumption", Default: d.Tax},
			models.ParameterInfo{Name: "net_exports", Description: "Net exports (NX), a constant", Default: d.NetExports},
		)
	},
	model.VariantProportional: func(d config.ScenarioConfig) []models.ParameterInfo {
		return append(commonParameters(d),
			models.ParameterInfo{Name: "tax_rate", Description: "Tax rate on gross income", Default: d.TaxRate, Min: bound(0), Max: bound(1)},
			models.ParameterInfo{Name: "marginal_propensity_to_import", Description: "Propensity to import (M1) out of disposable income", Default: d.MarginalPropensityToImport, Min: bound(0), Max: bound(1)},
			models.ParameterInfo{Name: "exports", Description: "Exports (X)", Default: d.Exports},
		)
	},
}

func commonParameters(d config.ScenarioConfig) []models.ParameterInfo {
	return []models.ParameterInfo{
		{Name: "autonomous_consumption", Description: "Autonomous consumption (C0)", Default: d.AutonomousConsumption, Min: bound(0)},
		{Name: "marginal_propensity_to_consume", Description: "Marginal propensity to consume (C1)", Default: d.MarginalPropensityToConsume, Min: bound(0), Max: bound(1)},
		{Name: "investment", Description: "Investment (I)", Default: d.Investment},
		{Name: "government_spending", Description: "Government spending (G)", Default: d.GovernmentSpending},
	}
}

// ListModels handles GET /api/v1/models
func ListModels(c *gin.Context) {
	variants := model.Variants()
	out := make([]models.ModelInfo, 0, len(variants))
	for _, v := range variants {
		out = append(out, models.ModelInfo{
			Name:        string(v.Variant),
			Title:       v.Title,
			Description: v.Description,
			Parameters:  parameterDocs[v.Variant](config.Defaults(v.Variant)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}
