package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"keynes-cross/internal/analysis"
	"keynes-cross/internal/api/middleware"
	"keynes-cross/internal/api/models"
	"keynes-cross/internal/data"
	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SimulationHandler handles simulation requests
type SimulationHandler struct {
	engine    *simulation.Engine
	store     *data.ResultStore
	metrics   *middleware.Metrics
	presetDir string
	log       *zap.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(store *data.ResultStore, metrics *middleware.Metrics, presetDir string, log *zap.Logger) *SimulationHandler {
	return &SimulationHandler{
		engine:    simulation.New(),
		store:     store,
		metrics:   metrics,
		presetDir: presetDir,
		log:       log.Named("simulation"),
	}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sc, err := resolveScenario(h.presetDir, req.ScenarioFile, req.Scenario)
	if err != nil {
		writeError(c, err)
		return
	}
	grid, err := buildGrid(req.Grid)
	if err != nil {
		writeError(c, err)
		return
	}
	params, err := sc.ToModelParams()
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.engine.Run(params, grid)
	h.metrics.ObserveSimulation(model.Variant(sc.Model), result, err)
	if err != nil {
		h.log.Debug("simulation rejected", zap.String("scenario", sc.Name), zap.Error(err))
		writeError(c, err)
		return
	}

	resp := buildResponse(result, req.Options.IncludeCurves)
	resp.ID = h.store.Put(result)
	h.log.Info("simulation completed",
		zap.String("id", resp.ID),
		zap.String("variant", string(result.Variant)),
		zap.Int("samples", len(result.Grid)),
	)
	c.JSON(http.StatusOK, resp)
}

// ExportCSV handles GET /api/v1/simulate/:id/csv
func (h *SimulationHandler) ExportCSV(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("simulation %q not found or expired", id),
			},
		})
		return
	}

	var buf bytes.Buffer
	if err := simulation.WriteCurvesCSV(&buf, result); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "curves-"+id+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulationHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	grid, err := buildGrid(req.Grid)
	if err != nil {
		writeError(c, err)
		return
	}

	// Variations that cannot even be turned into parameters are reported in place.
	comparison := make([]models.ComparisonResult, len(req.Variations))
	scenarios := make([]simulation.Scenario, 0, len(req.Variations))
	// index[j] is the variation that produced scenarios[j].
	index := make([]int, 0, len(req.Variations))
	for i, v := range req.Variations {
		comparison[i].Name = v.Name

		sc, err := resolveScenario(h.presetDir, req.ScenarioFile, req.Base, v.Scenario)
		if err == nil {
			var params model.Parameters
			params, err = sc.ToModelParams()
			if err == nil {
				scenarios = append(scenarios, simulation.Scenario{Name: v.Name, Params: params})
				index = append(index, i)
				continue
			}
		}
		_, detail := errorDetail(err)
		comparison[i].Error = &detail
	}

	outcomes, err := h.engine.RunAll(c.Request.Context(), grid, scenarios)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CANCELLED",
				Message: err.Error(),
			},
		})
		return
	}

	for j, o := range outcomes {
		i := index[j]
		var variant model.Variant
		if o.Result != nil {
			variant = o.Result.Variant
		}
		h.metrics.ObserveSimulation(variant, o.Result, o.Err)
		if o.Err != nil {
			_, detail := errorDetail(o.Err)
			comparison[i].Error = &detail
			continue
		}
		comparison[i].Variant = string(o.Result.Variant)
		comparison[i].Equilibria = equilibriaInfo(o.Result.Equilibria)
	}

	for rank, r := range analysis.RankByEquilibrium(outcomes) {
		comparison[index[r.Index]].Rank = rank + 1
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

func buildResponse(result *simulation.Result, includeCurves bool) models.SimulateResponse {
	resp := models.SimulateResponse{
		Variant:    string(result.Variant),
		Grid:       gridInfo(result.Grid),
		Equilibria: equilibriaInfo(result.Equilibria),
		Summary:    summaryInfo(analysis.Summarize(result)),
	}
	if includeCurves {
		resp.Curves = curvesInfo(result)
	}
	return resp
}
