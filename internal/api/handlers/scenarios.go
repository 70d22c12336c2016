package handlers

import (
	"net/http"
	"path/filepath"

	"keynes-cross/internal/api/models"
	"keynes-cross/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	dir string
	log *zap.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(dir string, log *zap.Logger) *ScenarioHandler {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log = log.Named("scenarios")
	log.Info("using scenario directory", zap.String("dir", dir))
	return &ScenarioHandler{dir: dir, log: log}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	presets, skipped, err := data.ListPresets(h.dir)
	if err != nil {
		h.log.Warn("failed to read scenario directory", zap.String("dir", h.dir), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}
	for name, err := range skipped {
		h.log.Warn("skipping scenario file", zap.String("file", name), zap.Error(err))
	}

	for _, p := range presets {
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:       p.ID,
			Name:     p.Scenario.Name,
			Model:    p.Scenario.Model,
			Scenario: fromConfigScenario(p.Scenario),
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
