package api

import (
	"net/http"
	"os"
	"strings"

	"keynes-cross/internal/api/handlers"
	"keynes-cross/internal/api/middleware"
	"keynes-cross/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options configures the HTTP router.
type Options struct {
	ScenarioDir string
	StaticDir   string
	CORSOrigins []string
	Store       *data.ResultStore
	Metrics     *middleware.Metrics
	Log         *zap.Logger
}

// NewRouter wires middleware, API routes and optional static file serving.
func NewRouter(opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Store == nil {
		opts.Store = data.NewResultStore(0)
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(opts.Log))
	router.Use(middleware.CORS(opts.CORSOrigins))
	router.Use(middleware.Logger(opts.Log))
	router.Use(opts.Metrics.Middleware())

	simulationHandler := handlers.NewSimulationHandler(opts.Store, opts.Metrics, opts.ScenarioDir, opts.Log)
	scenarioHandler := handlers.NewScenarioHandler(opts.ScenarioDir, opts.Log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", opts.Metrics.Handler())

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulationHandler.RunSimulation)
		api.GET("/simulate/:id/csv", simulationHandler.ExportCSV)
		api.POST("/simulate/compare", simulationHandler.CompareScenarios)

		api.GET("/models", handlers.ListModels)
		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			router.Static("/assets", opts.StaticDir+"/assets")
			router.StaticFile("/favicon.ico", opts.StaticDir+"/favicon.ico")

			// Serve index.html for all non-API routes (SPA routing)
			router.NoRoute(func(c *gin.Context) {
				if strings.HasPrefix(c.Request.URL.Path, "/api") {
					c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
					return
				}
				c.File(opts.StaticDir + "/index.html")
			})
			opts.Log.Info("serving static files", zap.String("dir", opts.StaticDir))
		} else {
			opts.Log.Info("static directory not found, skipping static file serving", zap.String("dir", opts.StaticDir))
		}
	}

	return router
}
