package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"keynes-cross/internal/api"
	"keynes-cross/internal/api/middleware"
	"keynes-cross/internal/data"
	"keynes-cross/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := run(newConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newConfig reads settings from the environment (API_PORT, API_ENV, ...).
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("API")
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("result_ttl", time.Hour)
	v.SetDefault("cors_origins", "*")
	_ = v.BindEnv("port", "API_PORT")
	_ = v.BindEnv("env", "API_ENV")
	_ = v.BindEnv("static_dir", "STATIC_DIR")
	_ = v.BindEnv("scenario_dir", "SCENARIO_DIR")
	_ = v.BindEnv("result_ttl", "RESULT_TTL")
	_ = v.BindEnv("cors_origins", "CORS_ORIGINS")
	v.SetDefault("static_dir", "./web/dist")
	v.SetDefault("scenario_dir", data.DefaultPresetDir)
	return v
}

// run serves until the listener fails. Deferred cleanup always runs before it returns.
func run(v *viper.Viper) error {
	log, err := logging.New(v.GetString("env"))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if wd, err := os.Getwd(); err == nil {
		log.Info("working directory", zap.String("dir", wd))
	}

	if v.GetString("env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := data.NewResultStore(v.GetDuration("result_ttl"))
	stop := make(chan struct{})
	defer close(stop)
	go store.RunSweeper(5*time.Minute, stop)

	router := api.NewRouter(api.Options{
		ScenarioDir: v.GetString("scenario_dir"),
		StaticDir:   v.GetString("static_dir"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
		Store:       store,
		Metrics:     middleware.NewMetrics(),
		Log:         log,
	})

	addr := fmt.Sprintf(":%s", v.GetString("port"))
	log.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
