package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"aquaview.xyz/water-quality-dashboard/pkg/backend"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/dashboard"
	aqvHttp "aquaview.xyz/water-quality-dashboard/pkg/http"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/session"
	"aquaview.xyz/water-quality-dashboard/pkg/store"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var local *store.Store
	dbType := os.Getenv(common.EnvKeyAQVDBType)
	switch dbType {
	case "file":
		local = store.GetInstance(store.UseSqliteDialector())
	case "memory":
		local = store.GetInstance(store.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown AQV_DB_TYPE: " + dbType)
	}

	backendURL := strings.TrimSpace(os.Getenv(common.EnvKeyAQVBackendURL))
	if backendURL == "" {
		log.Fatal("AQV_BACKEND_URL not set in .env")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAQVHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3000"
	}

	defaultRate := common.GetEnvFloat(common.EnvKeyAQVDefaultRate, 5)
	defaultBurst := common.GetEnvInt(common.EnvKeyAQVDefaultBurst, 10)
	sessionCheck := common.GetEnvDuration(common.EnvKeyAQVSessionCheck, 5*time.Minute)

	logger := common.GetLogger()

	sessions := session.NewStore(local)

	client := backend.NewClient(backendURL, sessions)
	client.RetryAttempts = common.GetEnvInt(common.EnvKeyAQVRetryAttempts, client.RetryAttempts)
	client.RetryDelay = common.GetEnvDuration(common.EnvKeyAQVRetryDelay, client.RetryDelay)
	client.HTTPClient.Timeout = common.GetEnvDuration(common.EnvKeyAQVRequestTimeout, client.HTTPClient.Timeout)

	core := dashboard.New(local, client, sessions)
	core.DefaultTheme = models.Theme(common.GetEnv(common.EnvKeyAQVDefaultTheme, string(models.ThemeLight)))

	// periodic token re-validation against the backend
	checker := dashboard.NewPoller(sessionCheck, func(ctx context.Context) {
		core.Auth.Revalidate(ctx)
	})
	checker.Start()
	defer checker.Stop()

	// background refresh: surfaces active water-quality warnings in the log
	refreshInterval := common.GetEnvDuration(common.EnvKeyAQVRefreshInterval, time.Minute)
	refresher := dashboard.NewPoller(refreshInterval, func(ctx context.Context) {
		warnings, err := core.Data.Warnings(ctx)
		if err != nil {
			return
		}
		for _, w := range warnings {
			logger.Warn("Water quality warning",
				zap.String("parameter", w.Parameter),
				zap.Strings("locations", w.Locations),
				zap.String("message", w.Message))
		}
	})
	refresher.Start()
	defer refresher.Stop()

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &aqvHttp.RestfulServer{
		Server:           gin.Default(),
		Dashboard:        core,
		RateLimiterStore: dashboard.NewRateLimiterStore(rate.Limit(defaultRate), defaultBurst),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Duration("session_check_interval", sessionCheck))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
