package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	handler "github.com/jpp0ca/linkport/internal/adapters/http"
	"github.com/jpp0ca/linkport/internal/bootstrap"
	"github.com/jpp0ca/linkport/internal/config"
	"github.com/jpp0ca/linkport/internal/logging"

	_ "github.com/jpp0ca/linkport/docs"
)

// @title			LinkPort API
// @version		1.0
// @description	Converts playlists between streaming platforms (Spotify, YouTube Music, SoundCloud, Apple Music)
// @description	by fuzzy-matching every track on the target platform.

// @contact.name	LinkPort API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg, envLoaded := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	if envLoaded {
		logger.Debug("loaded .env file")
	}
	if missing := cfg.MissingCredentials(); len(missing) > 0 && !cfg.DemoMode {
		logger.Warn("missing API credentials; set DEMO_MODE=true to use the demo catalogue", "platforms", missing)
	}

	rt := bootstrap.New(context.Background(), cfg, logger)
	defer rt.Close()

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(rt.Service)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	logger.Info("starting LinkPort API", "addr", addr)
	logger.Info("matching", "workers", cfg.MatchWorkers, "search_limit", cfg.SearchLimit, "rate_per_second", cfg.SearchRatePerSecond)
	logger.Info("registered providers", "platforms", rt.Registry.Available())
	logger.Infof("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		logger.Fatal("failed to start server", "err", err)
	}
}
