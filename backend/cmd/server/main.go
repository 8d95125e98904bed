package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"monsterdex/backend/internal/api"
	"monsterdex/backend/internal/catalog"
	"monsterdex/backend/internal/graph"
	"monsterdex/backend/internal/overrides"
	"monsterdex/backend/internal/service"
	"monsterdex/backend/pkg/config"
	"monsterdex/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize dependencies
	loader := catalog.NewLoader(cfg.CatalogDBURL, cfg.CatalogDBPath)
	fetcher := overrides.NewFetcher(cfg.OverridesURL, cfg.OverridesPath)

	// Optional Neo4j mirror of the evolution graph
	var mirror service.GraphMirror
	if cfg.GraphMirrorEnabled {
		driver, err := neo4j.NewDriverWithContext(
			cfg.Neo4jURI,
			neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		)
		if err != nil {
			log.Fatal("Failed to create Neo4j driver", zap.Error(err))
		}
		defer driver.Close(context.Background())

		if err := driver.VerifyConnectivity(context.Background()); err != nil {
			log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
		}
		mirror = graph.NewMirror(driver)
		log.Info("Graph mirror enabled", zap.String("uri", cfg.Neo4jURI))
	}

	svc := service.New(loader, fetcher, mirror)

	// Start the periodic catalog refresh
	scheduler := service.NewScheduler(svc, cfg.RefreshInterval, cfg.RefreshRetry)
	scheduler.Start()
	defer scheduler.Stop()

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(svc, log)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
