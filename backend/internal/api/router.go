package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"monsterdex/backend/internal/dex"
	"monsterdex/backend/pkg/errors"
)

// Service is the slice of the resolution service the API needs
type Service interface {
	Resolve(query string, region dex.Region) (*dex.Entity, []string, error)
	Current() (*dex.Snapshot, error)
	Refresh(ctx context.Context) (string, error)
}

// NewRouter builds the HTTP surface over the resolution service
func NewRouter(svc Service, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Resolve a query against the latest snapshot
		api.POST("/resolve", func(c *gin.Context) {
			var req struct {
				Query  string `json:"query" binding:"required"`
				Region string `json:"region"`
			}

			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			region, ok := parseRegion(req.Region)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "region must be \"all\" or \"na\""})
				return
			}

			entity, trail, err := svc.Resolve(req.Query, region)
			if err != nil {
				status := resolveErrorStatus(err)
				if status == http.StatusInternalServerError {
					log.Error("Failed to resolve query", zap.String("query", req.Query), zap.Error(err))
					c.JSON(status, gin.H{"error": "Failed to resolve query"})
					return
				}
				c.JSON(status, gin.H{"error": err.Error(), "trail": trail})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"entity": entity,
				"trail":  trail,
			})
		})

		// Describe the latest snapshot
		api.GET("/snapshot", func(c *gin.Context) {
			snap, err := svc.Current()
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"version":     snap.Version,
				"built_at":    snap.BuiltAt,
				"entities":    snap.IndexFor(dex.RegionAll).Size(),
				"na_entities": snap.IndexFor(dex.RegionNA).Size(),
			})
		})

		// Trigger a catalog refresh
		api.POST("/refresh", func(c *gin.Context) {
			version, err := svc.Refresh(c.Request.Context())
			if err != nil {
				if err == errors.ErrRefreshInProgress {
					c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				log.Error("Failed to refresh snapshot", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh snapshot"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"version": version})
		})
	}

	return router
}

func parseRegion(s string) (dex.Region, bool) {
	switch s {
	case "", "all":
		return dex.RegionAll, true
	case "na":
		return dex.RegionNA, true
	default:
		return dex.RegionAll, false
	}
}

// resolveErrorStatus maps resolve failures to HTTP status codes
func resolveErrorStatus(err error) int {
	if err == errors.ErrSnapshotUnavailable {
		return http.StatusServiceUnavailable
	}
	switch err.(type) {
	case *errors.ErrResolveTooShort:
		return http.StatusBadRequest
	case *errors.ErrResolveNotFound, *errors.ErrResolveIDNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
