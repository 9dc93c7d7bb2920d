package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vetter/internal/analyses"
	"resume-vetter/internal/documents"
	"resume-vetter/internal/shared/config"
	"resume-vetter/internal/shared/metrics"
	"resume-vetter/internal/shared/server/middleware"
	"resume-vetter/internal/shared/server/respond"
)

const pollingRateLimitGroup = "POLLING"

// RouterDeps carries the handlers the router exposes.
type RouterDeps struct {
	Documents *documents.Handler
	Analyses  *analyses.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 10},
				// Status polling gets a wider budget than mutations.
				pollingRateLimitGroup: {Rate: 20, Burst: 40},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return pollingRateLimitGroup
				}
				return ""
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.Documents != nil {
		deps.Documents.RegisterRoutes(api)
	}
	if deps.Analyses != nil {
		deps.Analyses.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
