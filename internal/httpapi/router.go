package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loofsan/SF-Hacks2025/internal/app"
	cathandler "github.com/loofsan/SF-Hacks2025/internal/category/handler"
	fbhandler "github.com/loofsan/SF-Hacks2025/internal/feedback/handler"
	reshandler "github.com/loofsan/SF-Hacks2025/internal/resource/handler"
	searchhandler "github.com/loofsan/SF-Hacks2025/internal/search/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startTime = time.Now()

// Options holds the router pieces that depend on deployment configuration.
type Options struct {
	// SearchLimiter guards POST /api/search. Nil disables rate limiting.
	SearchLimiter gin.HandlerFunc
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
	// Deps are extra readiness checks keyed by dependency name.
	Deps map[string]func(ctx context.Context) error
}

// NewRouter builds the HTTP surface over a.
func NewRouter(a *app.App, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(cors(), gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		ready := true
		deps := map[string]bool{"store": true}
		if a.Stores.Ping != nil {
			if err := a.Stores.Ping(ctx); err != nil {
				deps["store"] = false
				ready = false
			}
		}
		for name, check := range opts.Deps {
			deps[name] = check(ctx) == nil
			if !deps[name] {
				ready = false
			}
		}
		body := gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	RegisterSwagger(r)

	api := r.Group("/api")
	var limiters []gin.HandlerFunc
	if opts.SearchLimiter != nil {
		limiters = append(limiters, opts.SearchLimiter)
	}
	searchhandler.RegisterSearchRoutes(api, a.Search, limiters...)
	reshandler.RegisterResourceRoutes(api, a.Resources, a.Similar)
	cathandler.RegisterCategoryRoutes(api, a.Stores.Categories)
	fbhandler.RegisterFeedbackRoutes(api, a.Feedback)

	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
