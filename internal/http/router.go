// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, the terminal error
// responder, metrics, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - One terminal error responder; handlers and guards only raise failures
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/config"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/http/handlers"
	"github.com/bossnabeel/nexus-blog-app/internal/http/middleware"
	"github.com/bossnabeel/nexus-blog-app/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), the error pipeline,
// rate limiting, CORS and security headers, health and metrics endpoints, and
// then mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs
//  4. Recovery: capture panics after logger
//  5. ErrorResponder: terminal stage for every raised failure
//  6. Body size limiter
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
//
// The identity resolver runs on the API group only, so /health and /metrics
// never touch the database.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Terminal error responder; stacks in bodies outside production only
	r.Use(middleware.ErrorResponder(!cfg.IsProduction()))

	// 6) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true, // cookie-based auth needs credentials
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks, routed through the terminal responder for a uniform body
	r.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, apperr.NotFound("route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		middleware.Abort(c, &apperr.Error{
			Status:  apperr.StatusFail,
			Code:    http.StatusMethodNotAllowed,
			Message: "method not allowed",
		})
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db/config
	userSvc := &services.UserService{DB: db, Secret: cfg.JWT.Secret, TokenTTL: cfg.JWT.TTL}
	postSvc := &services.PostService{DB: db}
	commentSvc := &services.CommentService{DB: db}
	likeSvc := &services.LikeService{DB: db}
	statSvc := &services.StatService{DB: db}
	h := handlers.New(userSvc, postSvc, commentSvc, likeSvc, statSvc, handlers.CookieOptions{
		Name:   cfg.JWT.CookieName,
		MaxAge: cfg.JWT.TTL,
		Secure: cfg.IsProduction(),
	})

	// Stricter bucket for credential endpoints
	authRL := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst, middleware.KeyByUserOrIP())

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(middleware.Identity(db, cfg.JWT.Secret, cfg.JWT.CookieName))
	{
		// Users
		api.POST("/users/register", authRL.Handler(), h.Register)
		api.POST("/users/login", authRL.Handler(), h.Login)
		api.GET("/users/logout", h.Logout)
		api.GET("/users", h.SearchUsers)
		api.GET("/users/me", middleware.RequireLogin(), h.Me)
		api.PATCH("/users/me", middleware.RequireLogin(), h.UpdateMe)
		api.GET("/users/me/stats", middleware.RequireLogin(), h.MyStats)

		// Posts
		api.GET("/posts", h.ListPosts)
		api.POST("/posts", middleware.RequireLogin(), h.CreatePost)
		api.GET("/posts/:id", h.GetPost)
		api.PATCH("/posts/:id", middleware.RequireLogin(), middleware.RequirePostOwner(db), h.UpdatePost)
		api.DELETE("/posts/:id", middleware.RequireLogin(), middleware.RequirePostOwner(db), h.DeletePost)

		// Comments
		api.GET("/posts/:id/comments", h.ListComments)
		api.POST("/posts/:id/comments", middleware.RequireLogin(), h.CreateComment)
		api.DELETE("/posts/:id/comments/:cid", middleware.RequireLogin(), middleware.RequireCommentOwner(db), h.DeleteComment)

		// Likes
		api.GET("/posts/:id/likes", h.ListLikes)
		api.POST("/posts/:id/likes", middleware.RequireLogin(), h.ToggleLike)

		// Admin
		api.GET("/admin/stats", middleware.RequireLogin(), middleware.RequireRole(domain.RoleAdmin), h.AdminStats)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
