package handler

import (
	"bloodlink/internal/adapter/http/middleware"
	redisStore "bloodlink/internal/adapter/storage/redis"
	"bloodlink/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RegistryService
	SweeperSvc     ports.SweeperService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	SweepBatchSize int
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	bankOnly := middleware.RequireRole(ports.RoleBank)
	hospitalOnly := middleware.RequireRole(ports.RoleHospital)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/banks/register", rl("auth_register"), authHandler.RegisterBank)
		auth.POST("/banks/login", rl("auth_login"), authHandler.LoginBank)
		auth.POST("/hospitals/register", rl("auth_register"), authHandler.RegisterHospital)
		auth.POST("/hospitals/login", rl("auth_login"), authHandler.LoginHospital)
	}

	// --- Bank verification (any authenticated caller) ---
	banks := v1.Group("/banks", jwtAuth)
	{
		banks.POST("/:bank_id/verify", rl("units"), authHandler.VerifyBank)
	}

	// --- Unit lifecycle ---
	unitHandler := NewUnitHandler(deps.RegistrySvc)
	units := v1.Group("/units", jwtAuth)
	{
		units.POST("", rl("units"), bankOnly, unitHandler.RegisterUnit)
		units.GET("", rl("units"), unitHandler.ListUnits)
		units.GET("/:unit_id", rl("units"), unitHandler.GetUnit)
		units.GET("/:unit_id/artifact", rl("units"), unitHandler.GetTestArtifact)
		units.POST("/:unit_id/test-results", rl("units"), bankOnly, unitHandler.SubmitTestPanel)
		units.POST("/:unit_id/reserve", rl("units"), hospitalOnly, unitHandler.Reserve)
		units.POST("/:unit_id/transfuse", rl("units"), hospitalOnly, unitHandler.Transfuse)
	}

	// --- Compatibility search (hospitals) ---
	searchHandler := NewSearchHandler(deps.RegistrySvc)
	search := v1.Group("/search", jwtAuth, hospitalOnly)
	{
		search.GET("/compatible", rl("search"), searchHandler.FindCompatible)
	}

	// --- On-demand expiry sweep ---
	sweepHandler := NewSweepHandler(deps.SweeperSvc, deps.SweepBatchSize)
	v1.POST("/sweep", jwtAuth, rl("sweep"), sweepHandler.Sweep)

	return r
}
