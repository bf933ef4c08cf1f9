package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"news-portal-backend/internal/api/handlers"
	"news-portal-backend/internal/api/middleware"
	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/client"
	"news-portal-backend/internal/config"
	"news-portal-backend/internal/counters"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/secure"
	"news-portal-backend/internal/service"
)

// Services is the wired service graph shared by the HTTP server and the CLI
type Services struct {
	Store     cache.CacheService
	Tokens    *service.TokenService
	News      *service.NewsService
	Health    *service.HealthService
	Analytics *service.AnalyticsService
}

// BuildServices wires the upstream client, the caches and the counters over store
func BuildServices(cfg *config.Config, store cache.CacheService) (*Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	cipher, err := secure.NewTokenCipher(cfg.CacheTokenSecret)
	if err != nil {
		return nil, err
	}

	ttlConfig := cfg.TTLConfig()
	cacheWrapper := cache.NewCacheWrapper(store, ttlConfig.Default, cache.WithLocking(cfg.CacheLockTTL, cfg.CacheLockWait))
	ctrs := counters.NewCounters(store, counters.WithLocation(loc))

	api := client.NewNewsAPIClient(cfg.NewsAPIBaseURL, client.Options{
		RequestTimeout: cfg.NewsAPIRequestTimeout,
		ProbeTimeout:   cfg.NewsAPIHealthTimeout,
		RetryMax:       cfg.NewsAPIRetryMax,
	})

	creds := service.Credentials{Email: cfg.NewsAPIEmail, Password: cfg.NewsAPIPassword}
	tokens := service.NewTokenService(api, cacheWrapper, ctrs, creds, ttlConfig.Token, cipher)
	newsService := service.NewNewsService(api, tokens, cacheWrapper, ctrs, ttlConfig.Listing)
	healthService := service.NewHealthService(api, tokens, cacheWrapper, ttlConfig, cfg.NewsAPIBaseURL, loc)
	analyticsService := service.NewAnalyticsService(cacheWrapper, ctrs, newsService, service.AnalyticsConfig{
		Categories:   cfg.AnalyticsCategories,
		DemoSeed:     cfg.AnalyticsDemoSeed,
		AnalyticsTTL: ttlConfig.Analytics,
		SummaryTTL:   ttlConfig.Summary,
	})

	logger.New().WithFields(map[string]interface{}{
		"cache_backend": cfg.CacheBackend,
		"token_ttl":     ttlConfig.Token.String(),
		"listing_ttl":   ttlConfig.Listing.String(),
		"token_cipher":  cipher.Enabled(),
		"timezone":      loc.String(),
		"retry_max":     cfg.NewsAPIRetryMax,
		"demo_seed":     cfg.AnalyticsDemoSeed,
	}).Info("Services initialized")

	return &Services{
		Store:     store,
		Tokens:    tokens,
		News:      newsService,
		Health:    healthService,
		Analytics: analyticsService,
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, svc *Services, version string) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	healthHandler := handlers.NewHealthHandler(svc.Store, version)
	newsHandler := handlers.NewNewsHandler(svc.News)
	adminHandler := handlers.NewAdminHandler(svc.Health, svc.Analytics, svc.News)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		newsRoutes := v1.Group("/news")
		{
			newsRoutes.GET("", newsHandler.GetFrontPage)
			newsRoutes.GET("/lookup", newsHandler.Lookup) // GET /api/v1/news/lookup?ids=1,2,3
			newsRoutes.GET("/:id", newsHandler.GetArticle)
		}

		v1.GET("/categories/:slug", newsHandler.GetCategory)
		v1.GET("/search", newsHandler.Search) // GET /api/v1/search?q=<keywords>

		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/test-connection", adminHandler.TestConnection)
			admin.POST("/refresh-key", adminHandler.RefreshAPIKey)
			admin.POST("/cache-status", adminHandler.GetCacheStatus)
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/summary", adminHandler.GetQuickSummary)
			admin.POST("/refresh-news", adminHandler.RefreshNews)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// Addr returns the listen address for cfg
func Addr(cfg *config.Config) string {
	return fmt.Sprintf(":%s", cfg.Port)
}
