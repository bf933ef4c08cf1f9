package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/service"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	healthService    service.HealthServiceInterface
	analyticsService service.AnalyticsServiceInterface
	newsService      service.NewsServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(healthService service.HealthServiceInterface, analyticsService service.AnalyticsServiceInterface, newsService service.NewsServiceInterface) *AdminHandler {
	return &AdminHandler{
		healthService:    healthService,
		analyticsService: analyticsService,
		newsService:      newsService,
	}
}

// DashboardResponse is everything the admin dashboard renders
type DashboardResponse struct {
	APIHealth service.HealthStatus `json:"api_health"`
	service.Dashboard
}

// GetHealthStatus godoc
// @Summary Upstream API health
// @Description Cached snapshot of the last upstream probe (refreshed every 30 seconds)
// @Tags admin
// @Produce json
// @Success 200 {object} service.HealthStatus
// @Router /api/v1/admin/health-status [get]
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.GetStatus(c.Request.Context()))
}

// TestConnection godoc
// @Summary Test upstream connection
// @Description Drops the cached API key and health snapshot, logs in again and probes the API
// @Tags admin
// @Produce json
// @Success 200 {object} service.ConnectionTestResult
// @Router /api/v1/admin/test-connection [post]
func (h *AdminHandler) TestConnection(c *gin.Context) {
	result := h.healthService.TestConnection(c.Request.Context())
	if !result.Success {
		logger.FromGinContext(c).WithField("api_key_status", result.APIKeyStatus).Warn("API connection test failed")
	}
	c.JSON(http.StatusOK, result)
}

// RefreshAPIKey godoc
// @Summary Refresh upstream API key
// @Description Drops the cached API key and logs in again
// @Tags admin
// @Produce json
// @Success 200 {object} service.RefreshKeyResult
// @Router /api/v1/admin/refresh-key [post]
func (h *AdminHandler) RefreshAPIKey(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.RefreshAPIKey(c.Request.Context()))
}

// GetCacheStatus godoc
// @Summary Cache status
// @Description Today's cache hits and misses taken from the cached analytics bundle
// @Tags admin
// @Produce json
// @Success 200 {object} service.CacheStatusResult
// @Router /api/v1/admin/cache-status [post]
func (h *AdminHandler) GetCacheStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.CacheStatus())
}

// GetDashboard godoc
// @Summary Admin dashboard data
// @Description Upstream health, chart data and quick summary in one response
// @Tags admin
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /api/v1/admin/dashboard [get]
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardResponse{
		APIHealth: h.healthService.GetStatus(c.Request.Context()),
		Dashboard: h.analyticsService.Dashboard(),
	})
}

// GetQuickSummary godoc
// @Summary Quick summary
// @Description Headline numbers of the dashboard (refreshed every 60 seconds)
// @Tags admin
// @Produce json
// @Success 200 {object} service.QuickSummary
// @Router /api/v1/admin/summary [get]
func (h *AdminHandler) GetQuickSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.QuickSummary())
}

// RefreshNews godoc
// @Summary Refresh news cache
// @Description Evicts the cached article listing so the next request fetches it again
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/refresh-news [post]
func (h *AdminHandler) RefreshNews(c *gin.Context) {
	if err := h.newsService.Invalidate(); err != nil {
		logger.FromGinContext(c).WithError(err).Error("Failed to evict news cache")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear news cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "News cache cleared"})
}
