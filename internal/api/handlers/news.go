package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "news-portal-backend/internal/errors"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/service"
)

// NewsHandler handles the public news endpoints
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// SearchQuery binds the search endpoint query string
type SearchQuery struct {
	Q string `form:"q" binding:"max=200"`
}

// GetFrontPage godoc
// @Summary Front page
// @Description Headline article plus the remaining articles grouped by category
// @Tags news
// @Produce json
// @Success 200 {object} service.FrontPage
// @Failure 500 {object} map[string]string "Failed to get API key"
// @Router /api/v1/news [get]
func (h *NewsHandler) GetFrontPage(c *gin.Context) {
	page, err := h.newsService.FrontPage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetArticle godoc
// @Summary Get article
// @Description One article and up to four related articles from its category
// @Tags news
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} service.ArticlePage
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 500 {object} map[string]string "Failed to get API key"
// @Router /api/v1/news/{id} [get]
func (h *NewsHandler) GetArticle(c *gin.Context) {
	page, err := h.newsService.Article(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCategory godoc
// @Summary Articles by category
// @Description Articles whose category slug matches; an empty upstream listing yields an explanatory error field
// @Tags news
// @Produce json
// @Param slug path string true "Category slug, e.g. olah-raga"
// @Success 200 {object} service.CategoryPage
// @Failure 500 {object} map[string]string "Failed to get API key"
// @Router /api/v1/categories/{slug} [get]
func (h *NewsHandler) GetCategory(c *gin.Context) {
	page, err := h.newsService.Category(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Search godoc
// @Summary Search articles
// @Description Case-insensitive substring search over title, category and author
// @Tags news
// @Produce json
// @Param q query string true "Search keywords"
// @Success 200 {object} service.SearchResult
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 500 {object} map[string]string "Failed to get API key"
// @Router /api/v1/search [get]
func (h *NewsHandler) Search(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.newsService.Search(c.Request.Context(), query.Q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Lookup godoc
// @Summary Look up articles by id
// @Description Returns the listed articles among the given ids, keyed by id; unknown ids are omitted
// @Tags news
// @Produce json
// @Param ids query string true "Comma separated article ids"
// @Success 200 {object} map[string]news.Article
// @Failure 400 {object} map[string]string "Missing ids"
// @Failure 500 {object} map[string]string "Failed to get API key"
// @Router /api/v1/news/lookup [get]
func (h *NewsHandler) Lookup(c *gin.Context) {
	var ids []string
	for _, raw := range c.QueryArray("ids") {
		ids = append(ids, strings.Split(raw, ",")...)
	}

	articles, err := h.newsService.Lookup(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		logger.FromGinContext(c).WithError(err).Error("Upstream API key unavailable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get API key"})
	default:
		logger.FromGinContext(c).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
