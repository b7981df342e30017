package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"izesquad-api/cache"
	"izesquad-api/club"
	"izesquad-api/models"
)

const (
	dashboardCacheKey = "dashboard"
	dashboardCacheTTL = 2 * time.Second
)

type DashboardHandler struct {
	club  *club.Club
	cache *cache.Cache
}

func NewDashboardHandler(c *club.Club, cc *cache.Cache) *DashboardHandler {
	return &DashboardHandler{club: c, cache: cc}
}

// Dashboard returns the full read model. The payload is cached for a
// couple of seconds; polling clients share one rebuild.
// @Summary Get the dashboard
// @Tags dashboard
// @Produce json
// @Router /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	if cached := h.cache.Get(dashboardCacheKey); cached != nil {
		c.JSON(http.StatusOK, cached.(*models.Dashboard))
		return
	}
	d := h.club.Dashboard()
	h.cache.Set(dashboardCacheKey, d, dashboardCacheTTL)
	c.JSON(http.StatusOK, d)
}

// Health reports service liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Router /health [get]
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
}
