package handlers

import (
	"net/http"

	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// safetyHandler serves the in-memory travel advisory snapshot. The snapshot
// may be stale or empty; this surface never fails because of the provider.
type safetyHandler struct {
	safetyCache portssvc.SafetyCacheSvc
}

func newSafetyHandler(sc portssvc.SafetyCacheSvc) *safetyHandler {
	return &safetyHandler{safetyCache: sc}
}

// registerSafetyRoutes registers routes related to travel advisories.
func registerSafetyRoutes(rg *gin.RouterGroup, safetyCache portssvc.SafetyCacheSvc) {
	h := newSafetyHandler(safetyCache)

	rg.GET("/safety", h.listSafetyAdvisories)
}

func (h *safetyHandler) listSafetyAdvisories(c *gin.Context) {
	c.JSON(http.StatusOK, h.safetyCache.CachedSafetyList())
}
