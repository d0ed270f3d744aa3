package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
	"github.com/PPKK-Project/Tlan/internal/dto"
	"github.com/PPKK-Project/Tlan/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryHandler handles HTTP requests for derived country info.
type countryHandler struct {
	countryService portssvc.CountryInfoSvc
}

func newCountryHandler(cs portssvc.CountryInfoSvc) *countryHandler {
	return &countryHandler{countryService: cs}
}

// registerCountryRoutes registers routes related to country info.
func registerCountryRoutes(rg *gin.RouterGroup, countryService portssvc.CountryInfoSvc) {
	h := newCountryHandler(countryService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountries)
		countries.GET("/:code", h.getCountryByCode)
	}
}

func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	infos, err := h.countryService.ListCountryInfo(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list country info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country info"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryInfoResponse(infos))
}

func (h *countryHandler) getCountryByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	countryCode := strings.ToUpper(c.Param("code"))

	if len(countryCode) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Country code must be 2 letters"})
		return
	}

	info, err := h.countryService.GetCountryInfoByCode(c.Request.Context(), countryCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No country info for '%s'", countryCode)})
			return
		}
		logger.Error("Failed to get country info", slog.String("country_code", countryCode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country info"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryInfoResponse(info))
}
