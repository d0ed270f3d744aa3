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

// airportHandler handles HTTP requests for the airport catalog.
type airportHandler struct {
	airportService portssvc.AirportSvc
}

func newAirportHandler(as portssvc.AirportSvc) *airportHandler {
	return &airportHandler{airportService: as}
}

// registerAirportRoutes registers routes related to airports.
func registerAirportRoutes(rg *gin.RouterGroup, airportService portssvc.AirportSvc) {
	h := newAirportHandler(airportService)

	airports := rg.Group("/airports")
	{
		airports.GET("", h.listAirports)
		airports.GET("/:code", h.getAirportByCode)
	}
}

func (h *airportHandler) listAirports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	airports, err := h.airportService.ListAirports(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list airports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve airports"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAirportResponse(airports))
}

func (h *airportHandler) getAirportByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport code must be 3 letters"})
		return
	}

	airport, err := h.airportService.GetAirportByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No airport with code '%s'", code)})
			return
		}
		logger.Error("Failed to get airport", slog.String("airport_code", code), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve airport"})
		return
	}

	c.JSON(http.StatusOK, airport)
}
