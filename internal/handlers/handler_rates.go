package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PPKK-Project/Tlan/internal/apperrors"
	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
	"github.com/PPKK-Project/Tlan/internal/dto"
	"github.com/PPKK-Project/Tlan/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for persisted currency rates.
type rateHandler struct {
	rateService portssvc.RateReaderSvc
}

func newRateHandler(rs portssvc.RateReaderSvc) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to currency rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateReaderSvc) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/:code", h.getRateByCode)
	}
}

func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

func (h *rateHandler) getRateByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	rate, err := h.rateService.GetRateByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No rate stored for currency '%s'", currencyCode)})
			return
		}
		logger.Error("Failed to get currency rate", slog.String("currency_code", currencyCode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}
