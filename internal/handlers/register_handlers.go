// Package handlers exposes the synchronized reference data over a read-only
// HTTP surface: currency rates, derived country info, the airport catalog
// and the in-memory safety advisory snapshot.
package handlers

import (
	"net/http"

	portssvc "github.com/PPKK-Project/Tlan/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RefDataServices bundles the service facades the read API serves from.
type RefDataServices struct {
	Rates       portssvc.RateSvcFacade
	CountryInfo portssvc.CountryInfoSvc
	Airports    portssvc.AirportSvc
	Safety      portssvc.SafetyCacheSvc
}

// RegisterRefDataRoutes registers all reference-data read routes on the
// given router group.
func RegisterRefDataRoutes(rg *gin.RouterGroup, svcs RefDataServices) {
	registerRateRoutes(rg, svcs.Rates)
	registerCountryRoutes(rg, svcs.CountryInfo)
	registerAirportRoutes(rg, svcs.Airports)
	registerSafetyRoutes(rg, svcs.Safety)
}

// GetHealth is a minimal liveness probe.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
