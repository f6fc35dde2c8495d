package handlers

import (
	"net/http"

	"tripplanner/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/costs/city/:city/:country
func GetCityCost(c *gin.Context) {
	view, err := costService(c).City(c.Request.Context(), c.Param("city"), c.Param("country"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/costs/cities
func GetCityCosts(c *gin.Context) {
	table := costService(c).Table(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cities": table, "currency": domain.Currency})
}

// GET /api/exchange-rates
func GetExchangeRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"base": domain.Currency, "rates": costService(c).Rates(c.Request.Context())})
}

// GET /api/flights/price?origin&destination&date
func GetFlightPrice(c *gin.Context) {
	quote, err := costService(c).FlightPrice(c.Query("origin"), c.Query("destination"), c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /api/cache/refresh
func RefreshCostCache(c *gin.Context) {
	info := costService(c).Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "cost cache refreshed", "refresh": info})
}
