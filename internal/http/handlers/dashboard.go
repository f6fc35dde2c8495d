package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/stats
func GetDashboardStats(c *gin.Context) {
	stats, err := dashboardService().Stats(currentUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/recent-trips?limit=3
func GetRecentTrips(c *gin.Context) {
	list, err := dashboardService().RecentTrips(currentUser(c), queryInt(c, "limit", 3))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": toTripDTOs(list)})
}
