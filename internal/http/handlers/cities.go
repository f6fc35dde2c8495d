package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/city-data?city=
func GetCityData(c *gin.Context) {
	info, err := cityService().Lookup(c.Query("city"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/cities/search?q&cost&popularity
func SearchCities(c *gin.Context) {
	list := cityService().Search(c.Query("q"), c.Query("cost"), c.Query("popularity"))
	c.JSON(http.StatusOK, gin.H{"cities": list, "total": len(list)})
}
