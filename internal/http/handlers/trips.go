package handlers

import (
	"net/http"

	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips
func GetTrips(c *gin.Context) {
	list, err := tripService(c).List(currentUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": toTripDTOs(list)})
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := tripService(c).Get(currentUser(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(t))
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := tripService(c).Create(currentUser(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripDTO(t))
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := tripService(c).Update(currentUser(c), id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(t))
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := tripService(c).Delete(currentUser(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted", "id": id})
}

// GET /api/trips/:id/cities
func GetTripCities(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cities, err := tripService(c).Cities(currentUser(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip_id": id, "cities": cities})
}

// GET /api/search/trips?q&status&sort&order&page&limit
func SearchTrips(c *gin.Context) {
	page, err := tripService(c).Search(currentUser(c), services.TripSearch{
		Query:  c.Query("q"),
		Status: c.Query("status"),
		Sort:   c.DefaultQuery("sort", "created_at"),
		Order:  c.DefaultQuery("order", "desc"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 0),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trips":      toTripDTOs(page.Items),
		"pagination": paginationOf(page.Total, page.Page, page.PerPage, page.Pages, page.HasPrev, page.HasNext),
	})
}

type sortTripsRequest struct {
	TripIDs []int64 `json:"trip_ids"`
	SortBy  string  `json:"sort_by"`
	Reverse bool    `json:"reverse"`
}

// POST /api/sort/trips
func SortTrips(c *gin.Context) {
	var in sortTripsRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if len(in.TripIDs) == 0 {
		RespondError(c, http.StatusBadRequest, "validation_error", "trip_ids is required")
		return
	}
	ids, err := tripService(c).SortIDs(currentUser(c), in.TripIDs, in.SortBy, in.Reverse)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sorted_ids": ids})
}

func paginationOf(total, page, perPage, pages int, hasPrev, hasNext bool) gin.H {
	return gin.H{
		"total":    total,
		"page":     page,
		"per_page": perPage,
		"pages":    pages,
		"has_prev": hasPrev,
		"has_next": hasNext,
	}
}
