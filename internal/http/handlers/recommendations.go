package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/search/recommendations?q&tag&sort&order&page&limit
func SearchRecommendations(c *gin.Context) {
	page, err := recommendationService(c).Search(currentUser(c), services.RecommendationSearch{
		Query: c.Query("q"),
		Tag:   c.Query("tag"),
		Sort:  c.DefaultQuery("sort", "created_at"),
		Order: c.DefaultQuery("order", "desc"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 0),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recommendations": toRecommendationDTOs(page.Items),
		"pagination":      paginationOf(page.Total, page.Page, page.PerPage, page.Pages, page.HasPrev, page.HasNext),
	})
}

type rateRequest struct {
	Rating *float64 `json:"rating"`
}

// POST /api/recommendations/:id/rate
func RateRecommendation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in rateRequest
	if !BindJSONOrError(c, &in) {
		return
	}
	if in.Rating == nil {
		RespondError(c, http.StatusBadRequest, "validation_error", "rating is required")
		return
	}
	if err := recommendationService(c).Rate(currentUser(c), id, *in.Rating); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating saved", "id": id, "rating": *in.Rating})
}

// POST /api/recommendations
func CreateRecommendation(c *gin.Context) {
	var in services.RecommendationInput
	if !BindJSONOrError(c, &in) {
		return
	}
	item, err := recommendationService(c).Save(currentUser(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRecommendationDTOs([]models.WishlistItem{item})[0])
}
