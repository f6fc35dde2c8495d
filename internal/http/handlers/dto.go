package handlers

import (
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

type DestinationDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	OrderIndex int     `json:"order_index"`
	Budget     float64 `json:"budget"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

type TripDTO struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	DurationDays int              `json:"duration_days"`
	Status       string           `json:"status"`
	Budget       float64          `json:"budget"`
	Priority     int              `json:"priority"`
	CreatedAt    string           `json:"created_at"`
	Destinations []DestinationDTO `json:"destinations"`
}

type ExpenseDTO struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"trip_id"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	ExpenseDate   string  `json:"expense_date"`
	CreatedAt     string  `json:"created_at"`
	DestinationID *int64  `json:"destination_id"`
}

type RecommendationDTO struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	ImageURL  string   `json:"image_url"`
	Tags      []string `json:"tags"`
	Rating    float64  `json:"rating"`
	LastRated *string  `json:"last_rated"`
	CreatedAt string   `json:"created_at"`
}

func toTripDTO(t models.Trip) TripDTO {
	out := TripDTO{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		StartDate:    utils.FormatDatePtr(t.StartDate),
		EndDate:      utils.FormatDatePtr(t.EndDate),
		DurationDays: t.DurationDays(),
		Status:       t.Status,
		Budget:       t.Budget,
		Priority:     t.Priority,
		CreatedAt:    utils.FormatDateTime(t.CreatedAt),
		Destinations: make([]DestinationDTO, 0, len(t.Destinations)),
	}
	for _, d := range t.Destinations {
		out.Destinations = append(out.Destinations, DestinationDTO{
			ID:         d.ID,
			Name:       d.Name,
			City:       d.City,
			Country:    d.Country,
			OrderIndex: d.OrderIndex,
			Budget:     d.Budget,
			StartDate:  utils.FormatDatePtr(d.StartDate),
			EndDate:    utils.FormatDatePtr(d.EndDate),
		})
	}
	return out
}

func toTripDTOs(list []models.Trip) []TripDTO {
	out := make([]TripDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toTripDTO(t))
	}
	return out
}

func toExpenseDTOs(list []models.Expense) []ExpenseDTO {
	out := make([]ExpenseDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseDTO(e))
	}
	return out
}

func toExpenseDTO(e models.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:            e.ID,
		TripID:        e.TripID,
		Category:      e.Category,
		Amount:        e.Amount,
		Description:   e.Description,
		ExpenseDate:   utils.FormatDate(e.ExpenseDate),
		CreatedAt:     utils.FormatDateTime(e.CreatedAt),
		DestinationID: e.DestinationID,
	}
}

func toRecommendationDTOs(list []models.WishlistItem) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(list))
	for _, w := range list {
		var lastRated *string
		if w.LastRated != nil {
			s := utils.FormatDateTime(*w.LastRated)
			lastRated = &s
		}
		tags := w.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, RecommendationDTO{
			ID:        w.ID,
			Title:     w.Title,
			City:      w.City,
			Country:   w.Country,
			ImageURL:  w.ImageURL,
			Tags:      tags,
			Rating:    w.Rating,
			LastRated: lastRated,
			CreatedAt: utils.FormatDateTime(w.CreatedAt),
		})
	}
	return out
}
