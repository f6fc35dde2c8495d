package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/costs"
	"tripplanner/internal/domain"
	"tripplanner/internal/utils"
)

// EstimatedFlightFare is quoted for every route until a fare provider is wired.
const EstimatedFlightFare = 5000.0

// CostProvider is the read side of costs.Source.
type CostProvider interface {
	Components(ctx context.Context, city, country string) costs.CostComponents
	DailyCost(ctx context.Context, city, country string) float64
	CityCosts(ctx context.Context) []costs.CityCost
	ExchangeRates(ctx context.Context) map[string]float64
	Refresh(ctx context.Context) costs.RefreshInfo
}

type CostService struct {
	Costs     CostProvider
	Now       func() time.Time
	RequestID string
}

type CityCostView struct {
	City       string               `json:"city"`
	Country    string               `json:"country"`
	DailyCost  float64              `json:"daily_cost"`
	Components costs.CostComponents `json:"components"`
	Currency   string               `json:"currency"`
}

type FlightQuote struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
}

func (s CostService) City(ctx context.Context, city, country string) (CityCostView, error) {
	city, country = strings.TrimSpace(city), strings.TrimSpace(country)
	if city == "" || country == "" {
		return CityCostView{}, domain.ValidationError{Msg: "city and country are required"}
	}
	c := s.Costs.Components(ctx, city, country)
	return CityCostView{
		City:       city,
		Country:    country,
		DailyCost:  s.Costs.DailyCost(ctx, city, country),
		Components: roundComponents(c),
		Currency:   domain.Currency,
	}, nil
}

func (s CostService) Table(ctx context.Context) []costs.CityCost {
	return s.Costs.CityCosts(ctx)
}

func (s CostService) Rates(ctx context.Context) map[string]float64 {
	return s.Costs.ExchangeRates(ctx)
}

// FlightPrice quotes a flat estimated fare. Date defaults to today.
func (s CostService) FlightPrice(origin, destination, date string) (FlightQuote, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return FlightQuote{}, domain.ValidationError{Msg: "origin and destination are required"}
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = utils.FormatDate(nowOr(s.Now))
	} else if _, err := utils.ParseDate(date); err != nil {
		return FlightQuote{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	return FlightQuote{
		Price:       EstimatedFlightFare,
		Currency:    domain.Currency,
		Origin:      origin,
		Destination: destination,
		Date:        date,
	}, nil
}

func (s CostService) Refresh(ctx context.Context) costs.RefreshInfo {
	info := s.Costs.Refresh(ctx)
	utils.LogEvent(s.RequestID, "costs", "refresh", fmt.Sprintf("cities=%d degraded=%t reason=%s", info.Cities, info.Degraded, info.Reason))
	return info
}

func roundComponents(c costs.CostComponents) costs.CostComponents {
	return costs.CostComponents{
		HotelCost:     utils.RoundHalfEven(c.HotelCost, 0),
		MealCost:      utils.RoundHalfEven(c.MealCost, 0),
		TransportCost: utils.RoundHalfEven(c.TransportCost, 0),
		CoffeeCost:    utils.RoundHalfEven(c.CoffeeCost, 0),
		CostIndex:     c.CostIndex,
	}
}
