package handlers

import (
	"sync"
	"time"

	"tripplanner/internal/budget"
	"tripplanner/internal/costs"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps are the process-wide collaborators handlers build services from.
// Repositories use the shared MySQL connection from config.
type Deps struct {
	Costs     services.CostProvider
	Catalog   *costs.Catalog
	JWTSecret []byte
	JWTTTL    time.Duration
	Now       func() time.Time
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

// Init installs the handler dependencies. Call it before serving.
func Init(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func current() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// Auth exposes the token parser for the router's RequireUser middleware.
func Auth() services.AuthService {
	d := current()
	return services.AuthService{Users: repositories.UserRepository{}, Secret: d.JWTSecret, TTL: d.JWTTTL, Now: d.Now}
}

func authService(c *gin.Context) services.AuthService {
	s := Auth()
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Trips:     repositories.TripRepository{},
		Now:       current().Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func expenseService(c *gin.Context) services.ExpenseService {
	return services.ExpenseService{
		Trips:     repositories.TripRepository{},
		Expenses:  repositories.ExpenseRepository{},
		Now:       current().Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func budgetService(c *gin.Context) services.BudgetService {
	d := current()
	clock := costs.Clock(costs.SystemClock{})
	if d.Now != nil {
		clock = costs.ClockFunc(d.Now)
	}
	return services.BudgetService{
		Estimator: budget.NewEstimator(d.Costs, ratios(d.Catalog), clock),
		Trips:     repositories.TripRepository{},
		Expenses:  repositories.ExpenseRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func costService(c *gin.Context) services.CostService {
	d := current()
	return services.CostService{Costs: d.Costs, Now: d.Now, RequestID: middleware.GetRequestID(c)}
}

func cityService() services.CityService {
	return services.CityService{Catalog: current().Catalog}
}

func dashboardService() services.DashboardService {
	return services.DashboardService{Trips: repositories.TripRepository{}, Now: current().Now}
}

func recommendationService(c *gin.Context) services.RecommendationService {
	return services.RecommendationService{
		Wishlist:  repositories.WishlistRepository{},
		Now:       current().Now,
		RequestID: middleware.GetRequestID(c),
	}
}

// ratios are the catalog's fallback components; the estimator falls back to
// its defaults when there is no catalog.
func ratios(c *costs.Catalog) costs.CostComponents {
	if c == nil {
		return costs.CostComponents{}
	}
	return c.Fallback.Components
}
