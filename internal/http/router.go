package api

import (
	stdhttp "net/http"

	intconfig "tripplanner/internal/config"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger.Named("http")), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		// Public cost and city data
		api.GET("/budget/estimate", h.EstimateBudget)
		api.POST("/budget/estimate", h.EstimateBudgetCategorized)
		api.GET("/costs/city/:city/:country", h.GetCityCost)
		api.GET("/costs/cities", h.GetCityCosts)
		api.GET("/exchange-rates", h.GetExchangeRates)
		api.GET("/flights/price", h.GetFlightPrice)
		api.POST("/cache/refresh", h.RefreshCostCache)
		api.GET("/city-data", h.GetCityData)
		api.GET("/cities/search", h.SearchCities)

		user := api.Group("", middleware.RequireUser(h.Auth()))

		// Trips
		trips := user.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.POST("", h.CreateTrip)
		trips.GET("/:id", h.GetTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.GET("/:id/cities", h.GetTripCities)

		// Expenses
		trips.GET("/:id/expenses", h.GetTripExpenses)
		trips.POST("/:id/expenses", h.CreateTripExpense)
		trips.DELETE("/:id/expenses/:expenseId", h.DeleteTripExpense)

		// Budget reconciliation
		trips.GET("/:id/budget", h.GetTripBudget)
		trips.GET("/:id/budget/report.pdf", h.GetTripBudgetPDF)

		// Search and sort
		user.GET("/search/trips", h.SearchTrips)
		user.POST("/sort/trips", h.SortTrips)
		user.GET("/search/recommendations", h.SearchRecommendations)
		user.POST("/recommendations", h.CreateRecommendation)
		user.POST("/recommendations/:id/rate", h.RateRecommendation)

		// Dashboard
		dashboard := user.Group("/dashboard")
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/recent-trips", h.GetRecentTrips)
	}

	h.SetRouter(r)
	return r
}
