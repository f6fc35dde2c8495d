package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripplanner/internal/budget"
	intconfig "tripplanner/internal/config"
	"tripplanner/internal/costs"
	"tripplanner/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("handler-secret")

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)
}

type stubCosts struct{}

func (stubCosts) CityCosts(context.Context) []costs.CityCost {
	return []costs.CityCost{
		{Name: "Mumbai", DailyCost: 3000},
		{Name: "Delhi", DailyCost: 2000},
		{Name: "Goa", DailyCost: 1000},
	}
}

func (stubCosts) DailyCost(context.Context, string, string) float64 { return 2500 }

func (stubCosts) Components(context.Context, string, string) costs.CostComponents {
	return costs.CostComponents{HotelCost: 2500, MealCost: 300, TransportCost: 100, CoffeeCost: 150, CostIndex: 100}
}

func (stubCosts) ExchangeRates(context.Context) map[string]float64 {
	return map[string]float64{"USD": 0.012}
}

func (stubCosts) Refresh(context.Context) costs.RefreshInfo {
	return costs.RefreshInfo{Cities: 3}
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init(Deps{Costs: stubCosts{}, JWTSecret: testSecret, JWTTTL: time.Hour, Now: fixedNow})

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/budget/estimate", EstimateBudget)
	r.POST("/budget/estimate", EstimateBudgetCategorized)
	r.GET("/flights/price", GetFlightPrice)
	r.GET("/exchange-rates", GetExchangeRates)

	user := r.Group("", middleware.RequireUser(Auth()))
	user.GET("/trips", GetTrips)
	user.GET("/trips/:id", GetTrip)
	user.POST("/recommendations/:id/rate", RateRecommendation)
	return r
}

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return mock
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     fixedNow().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(r http.Handler, method, path, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestEstimateBudgetSimple(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodGet, "/budget/estimate?days=2&destinations=Goa", "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var est budget.Estimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, 2000.0, est.TotalCost)

	w = do(r, http.MethodGet, "/budget/estimate?destinations=Goa", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "validation_error", body["code"])
	assert.NotEmpty(t, body["request_id"])
}

func TestEstimateBudgetCategorizedAcceptsMixedDestinations(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodPost, "/budget/estimate",
		`{"destinations":["Goa",{"city":"Mumbai","days":1}],"duration_days":3,"comfort_level":"budget"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var est budget.CategorizedEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &est))
	assert.Equal(t, []string{"Goa", "Mumbai"}, est.CitiesResolved)
	require.Len(t, est.Stops, 2)
	assert.Equal(t, 2, est.Stops[0].Days)
	assert.Equal(t, 1, est.Stops[1].Days)
	// (2*1000 + 3000) * 0.7
	assert.InDelta(t, 3500, est.TotalBudget, 3)
}

func TestEstimateBudgetCategorizedRejectsBadInput(t *testing.T) {
	r := setup(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/budget/estimate", `{"destinations":[42],"duration_days":3}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/budget/estimate", `{"destinations":["Goa"],"duration_days":3,"comfort_level":"royal"}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/budget/estimate", `{"destinations":[],"duration_days":3}`, "").Code)
}

func TestBudgetDestinationUnmarshal(t *testing.T) {
	var list []budgetDestination
	require.NoError(t, json.Unmarshal([]byte(`[" Goa ",{"name":"Paris","country":"France","days":2},{"city":"Kochi"}]`), &list))
	require.Len(t, list, 3)
	assert.Equal(t, budgetDestination{Name: "Goa"}, list[0])
	assert.Equal(t, budgetDestination{Name: "Paris", Country: "France", Days: 2}, list[1])
	assert.Equal(t, "Kochi", list[2].Name)
}

func TestFlightPriceAndRates(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodGet, "/flights/price?origin=Delhi&destination=Goa", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 5000.0, body["price"])
	assert.Equal(t, "2024-03-15", body["date"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/flights/price?origin=Delhi", "", "").Code)

	w = do(r, http.MethodGet, "/exchange-rates", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INR", decode(t, w)["base"])
}

func TestGetTripsRequiresToken(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodGet, "/trips", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decode(t, w)["code"])
}

func TestGetTripsListsOwnTrips(t *testing.T) {
	r := setup(t)
	mock := withMockDB(t)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE user_id = \\?").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "start_date", "end_date", "status", "budget", "priority", "created_at"}).
			AddRow(2, 7, "Goa", "", start, end, "planned", 20000.0, 1, created))
	mock.ExpectQuery("SELECT (.+) FROM trip_destinations WHERE trip_id IN \\(\\?\\)").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "name", "city", "country", "order_index", "budget", "start_date", "end_date"}).
			AddRow(10, 2, "Goa", "Panaji", "India", 0, 5000.0, nil, nil))

	w := do(r, http.MethodGet, "/trips", "", bearer(t, 7))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Trips []TripDTO `json:"trips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Trips, 1)
	assert.Equal(t, "Goa", body.Trips[0].Title)
	assert.Equal(t, 3, body.Trips[0].DurationDays)
	require.NotNil(t, body.Trips[0].StartDate)
	assert.Equal(t, "2024-04-01", *body.Trips[0].StartDate)
	require.Len(t, body.Trips[0].Destinations, 1)
	assert.Equal(t, "Panaji", body.Trips[0].Destinations[0].City)
}

func TestGetTripNotFound(t *testing.T) {
	r := setup(t)
	mock := withMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnError(sql.ErrNoRows)

	w := do(r, http.MethodGet, "/trips/99", "", bearer(t, 7))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode(t, w)["code"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/trips/abc", "", bearer(t, 7)).Code)
}

func TestRateRecommendationValidation(t *testing.T) {
	r := setup(t)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/recommendations/3/rate", `{}`, bearer(t, 7)).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/recommendations/3/rate", `{"rating":7}`, bearer(t, 7)).Code)
}
