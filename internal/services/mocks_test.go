package services

import (
	"context"
	"time"

	"tripplanner/internal/costs"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/expenses"

	"github.com/stretchr/testify/mock"
)

// MockTripStore is a mock implementation of TripStore for testing
type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) ListByUser(userID int64) ([]models.Trip, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripStore) Recent(userID int64, limit int) ([]models.Trip, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripStore) GetByIDs(userID int64, ids []int64) ([]models.Trip, error) {
	args := m.Called(userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripStore) Get(userID, id int64) (models.Trip, error) {
	args := m.Called(userID, id)
	return args.Get(0).(models.Trip), args.Error(1)
}

func (m *MockTripStore) Create(t models.Trip) (int64, error) {
	args := m.Called(t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripStore) Update(t models.Trip, replaceDestinations bool) error {
	return m.Called(t, replaceDestinations).Error(0)
}

func (m *MockTripStore) Delete(userID, id int64) error {
	return m.Called(userID, id).Error(0)
}

func (m *MockTripStore) Owns(userID, id int64) (bool, error) {
	args := m.Called(userID, id)
	return args.Bool(0), args.Error(1)
}

// MockExpenseStore is a mock implementation of ExpenseStore for testing
type MockExpenseStore struct {
	mock.Mock
}

func (m *MockExpenseStore) ListByTrip(tripID int64) ([]models.Expense, error) {
	args := m.Called(tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *MockExpenseStore) Create(e models.Expense) (int64, error) {
	args := m.Called(e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseStore) Delete(tripID, id int64) error {
	return m.Called(tripID, id).Error(0)
}

// MockWishlistStore is a mock implementation of WishlistStore for testing
type MockWishlistStore struct {
	mock.Mock
}

func (m *MockWishlistStore) ListByUser(userID int64) ([]models.WishlistItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistStore) Create(w models.WishlistItem) (int64, error) {
	args := m.Called(w)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishlistStore) Rate(userID, id int64, rating float64, at time.Time) error {
	return m.Called(userID, id, rating, at).Error(0)
}

// MockUserStore is a mock implementation of UserStore for testing
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(email string) (models.User, error) {
	args := m.Called(email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStore) Create(u models.User) (int64, error) {
	args := m.Called(u)
	return args.Get(0).(int64), args.Error(1)
}

// stubCosts serves a fixed three-city table.
type stubCosts struct{}

func (stubCosts) CityCosts(context.Context) []costs.CityCost {
	return []costs.CityCost{
		{Name: "Mumbai", Country: "India", DailyCost: 3000, CostIndex: "high", Multiplier: 1.8},
		{Name: "Delhi", Country: "India", DailyCost: 2000, CostIndex: "medium", Multiplier: 1.6},
		{Name: "Goa", Country: "India", DailyCost: 1000, CostIndex: "medium", Multiplier: 1.6},
	}
}

func (stubCosts) DailyCost(context.Context, string, string) float64 { return 2500 }

func (s stubCosts) Components(ctx context.Context, city, country string) costs.CostComponents {
	return costs.CostComponents{HotelCost: 2500, MealCost: 300, TransportCost: 100, CoffeeCost: 150, CostIndex: 100}
}

func (stubCosts) ExchangeRates(context.Context) map[string]float64 {
	return map[string]float64{"USD": 0.012}
}

func (stubCosts) Refresh(context.Context) costs.RefreshInfo {
	return costs.RefreshInfo{Cities: 3}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local)
}

func datePtr(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return &t
}

func expensesSummaryFixture() expenses.Summary {
	return expenses.Summary{
		TotalAmount:       2500,
		CategoryBreakdown: map[string]float64{"accommodation": 2000, "shopping": 300, "other": 200},
	}
}
