package handlers

import (
	"net/http"

	"tripplanner/internal/expenses"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/:id/expenses
func GetTripExpenses(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, summary, err := expenseService(c).List(currentUser(c), tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": toExpenseDTOs(list), "summary": summary})
}

// POST /api/trips/:id/expenses
func CreateTripExpense(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in expenses.Input
	if !BindJSONOrError(c, &in) {
		return
	}
	e, err := expenseService(c).Create(currentUser(c), tripID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseDTO(e))
}

// DELETE /api/trips/:id/expenses/:expenseId
func DeleteTripExpense(c *gin.Context) {
	tripID, ok := pathID(c, "id")
	if !ok {
		return
	}
	expenseID, ok := pathID(c, "expenseId")
	if !ok {
		return
	}
	if err := expenseService(c).Delete(currentUser(c), tripID, expenseID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted", "id": expenseID})
}
