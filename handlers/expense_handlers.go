// handlers/expense_handlers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/middleware"
	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// AddExpense attaches an expense to a trip owned by the user
func AddExpense(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	var request models.AddExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidNumeric))
		return
	}

	// Ownership gate runs before the store ever sees the expense
	trip, err := handlerServices.TripService.GetOwnedTrip(request.TripID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := handlerServices.ExpenseService.AddExpense(trip.ID, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Expense added successfully"})
}

// GetExpenses lists a trip's expenses with the aggregate budget status
func GetExpenses(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	tripID, err := strconv.Atoi(c.Param("tripId"))
	if err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidNumeric))
		return
	}

	trip, err := handlerServices.TripService.GetOwnedTrip(tripID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary, err := handlerServices.ExpenseService.Summary(trip)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"expenses":         summary.Expenses,
		"total_spent":      summary.TotalSpent,
		"trip_budget":      summary.TripBudget,
		"remaining_budget": summary.RemainingBudget,
	})
}
