// services/expense_service.go
package services

import (
	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/repository"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// ExpenseService handles expense business rules and budget aggregation
type ExpenseService struct {
	expenses *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenses *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// AddExpense validates and stores an expense. The caller has already run
// the ownership gate for the trip.
func (s *ExpenseService) AddExpense(tripID int, request *models.AddExpenseRequest) error {
	if err := utils.ValidateRequired(request.Category, "category"); err != nil {
		return err
	}
	if request.Amount == nil {
		return utils.NewValidationError("amount is required")
	}
	if err := utils.ValidatePositive(*request.Amount, "amount"); err != nil {
		return err
	}

	expense := &models.Expense{
		TripID:      tripID,
		Category:    request.Category,
		Amount:      *request.Amount,
		Description: request.Description,
	}

	created, err := s.expenses.CreateExpense(expense)
	if err != nil || !created {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// Summary lists a trip's expenses and computes the aggregate budget status:
// remaining_budget = trip_budget - total_spent.
func (s *ExpenseService) Summary(trip *models.Trip) (*models.ExpenseSummary, error) {
	expenses, err := s.expenses.ListExpenses(trip.ID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	total = utils.Round(total)

	return &models.ExpenseSummary{
		Expenses:        expenses,
		TotalSpent:      total,
		TripBudget:      trip.Budget,
		RemainingBudget: utils.Round(trip.Budget - total),
	}, nil
}
