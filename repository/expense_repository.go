// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/smarttravelhq/smart-travel-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

// CreateExpense inserts an expense for a trip. Ownership of the trip must
// already have been checked by the caller.
func (r *ExpenseRepository) CreateExpense(expense *models.Expense) (bool, error) {
	err := r.DB.QueryRow(
		`INSERT INTO expenses (trip_id, category, amount, description)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		expense.TripID, expense.Category, expense.Amount, expense.Description,
	).Scan(&expense.ID)
	if err != nil {
		return false, fmt.Errorf("failed to insert expense: %v", err)
	}
	return true, nil
}

// ListExpenses retrieves all expenses for a trip
func (r *ExpenseRepository) ListExpenses(tripID int) ([]models.Expense, error) {
	rows, err := r.DB.Query(
		"SELECT id, trip_id, category, amount, description FROM expenses WHERE trip_id = $1 ORDER BY id ASC",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.TripID, &expense.Category,
			&expense.Amount, &expense.Description); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}
