// models/models.go
package models

// User represents a registered account
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Trip represents a planned journey owned by a user
type Trip struct {
	ID          int     `json:"id"`
	UserID      int     `json:"-"`
	TripName    string  `json:"trip_name"`
	Destination string  `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Budget      float64 `json:"budget"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Expense represents a monetary entry attached to a trip
type Expense struct {
	ID          int     `json:"id"`
	TripID      int     `json:"trip_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

// TripUpdate carries the optional fields of a partial trip update.
// A nil field means "leave the stored value untouched".
type TripUpdate struct {
	TripName    *string
	Destination *string
	StartDate   *string
	EndDate     *string
	Budget      *float64
	Latitude    *float64
	Longitude   *float64
}

// Empty reports whether the update carries no fields at all.
func (u *TripUpdate) Empty() bool {
	return u.TripName == nil && u.Destination == nil &&
		u.StartDate == nil && u.EndDate == nil &&
		u.Budget == nil && u.Latitude == nil && u.Longitude == nil
}

// Location is a single geocoder match
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ExpenseSummary aggregates a trip's spending against its budget
type ExpenseSummary struct {
	Expenses        []Expense `json:"expenses"`
	TotalSpent      float64   `json:"total_spent"`
	TripBudget      float64   `json:"trip_budget"`
	RemainingBudget float64   `json:"remaining_budget"`
}

// SignupRequest request model
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddTripRequest request model
type AddTripRequest struct {
	TripName    string   `json:"trip_name"`
	Destination string   `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

// UpdateTripRequest request model; absent fields are left untouched
type UpdateTripRequest struct {
	TripID      int      `json:"trip_id"`
	TripName    *string  `json:"trip_name"`
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Update converts the request into the repository-facing update struct.
func (r *UpdateTripRequest) Update() *TripUpdate {
	return &TripUpdate{
		TripName:    r.TripName,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

// DeleteTripRequest request model
type DeleteTripRequest struct {
	TripID int `json:"trip_id"`
}

// AddExpenseRequest request model
type AddExpenseRequest struct {
	TripID      int      `json:"trip_id"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}
