// repository/trip_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/smarttravelhq/smart-travel-backend/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{DB: db}
}

// CreateTrip inserts a trip for a user. Returns false on any persistence
// failure; a single statement, so no partial row is left behind.
func (r *TripRepository) CreateTrip(trip *models.Trip) (bool, error) {
	err := r.DB.QueryRow(
		`INSERT INTO trips (user_id, trip_name, destination, start_date, end_date, budget, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		trip.UserID, trip.TripName, trip.Destination, trip.StartDate, trip.EndDate,
		trip.Budget, trip.Latitude, trip.Longitude,
	).Scan(&trip.ID)
	if err != nil {
		return false, fmt.Errorf("failed to insert trip: %v", err)
	}
	return true, nil
}

// GetTrip retrieves a trip by id, or nil when no row matches. Callers must
// compare the owner against the acting session before trusting the result.
func (r *TripRepository) GetTrip(tripID int) (*models.Trip, error) {
	var trip models.Trip
	err := r.DB.QueryRow(
		`SELECT id, user_id, trip_name, destination, start_date, end_date, budget, latitude, longitude
		 FROM trips WHERE id = $1`,
		tripID,
	).Scan(&trip.ID, &trip.UserID, &trip.TripName, &trip.Destination,
		&trip.StartDate, &trip.EndDate, &trip.Budget, &trip.Latitude, &trip.Longitude)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %v", err)
	}
	return &trip, nil
}

// ListTrips retrieves all trips for a user in insertion order
func (r *TripRepository) ListTrips(userID int) ([]models.Trip, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, trip_name, destination, start_date, end_date, budget, latitude, longitude
		 FROM trips WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %v", err)
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(&trip.ID, &trip.UserID, &trip.TripName, &trip.Destination,
			&trip.StartDate, &trip.EndDate, &trip.Budget, &trip.Latitude, &trip.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %v", err)
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// UpdateTrip applies a partial update. Nil fields fall through to the stored
// value via COALESCE, so one fixed statement covers every field subset.
// An update carrying no fields is an idempotent no-op that never touches
// storage. Ownership is NOT re-checked here; callers run the gate first.
func (r *TripRepository) UpdateTrip(tripID int, update *models.TripUpdate) (bool, error) {
	if update.Empty() {
		return true, nil
	}

	_, err := r.DB.Exec(
		`UPDATE trips SET
			trip_name   = COALESCE($2, trip_name),
			destination = COALESCE($3, destination),
			start_date  = COALESCE($4, start_date),
			end_date    = COALESCE($5, end_date),
			budget      = COALESCE($6, budget),
			latitude    = COALESCE($7, latitude),
			longitude   = COALESCE($8, longitude)
		 WHERE id = $1`,
		tripID, update.TripName, update.Destination, update.StartDate,
		update.EndDate, update.Budget, update.Latitude, update.Longitude,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update trip: %v", err)
	}
	return true, nil
}

// DeleteTrip deletes a trip only when both id and owner match, in a single
// statement. Returns true iff exactly one row was removed; an absent trip
// and a trip owned by someone else are indistinguishable here.
func (r *TripRepository) DeleteTrip(tripID, userID int) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM trips WHERE id = $1 AND user_id = $2",
		tripID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete trip: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %v", err)
	}
	return affected == 1, nil
}
