// services/trip_service.go
package services

import (
	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/repository"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// TripService handles trip business rules: input validation and the
// ownership gate in front of every single-trip read or mutation.
type TripService struct {
	trips *repository.TripRepository
}

// NewTripService creates a new TripService
func NewTripService(trips *repository.TripRepository) *TripService {
	return &TripService{trips: trips}
}

// CreateTrip validates and stores a new trip for a user
func (s *TripService) CreateTrip(userID int, request *models.AddTripRequest) error {
	if request.TripName == "" || request.Destination == "" {
		return utils.NewValidationError(utils.ErrTripFieldsRequired)
	}
	if err := utils.ValidateLocation(request.Latitude, request.Longitude); err != nil {
		return err
	}

	budget := 0.0
	if request.Budget != nil {
		budget = *request.Budget
	}
	if err := utils.ValidateNonNegative(budget, "budget"); err != nil {
		return err
	}

	trip := &models.Trip{
		UserID:      userID,
		TripName:    request.TripName,
		Destination: request.Destination,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Budget:      budget,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
	}

	created, err := s.trips.CreateTrip(trip)
	if err != nil || !created {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// GetOwnedTrip is the ownership gate: it resolves a trip and rejects the
// call unless the acting user owns it. Absent trip and foreign trip are
// reported distinctly (404 vs 403).
func (s *TripService) GetOwnedTrip(tripID, userID int) (*models.Trip, error) {
	trip, err := s.trips.GetTrip(tripID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	if trip == nil {
		return nil, utils.NewNotFoundError(utils.ErrTripNotFound)
	}
	if trip.UserID != userID {
		return nil, utils.NewForbiddenError(utils.ErrNotAuthorized)
	}
	return trip, nil
}

// ListTrips returns all trips for a user
func (s *TripService) ListTrips(userID int) ([]models.Trip, error) {
	trips, err := s.trips.ListTrips(userID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return trips, nil
}

// UpdateTrip runs the ownership gate, validates the supplied fields, and
// applies the partial update. Supplying no fields succeeds without touching
// storage.
func (s *TripService) UpdateTrip(userID int, request *models.UpdateTripRequest) error {
	if _, err := s.GetOwnedTrip(request.TripID, userID); err != nil {
		return err
	}

	if request.Budget != nil {
		if err := utils.ValidateNonNegative(*request.Budget, "budget"); err != nil {
			return err
		}
	}
	if request.TripName != nil {
		if err := utils.ValidateRequired(*request.TripName, "trip_name"); err != nil {
			return err
		}
	}
	if request.Destination != nil {
		if err := utils.ValidateRequired(*request.Destination, "destination"); err != nil {
			return err
		}
	}

	updated, err := s.trips.UpdateTrip(request.TripID, request.Update())
	if err != nil || !updated {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	return nil
}

// DeleteTrip removes a trip through the atomic id+owner predicate. The
// combined delete cannot tell an absent trip from a foreign one, so both
// report the same generic failure.
func (s *TripService) DeleteTrip(tripID, userID int) error {
	deleted, err := s.trips.DeleteTrip(tripID, userID)
	if err != nil {
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !deleted {
		return utils.NewNotFoundError(utils.ErrTripNotFoundOrOwn)
	}
	return nil
}
