// handlers/trip_handlers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/middleware"
	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// AddTrip handles the creation of a new trip
func AddTrip(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	var request models.AddTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidNumeric))
		return
	}

	if err := handlerServices.TripService.CreateTrip(userID, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Trip added successfully!"})
}

// GetTrips returns all trips for the authenticated user
func GetTrips(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	trips, err := handlerServices.TripService.ListTrips(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"trips": trips})
}

// GetTripDetails returns a single trip owned by the authenticated user
func GetTripDetails(c *gin.Context) {
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

	utils.HandleSuccess(c, gin.H{"trip": trip})
}

// UpdateTrip applies a partial update to a trip owned by the user
func UpdateTrip(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	var request models.UpdateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidNumeric))
		return
	}
	if request.TripID == 0 {
		utils.HandleError(c, utils.NewValidationError("trip_id required"))
		return
	}

	if err := handlerServices.TripService.UpdateTrip(userID, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Updated"})
}

// DeleteTrip removes a trip owned by the user
func DeleteTrip(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthenticatedError(utils.ErrNotLoggedIn))
		return
	}

	var request models.DeleteTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}
	if request.TripID == 0 {
		utils.HandleError(c, utils.NewValidationError("No trip id provided"))
		return
	}

	if err := handlerServices.TripService.DeleteTrip(request.TripID, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Trip deleted successfully"})
}
