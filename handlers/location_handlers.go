// handlers/location_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/models"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// GetLocations proxies a destination search to the geocoder. This endpoint
// never hard-fails: lookup problems come back as an error envelope with an
// empty result list.
func GetLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{
			"status":    "error",
			"message":   utils.ErrQueryRequired,
			"locations": []models.Location{},
		})
		return
	}

	locations, err := handlerServices.GeocodingService.Search(query)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "error",
			"message":   "Location lookup failed",
			"locations": []models.Location{},
		})
		return
	}

	utils.HandleSuccess(c, gin.H{"locations": locations})
}
