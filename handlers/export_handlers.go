// handlers/export_handlers.go
package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/middleware"
	"github.com/smarttravelhq/smart-travel-backend/utils"
)

// ExportExpenses downloads a trip's expenses as an Excel workbook
func ExportExpenses(c *gin.Context) {
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

	excelFile, filename, err := handlerServices.ReportService.ExportExpenses(trip)
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrInternal))
		return
	}
}
