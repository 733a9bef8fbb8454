package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smarttravelhq/smart-travel-backend/config"
	"github.com/smarttravelhq/smart-travel-backend/handlers"
	"github.com/smarttravelhq/smart-travel-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	handlers.InitHandlers(cfg)

	// Public endpoints
	router.POST("/signup", handlers.Signup)
	router.POST("/login", handlers.Login)
	router.POST("/logout", handlers.Logout)
	router.GET("/api/locations", handlers.GetLocations)

	// Everything below requires an authenticated session
	authorized := router.Group("/")
	authorized.Use(middleware.Auth(cfg.JWTSecret))
	{
		// Trip endpoints
		authorized.POST("/add-trip", handlers.AddTrip)
		authorized.GET("/get-trips", handlers.GetTrips)
		authorized.GET("/get-trip-details/:tripId", handlers.GetTripDetails)
		authorized.POST("/update-trip", handlers.UpdateTrip)
		authorized.POST("/delete-trip", handlers.DeleteTrip)

		// Expense endpoints
		authorized.POST("/add-expense", handlers.AddExpense)
		authorized.GET("/get-expenses/:tripId", handlers.GetExpenses)
		authorized.GET("/export-expenses/:tripId", handlers.ExportExpenses)
	}
}
