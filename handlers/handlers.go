package handlers

import (
	"github.com/smarttravelhq/smart-travel-backend/config"
	"github.com/smarttravelhq/smart-travel-backend/repository"
	"github.com/smarttravelhq/smart-travel-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	AuthService      *services.AuthService
	TripService      *services.TripService
	ExpenseService   *services.ExpenseService
	GeocodingService *services.GeocodingService
	ReportService    *services.ReportService
}

// NewHandlerServices wires repositories and services onto the shared DB
func NewHandlerServices(cfg *config.Config) *HandlerServices {
	db := repository.GetDB()
	expenseService := services.NewExpenseService(repository.NewExpenseRepository(db))
	return &HandlerServices{
		AuthService:      services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.SessionTTLHours),
		TripService:      services.NewTripService(repository.NewTripRepository(db)),
		ExpenseService:   expenseService,
		GeocodingService: services.NewGeocodingService(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent),
		ReportService:    services.NewReportService(expenseService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(cfg *config.Config) {
	handlerServices = NewHandlerServices(cfg)
}
