package controllers

import (
	"salonbook-backend/config"
	"salonbook-backend/services"
)

var (
	availabilitySvc *services.AvailabilityService
	bookingSvc      *services.BookingService
)

// Init wires the domain services once the database and cache connections
// exist. Must run before the router starts serving.
func Init() {
	availabilitySvc = services.NewAvailabilityService(config.DB, config.Redis, config.AvailabilityCacheTTL())
	bookingSvc = services.NewBookingService(config.DB, config.Redis)
}
