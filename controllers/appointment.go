// controllers/appointment.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateAppointmentInput struct {
	SalonID   uuid.UUID  `json:"salon_id" binding:"required"`
	StaffID   uuid.UUID  `json:"staff_id" binding:"required"`
	ServiceID uuid.UUID  `json:"service_id" binding:"required"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`

	ClientID   *uuid.UUID           `json:"client_id"`
	ClientData *services.ClientData `json:"client_data"`

	ClientNotes string `json:"client_notes"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

type BlockWindowInput struct {
	StaffID   uuid.UUID `json:"staff_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type UpdateStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// CreateAppointment books a slot. 201 on success, 409 when the slot was
// taken between the availability read and this write.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := bookingSvc.CreateAppointment(c.Request.Context(), services.BookingInput{
		SalonID:       input.SalonID,
		StaffID:       input.StaffID,
		ServiceID:     input.ServiceID,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		ClientID:      input.ClientID,
		ClientData:    input.ClientData,
		ClientNotes:   input.ClientNotes,
		InternalNotes: input.Notes,
		Status:        models.AppointmentStatus(input.Status),
	})
	if err != nil {
		utils.RespondWithError(c, services.HTTPStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// BlockWindow reserves an admin-imposed unavailability window for a staff
// member. Blocked windows conflict with bookings like real appointments.
func BlockWindow(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input BlockWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	block, err := bookingSvc.BlockWindow(c.Request.Context(), salonUUID, input.StaffID,
		input.StartTime, input.EndTime, input.Notes)
	if err != nil {
		utils.RespondWithError(c, services.HTTPStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, block)
}

// GetAppointments lists the salon's appointments, optionally filtered by
// date and staff member.
func GetAppointments(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Service").Preload("Client").
		Where("salon_id = ?", salonUUID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		query = query.Where("start_time >= ? AND start_time < ?",
			utils.BeginningOfDay(date), utils.EndOfDay(date))
	}
	if staffStr := c.Query("staff_id"); staffStr != "" {
		staffUUID, err := uuid.Parse(staffStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff_id parameter")
			return
		}
		query = query.Where("staff_id = ?", staffUUID)
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a single appointment
func GetAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Service").Preload("Client").
		Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus applies a checked status transition.
func UpdateAppointmentStatus(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := appointment.UpdateStatus(config.DB, input.Status); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// A completed visit updates the client's history.
	if input.Status == models.StatusCompleted && appointment.ClientID != nil {
		now := time.Now()
		if err := config.DB.Model(&models.Client{}).Where("id = ?", *appointment.ClientID).
			Update("last_visit", &now).Error; err != nil {
			log.Printf("appointments: last_visit update for client %s failed: %v", *appointment.ClientID, err)
		}
	}

	c.JSON(http.StatusOK, appointment)
}

// CancelAppointment moves an appointment to cancelled, freeing its window.
func CancelAppointment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := appointment.UpdateStatus(config.DB, models.StatusCancelled); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	services.InvalidateDay(c.Request.Context(), config.Redis, appointment.StaffID, appointment.StartTime)

	c.JSON(http.StatusOK, appointment)
}
