// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewBookingService(db *gorm.DB, cache *redis.Client) *BookingService {
	return &BookingService{db: db, cache: cache}
}

// ClientData identifies a walk-in client by phone; the booking flow reuses an
// existing row with the same phone instead of creating a duplicate.
type ClientData struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
}

type BookingInput struct {
	SalonID   uuid.UUID
	StaffID   uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	// EndTime is optional; when present it must equal start + service duration.
	EndTime *time.Time

	ClientID   *uuid.UUID
	ClientData *ClientData

	ClientNotes   string
	InternalNotes string
	Status        models.AppointmentStatus
}

// CreateAppointment books a slot atomically: resolve or create the client,
// re-validate the slot against current appointments under row locks, insert
// the appointment, and enqueue the confirmation SMS in the outbox. Either all
// of it commits or none of it does. The SMS itself goes out asynchronously;
// its failure never unwinds the booking.
func (s *BookingService) CreateAppointment(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	status := input.Status
	switch status {
	case "":
		status = models.StatusConfirmed
	case models.StatusConfirmed, models.StatusPending:
	default:
		return nil, fmt.Errorf("%w: status %q not allowed at creation", ErrValidation, status)
	}
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", ErrValidation)
	}
	if input.ClientID == nil && input.ClientData == nil {
		return nil, fmt.Errorf("%w: client_id or client_data is required", ErrValidation)
	}

	var appointment *models.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.Preload("Salon").
			First(&staff, "id = ? AND salon_id = ? AND is_active = true", input.StaffID, input.SalonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: staff %s", ErrNotFound, input.StaffID)
			}
			return storeErr(err)
		}

		var service models.Service
		if err := tx.First(&service, "id = ? AND salon_id = ? AND is_active = true",
			input.ServiceID, input.SalonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: service %s", ErrNotFound, input.ServiceID)
			}
			return storeErr(err)
		}
		if service.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %s has no duration", ErrValidation, service.ID)
		}

		client, _, err := s.resolveClient(tx, input.ClientID, input.ClientData)
		if err != nil {
			return err
		}

		endTime := input.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute)
		if input.EndTime != nil && !input.EndTime.Equal(endTime) {
			return fmt.Errorf("%w: end_time does not match service duration", ErrValidation)
		}

		windowStart, windowEnd, open, err := ResolveDayWindow(input.StartTime, staff.Salon.OpeningHours, staff.WorkingHours)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if !open || input.StartTime.Before(windowStart) || endTime.After(windowEnd) {
			return fmt.Errorf("%w: slot outside salon hours", ErrValidation)
		}

		if err := lockAndCheckOverlap(tx, input.StaffID, input.StartTime, endTime); err != nil {
			return err
		}

		appointment = &models.Appointment{
			SalonID:       input.SalonID,
			StaffID:       input.StaffID,
			ServiceID:     &service.ID,
			ClientID:      &client.ID,
			StartTime:     input.StartTime,
			EndTime:       endTime,
			Status:        status,
			ClientNotes:   input.ClientNotes,
			InternalNotes: input.InternalNotes,
		}
		if err := tx.Create(appointment).Error; err != nil {
			return createErr(err)
		}

		notification := models.Notification{
			AppointmentID: appointment.ID,
			Phone:         client.Phone,
			Message: fmt.Sprintf("Hi %s, your %s appointment at %s is booked for %s.",
				client.FirstName, service.Name, staff.Salon.Name,
				input.StartTime.Format("Mon 2 Jan 15:04")),
		}
		if err := tx.Create(&notification).Error; err != nil {
			return storeErr(err)
		}

		appointment.Client = client
		appointment.Service = &service
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateDay(ctx, s.cache, input.StaffID, input.StartTime)
	return appointment, nil
}

// BlockWindow inserts an admin-imposed unavailability window. Blocked rows
// join the same overlap check as real appointments.
func (s *BookingService) BlockWindow(ctx context.Context, salonID, staffID uuid.UUID, start, end time.Time, note string) (*models.Appointment, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	var block *models.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.First(&staff, "id = ? AND salon_id = ?", staffID, salonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: staff %s", ErrNotFound, staffID)
			}
			return storeErr(err)
		}

		if err := lockAndCheckOverlap(tx, staffID, start, end); err != nil {
			return err
		}

		block = &models.Appointment{
			SalonID:       salonID,
			StaffID:       staffID,
			StartTime:     start,
			EndTime:       end,
			Status:        models.StatusBlocked,
			InternalNotes: note,
		}
		if err := tx.Create(block).Error; err != nil {
			return createErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateDay(ctx, s.cache, staffID, start)
	return block, nil
}

// FindOrCreateClient is the idempotent phone-keyed lookup used by both the
// public client endpoint and the booking flow. Reports whether a new row was
// created.
func (s *BookingService) FindOrCreateClient(ctx context.Context, data ClientData) (*models.Client, bool, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var client *models.Client
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		client, created, err = s.resolveClient(tx, nil, &data)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return client, created, nil
}

func (s *BookingService) resolveClient(tx *gorm.DB, clientID *uuid.UUID, data *ClientData) (*models.Client, bool, error) {
	if clientID != nil {
		var client models.Client
		if err := tx.Preload("Loyalty").First(&client, "id = ?", *clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, fmt.Errorf("%w: client %s", ErrNotFound, *clientID)
			}
			return nil, false, storeErr(err)
		}
		return &client, false, nil
	}

	if !utils.ValidatePhone(data.Phone) {
		return nil, false, fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}

	var client models.Client
	err := tx.Preload("Loyalty").First(&client, "phone = ?", data.Phone).Error
	if err == nil {
		return &client, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, storeErr(err)
	}

	client = models.Client{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		IsActive:  true,
	}
	if err := tx.Create(&client).Error; err != nil {
		return nil, false, storeErr(err)
	}
	loyalty := models.LoyaltyPoints{ClientID: client.ID}
	if err := tx.Create(&loyalty).Error; err != nil {
		return nil, false, storeErr(err)
	}
	client.Loyalty = &loyalty
	return &client, true, nil
}

// lockAndCheckOverlap re-validates the slot against the current state under
// row locks, so a stale availability read cannot turn into a double booking.
func lockAndCheckOverlap(tx *gorm.DB, staffID uuid.UUID, start, end time.Time) error {
	var conflict models.Appointment
	err := tx.Raw(`
		SELECT *
		FROM appointments
		WHERE staff_id = ?
		  AND status <> 'cancelled'
		  AND deleted_at IS NULL
		  AND start_time < ?
		  AND end_time > ?
		FOR UPDATE
		LIMIT 1
	`, staffID, end, start).Scan(&conflict).Error
	if err != nil {
		return storeErr(err)
	}
	if conflict.ID != uuid.Nil {
		return fmt.Errorf("%w: slot no longer available", ErrConflict)
	}
	return nil
}

// createErr converts an exclusion-constraint violation from a concurrent
// commit into the same Conflict the pre-check produces.
func createErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "appointments_no_overlap") {
		return fmt.Errorf("%w: slot no longer available", ErrConflict)
	}
	return storeErr(err)
}
