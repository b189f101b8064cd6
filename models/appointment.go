package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusPending    AppointmentStatus = "pending"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
	// StatusBlocked marks an admin-imposed unavailability window. Blocked rows
	// have no client or service and take part in the overlap check like any
	// other appointment.
	StatusBlocked AppointmentStatus = "blocked"
)

type Appointment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SalonID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"salonId"`
	StaffID   uuid.UUID  `gorm:"type:uuid;index:idx_staff_start;not null" json:"staffId"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index" json:"serviceId,omitempty"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index" json:"clientId,omitempty"`

	StartTime time.Time         `gorm:"index:idx_staff_start;not null" json:"startTime"`
	EndTime   time.Time         `gorm:"not null" json:"endTime"`
	Status    AppointmentStatus `gorm:"type:varchar(20);default:'confirmed'" json:"status"`

	ClientNotes   string `json:"clientNotes"`
	InternalNotes string `json:"internalNotes,omitempty"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Staff   Staff    `gorm:"foreignKey:StaffID" json:"-"`

	gorm.Model `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	return
}

// CountsForConflicts reports whether this row participates in the
// no-overlap invariant for its staff member. Only cancellations free the
// window again.
func (a *Appointment) CountsForConflicts() bool {
	return a.Status != StatusCancelled
}

// validTransitions maps a status to the statuses it may move to. Terminal
// states have no entry.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusBlocked:    {StatusCancelled},
}

// CanTransition reports whether moving from the current status to next is a
// legal state change.
func (a *Appointment) CanTransition(next AppointmentStatus) bool {
	for _, s := range validTransitions[a.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// UpdateStatus applies a checked status change and persists it.
func (a *Appointment) UpdateStatus(tx *gorm.DB, next AppointmentStatus) error {
	if !a.CanTransition(next) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, next)
	}
	a.Status = next
	return tx.Save(a).Error
}
