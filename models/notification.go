// models/notification.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Notification is an outbox row written inside the booking transaction and
// delivered asynchronously by the dispatcher. The unique appointment index
// dedups redelivery attempts.
type Notification struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointmentId"`
	Phone         string    `gorm:"not null" json:"phone"`
	Message       string    `gorm:"type:text;not null" json:"message"`

	Status    string `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Attempts  int    `gorm:"default:0" json:"attempts"`
	LastError string `gorm:"type:text" json:"lastError,omitempty"`

	SentAt *time.Time `json:"sentAt,omitempty"`

	gorm.Model `json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
