package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is global, not salon-scoped: the phone number is the natural key the
// booking flow looks up by.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `gorm:"uniqueIndex;not null" json:"phone"`
	Email     string    `json:"email"`

	// Internal notes are staff-only; public handlers strip them.
	Notes string `json:"notes,omitempty"`

	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastVisit *time.Time `json:"lastVisit"`

	Loyalty      *LoyaltyPoints `gorm:"foreignKey:ClientID" json:"loyalty,omitempty"`
	Appointments []Appointment  `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// LoyaltyPoints keeps a running balance per client, created zeroed alongside
// the client row.
type LoyaltyPoints struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"clientId"`

	Balance       int `gorm:"default:0" json:"balance"`
	TotalEarned   int `gorm:"default:0" json:"totalEarned"`
	TotalRedeemed int `gorm:"default:0" json:"totalRedeemed"`

	gorm.Model `json:"-"`
}

func (l *LoyaltyPoints) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
