package models

import (
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles, in increasing order of administrative reach.
const (
	RoleTherapist = "therapist"
	RoleAssistant = "assistant"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
)

type Staff struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null" json:"salonId"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `json:"phone"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"`

	// WorkingHours overrides the salon's opening hours when set. A weekday
	// missing from the override means the staff member is off that day.
	WorkingHours *WeekHours `gorm:"type:jsonb" json:"workingHours,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Salon        Salon         `gorm:"foreignKey:SalonID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:StaffID" json:"-"`

	gorm.Model `json:"-"`
}

// Hash the password before the row is first written.
func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(s.Password)
	if err != nil {
		return err
	}
	s.Password = hashed
	return
}
