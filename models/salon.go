package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	Slug string    `gorm:"uniqueIndex;not null" json:"slug"`

	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	OpeningHours           WeekHours `gorm:"type:jsonb;default:'{}'" json:"openingHours"`
	SlotGranularityMinutes int       `gorm:"default:30" json:"slotGranularityMinutes"`
	IsActive               bool      `gorm:"default:true" json:"isActive"`

	Staff        []Staff       `gorm:"foreignKey:SalonID" json:"staff,omitempty"`
	Services     []Service     `gorm:"foreignKey:SalonID" json:"services,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:SalonID" json:"-"`

	gorm.Model `json:"-"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// DayHours is the open/close window for a single weekday, times as "HH:MM".
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeekHours maps lowercase weekday names ("monday" ... "sunday") to that day's
// window. Stored as a jsonb column.
type WeekHours map[string]DayHours

func (w WeekHours) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeekHours) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, w)
}

// ForWeekday returns the window for the given weekday, or ok=false when the
// day is absent or marked closed.
func (w WeekHours) ForWeekday(day time.Weekday) (DayHours, bool) {
	h, ok := w[strings.ToLower(day.String())]
	if !ok || h.Closed || h.Open == "" || h.Close == "" {
		return DayHours{}, false
	}
	return h, true
}

// DefaultWeekHours is applied to salons registered without explicit hours.
func DefaultWeekHours() WeekHours {
	return WeekHours{
		"monday":    {Open: "09:00", Close: "20:00"},
		"tuesday":   {Open: "09:00", Close: "20:00"},
		"wednesday": {Open: "09:00", Close: "20:00"},
		"thursday":  {Open: "09:00", Close: "20:00"},
		"friday":    {Open: "09:00", Close: "20:00"},
		"saturday":  {Open: "09:00", Close: "21:00"},
		"sunday":    {Open: "10:00", Close: "19:00", Closed: true},
	}
}
