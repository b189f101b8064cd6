// services/availability_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AvailabilityService struct {
	db    *gorm.DB
	cache *redis.Client
	ttl   time.Duration
}

// NewAvailabilityService wires the availability read path. cache may be nil;
// reads then always hit the database.
func NewAvailabilityService(db *gorm.DB, cache *redis.Client, ttl time.Duration) *AvailabilityService {
	return &AvailabilityService{db: db, cache: cache, ttl: ttl}
}

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Availability struct {
	StaffID                uuid.UUID        `json:"staff_id"`
	StaffName              string           `json:"staff_name"`
	Date                   string           `json:"date"`
	ServiceDurationMinutes int              `json:"service_duration_minutes"`
	SalonHours             *models.DayHours `json:"salon_hours"`
	AvailableSlots         []Slot           `json:"available_slots"`
	TotalSlots             int              `json:"total_slots"`
}

// GetAvailability returns the free slot starts for a staff member on a date,
// for the given service. A closed day yields an empty slot list, not an
// error. granularityMinutes <= 0 falls back to the salon's configured step.
//
// This is a pure read: staleness against a later booking is resolved by the
// booking transaction's own re-validation.
func (s *AvailabilityService) GetAvailability(ctx context.Context, staffID uuid.UUID, date time.Time, serviceID uuid.UUID, granularityMinutes int) (*Availability, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var staff models.Staff
	if err := s.db.WithContext(ctx).Preload("Salon").
		First(&staff, "id = ? AND is_active = true", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff %s", ErrNotFound, staffID)
		}
		return nil, storeErr(err)
	}

	var service models.Service
	if err := s.db.WithContext(ctx).
		First(&service, "id = ? AND salon_id = ? AND is_active = true", serviceID, staff.SalonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %s", ErrNotFound, serviceID)
		}
		return nil, storeErr(err)
	}
	if service.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service %s has no duration", ErrValidation, serviceID)
	}

	if granularityMinutes <= 0 {
		granularityMinutes = staff.Salon.SlotGranularityMinutes
	}
	if granularityMinutes <= 0 {
		granularityMinutes = 30
	}

	cacheable := cacheableDate(date, time.Now().In(date.Location()))
	if cacheable {
		if cached := s.cacheGet(ctx, staffID, date, serviceID, granularityMinutes); cached != nil {
			return cached, nil
		}
	}

	result := &Availability{
		StaffID:                staff.ID,
		StaffName:              staff.Name,
		Date:                   date.Format("2006-01-02"),
		ServiceDurationMinutes: service.DurationMinutes,
		AvailableSlots:         []Slot{},
	}

	windowStart, windowEnd, open, err := ResolveDayWindow(date, staff.Salon.OpeningHours, staff.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !open {
		return result, nil
	}
	result.SalonHours = &models.DayHours{
		Open:  windowStart.Format("15:04"),
		Close: windowEnd.Format("15:04"),
	}

	busy, err := s.busyIntervals(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute
	step := time.Duration(granularityMinutes) * time.Minute
	for _, start := range utils.SlotStarts(windowStart, windowEnd, duration, step, busy, time.Now().In(date.Location())) {
		result.AvailableSlots = append(result.AvailableSlots, Slot{Start: start, End: start.Add(duration)})
	}
	result.TotalSlots = len(result.AvailableSlots)

	if cacheable {
		s.cacheSet(ctx, staffID, date, serviceID, granularityMinutes, result)
	}
	return result, nil
}

// cacheableDate reports whether cached availability for date can go stale
// only through bookings, which invalidate it explicitly. Today's slots also
// expire as the clock passes them, so today is always computed fresh.
func cacheableDate(date, now time.Time) bool {
	return date.Format("2006-01-02") != now.Format("2006-01-02")
}

// busyIntervals loads the staff member's conflict-relevant windows for a day.
func (s *AvailabilityService) busyIntervals(ctx context.Context, staffID uuid.UUID, date time.Time) ([]utils.Interval, error) {
	dayStart := utils.BeginningOfDay(date)
	dayEnd := utils.EndOfDay(date)

	var appointments []models.Appointment
	if err := s.db.WithContext(ctx).
		Where("staff_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			staffID, models.StatusCancelled, dayEnd, dayStart).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		return nil, storeErr(err)
	}

	busy := make([]utils.Interval, 0, len(appointments))
	for _, a := range appointments {
		busy = append(busy, utils.Interval{Start: a.StartTime, End: a.EndTime})
	}
	return busy, nil
}

// ResolveDayWindow computes the bookable window for a date: the salon's hours
// for that weekday, narrowed by the staff override when one is set. A weekday
// missing from a set override means the staff member is off. open=false means
// the day has no window at all.
func ResolveDayWindow(date time.Time, salonHours models.WeekHours, override *models.WeekHours) (windowStart, windowEnd time.Time, open bool, err error) {
	day, ok := salonHours.ForWeekday(date.Weekday())
	if !ok {
		return time.Time{}, time.Time{}, false, nil
	}
	windowStart, err = utils.AtClock(date, day.Open)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	windowEnd, err = utils.AtClock(date, day.Close)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	if override != nil {
		staffDay, ok := override.ForWeekday(date.Weekday())
		if !ok {
			return time.Time{}, time.Time{}, false, nil
		}
		staffStart, err := utils.AtClock(date, staffDay.Open)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		staffEnd, err := utils.AtClock(date, staffDay.Close)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		if staffStart.After(windowStart) {
			windowStart = staffStart
		}
		if staffEnd.Before(windowEnd) {
			windowEnd = staffEnd
		}
	}

	if !windowEnd.After(windowStart) {
		return time.Time{}, time.Time{}, false, nil
	}
	return windowStart, windowEnd, true, nil
}

func availabilityCacheKey(staffID uuid.UUID, date time.Time, serviceID uuid.UUID, granularity int) string {
	return fmt.Sprintf("avail:%s:%s:%s:%d", staffID, date.Format("2006-01-02"), serviceID, granularity)
}

func (s *AvailabilityService) cacheGet(ctx context.Context, staffID uuid.UUID, date time.Time, serviceID uuid.UUID, granularity int) *Availability {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, availabilityCacheKey(staffID, date, serviceID, granularity)).Bytes()
	if err != nil {
		return nil
	}
	var a Availability
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil
	}
	return &a
}

func (s *AvailabilityService) cacheSet(ctx context.Context, staffID uuid.UUID, date time.Time, serviceID uuid.UUID, granularity int, a *Availability) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, availabilityCacheKey(staffID, date, serviceID, granularity), raw, s.ttl).Err(); err != nil {
		log.Printf("availability: cache set failed: %v", err)
	}
}

// InvalidateDay drops every cached availability entry for a staff member on a
// date. Called after a booking commits.
func InvalidateDay(ctx context.Context, cache *redis.Client, staffID uuid.UUID, date time.Time) {
	if cache == nil {
		return
	}
	pattern := fmt.Sprintf("avail:%s:%s:*", staffID, date.Format("2006-01-02"))
	iter := cache.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := cache.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("availability: cache invalidate failed: %v", err)
		}
	}
}
