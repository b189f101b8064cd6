package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TodayAppointments    int64                `json:"todayAppointments"`
	TotalClients         int64                `json:"totalClients"`
	PendingNotifications int64                `json:"pendingNotifications"`
	StatusCounts         map[string]int64     `json:"statusCounts"`
	Upcoming             []models.Appointment `json:"upcoming"`
}

func GetDashboardOverview(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	now := time.Now()
	dayStart := utils.BeginningOfDay(now)
	dayEnd := utils.EndOfDay(now)

	overview := DashboardOverview{StatusCounts: map[string]int64{}}

	config.DB.Model(&models.Appointment{}).
		Where("salon_id = ? AND start_time >= ? AND start_time < ? AND status <> ?",
			salonUUID, dayStart, dayEnd, models.StatusCancelled).
		Count(&overview.TodayAppointments)

	config.DB.Model(&models.Client{}).Count(&overview.TotalClients)

	config.DB.Model(&models.Notification{}).
		Where("status = ?", models.NotificationPending).
		Count(&overview.PendingNotifications)

	rows, err := config.DB.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("salon_id = ? AND start_time >= ?", salonUUID, dayStart).
		Group("status").Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var status string
			var count int64
			if err := rows.Scan(&status, &count); err == nil {
				overview.StatusCounts[status] = count
			}
		}
	}

	config.DB.Preload("Service").Preload("Client").
		Where("salon_id = ? AND start_time >= ? AND status IN ?",
			salonUUID, now, []models.AppointmentStatus{models.StatusConfirmed, models.StatusPending}).
		Order("start_time asc").Limit(10).
		Find(&overview.Upcoming)

	c.JSON(http.StatusOK, overview)
}
