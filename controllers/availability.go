// controllers/availability.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAvailability handles GET /availability/:staffId?date=YYYY-MM-DD&service_id=...
// A closed day returns an empty slot list with total_slots 0.
func GetAvailability(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing date parameter")
		return
	}
	date, err := utils.ParseDate(dateStr, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	serviceUUID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing service_id parameter")
		return
	}

	granularity := 0
	if g := c.Query("granularity"); g != "" {
		granularity, err = strconv.Atoi(g)
		if err != nil || granularity <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid granularity parameter")
			return
		}
	}

	availability, err := availabilitySvc.GetAvailability(c.Request.Context(), staffUUID, date, serviceUUID, granularity)
	if err != nil {
		utils.RespondWithError(c, services.HTTPStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, availability)
}
