// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateSalonInput struct {
	Name                   *string `json:"name"`
	Address                *string `json:"address"`
	City                   *string `json:"city"`
	Phone                  *string `json:"phone"`
	Email                  *string `json:"email"`
	SlotGranularityMinutes *int    `json:"slotGranularityMinutes"`
	IsActive               *bool   `json:"isActive"`
}

// GetSalons lists active salons for the public browse page.
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Where("is_active = true").Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}
	c.JSON(http.StatusOK, salons)
}

// GetSalonBySlug returns one salon with its active services and staff.
func GetSalonBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if !utils.ValidateSlug(slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon slug")
		return
	}

	var salon models.Salon
	if err := config.DB.
		Preload("Services", "is_active = true").
		Preload("Staff", "is_active = true").
		Where("slug = ? AND is_active = true", slug).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salon)
}

// GetSalon returns the authenticated staff member's salon.
func GetSalon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// UpdateSalon edits the salon profile. Salons are never hard-deleted; setting
// isActive false hides them from the public pages.
func UpdateSalon(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	if input.Name != nil {
		salon.Name = *input.Name
	}
	if input.Address != nil {
		salon.Address = *input.Address
	}
	if input.City != nil {
		salon.City = *input.City
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		salon.Phone = *input.Phone
	}
	if input.Email != nil {
		salon.Email = *input.Email
	}
	if input.SlotGranularityMinutes != nil {
		if *input.SlotGranularityMinutes <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Slot granularity must be positive")
			return
		}
		salon.SlotGranularityMinutes = *input.SlotGranularityMinutes
	}
	if input.IsActive != nil {
		salon.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// UpdateOpeningHours replaces the salon's weekly opening hours.
func UpdateOpeningHours(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var hours models.WeekHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	salon.OpeningHours = hours
	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update opening hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Opening hours updated", "openingHours": salon.OpeningHours})
}

// salonFromContext extracts and parses the salon id placed by the auth
// middleware, writing the error response itself on failure.
func salonFromContext(c *gin.Context) (uuid.UUID, bool) {
	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return uuid.Nil, false
	}
	salonUUID, err := uuid.Parse(salonID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid salon ID format")
		return uuid.Nil, false
	}
	return salonUUID, true
}
