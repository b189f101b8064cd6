// controllers/staff.go
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

var staffRoles = []string{models.RoleTherapist, models.RoleAssistant, models.RoleManager, models.RoleAdmin}

type CreateStaffInput struct {
	Name         string            `json:"name" binding:"required"`
	Email        string            `json:"email" binding:"required,email"`
	Password     string            `json:"password" binding:"required,min=8"`
	Phone        string            `json:"phone"`
	Role         string            `json:"role" binding:"required"`
	WorkingHours *models.WeekHours `json:"workingHours"`
}

type UpdateStaffInput struct {
	Name         *string           `json:"name"`
	Phone        *string           `json:"phone"`
	Role         *string           `json:"role"`
	WorkingHours *models.WeekHours `json:"workingHours"`
	IsActive     *bool             `json:"isActive"`
}

// GetStaff retrieves the salon's staff roster
func GetStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// AddStaff creates a staff member for the salon
func AddStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.RoleAllowed(input.Role, staffRoles) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown role")
		return
	}

	var existing models.Staff
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Staff with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	staff := models.Staff{
		SalonID:      salonUUID,
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password, // Hashed in BeforeCreate hook
		Phone:        input.Phone,
		Role:         input.Role,
		WorkingHours: input.WorkingHours,
		IsActive:     true,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff edits a staff member
func UpdateStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.Staff
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.Role != nil {
		if !utils.RoleAllowed(*input.Role, staffRoles) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown role")
			return
		}
		staff.Role = *input.Role
	}
	if input.WorkingHours != nil {
		staff.WorkingHours = input.WorkingHours
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff soft deletes a staff member
func DeleteStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		Delete(&models.Staff{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
