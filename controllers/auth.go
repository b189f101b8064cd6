// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email        string           `json:"email" binding:"required,email"`
	Phone        string           `json:"phone" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	Password     string           `json:"password" binding:"required,min=8"`
	SalonName    string           `json:"salonName" binding:"required"`
	SalonAddress string           `json:"salonAddress"`
	SalonCity    string           `json:"salonCity"`
	OpeningHours models.WeekHours `json:"openingHours"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register bootstraps a salon together with its first admin staff account.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var existingStaff models.Staff
	result := config.DB.Where("email = ?", input.Email).First(&existingStaff)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hours := input.OpeningHours
	if hours == nil {
		hours = models.DefaultWeekHours()
	}

	slug := utils.Slugify(input.SalonName)
	if !utils.ValidateSlug(slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Salon name does not produce a valid slug")
		return
	}

	salon := models.Salon{
		Name:         input.SalonName,
		Slug:         slug,
		Address:      input.SalonAddress,
		City:         input.SalonCity,
		OpeningHours: hours,
		IsActive:     true,
	}
	staff := models.Staff{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password, // Hashed in BeforeCreate hook
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&salon).Error; err != nil {
			return err
		}
		staff.SalonID = salon.ID
		return tx.Create(&staff).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			utils.RespondWithError(c, http.StatusConflict, "Salon name or email already in use")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register salon")
		return
	}

	token, err := utils.GenerateToken(staff.ID.String(), salon.ID.String(), staff.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"staff": gin.H{
			"id":    staff.ID,
			"email": staff.Email,
			"name":  staff.Name,
			"role":  staff.Role,
		},
		"salon": gin.H{
			"id":   salon.ID,
			"name": salon.Name,
			"slug": salon.Slug,
		},
	})
}

// isDuplicateKey recognizes unique-constraint violations (salon slug, staff
// email) so registration races surface as a conflict rather than a server
// error.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key value")
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var staff models.Staff
	result := config.DB.Where("email = ? AND is_active = true", email).First(&staff)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, staff.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(staff.ID.String(), staff.SalonID.String(), staff.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"staff": gin.H{
			"id":    staff.ID,
			"email": staff.Email,
			"name":  staff.Name,
			"role":  staff.Role,
		},
	})
}

func Me(c *gin.Context) {
	staffID, exists := c.Get("staffId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Staff ID not found in context")
		return
	}

	var staff models.Staff
	if err := config.DB.Preload("Salon").First(&staff, "id = ?", staffID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": gin.H{
			"id":        staff.ID,
			"email":     staff.Email,
			"name":      staff.Name,
			"role":      staff.Role,
			"salonId":   staff.SalonID,
			"salonName": staff.Salon.Name,
		},
	})
}
