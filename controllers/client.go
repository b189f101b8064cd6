// controllers/client.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateClientInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"isActive"`
}

type LoyaltyInput struct {
	Action string `json:"action" binding:"required,oneof=earn redeem"`
	Points int    `json:"points" binding:"required,min=1"`
}

// CreateClient finds or creates a client by phone. Returns 200 with the
// existing row when the phone is already known, 201 when a new client (plus
// its zeroed loyalty record) was created.
func CreateClient(c *gin.Context) {
	var input services.ClientData
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client, created, err := bookingSvc.FindOrCreateClient(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, services.HTTPStatus(err), err.Error())
		return
	}

	client.Notes = "" // internal notes stay off the public surface
	if created {
		c.JSON(http.StatusCreated, client)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetClientByPhone looks a client up by the phone natural key.
func GetClientByPhone(c *gin.Context) {
	phone := strings.TrimSpace(c.Param("phone"))
	if !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var client models.Client
	if err := config.DB.Preload("Loyalty").Where("phone = ?", phone).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	client.Notes = ""
	c.JSON(http.StatusOK, client)
}

// GetClients lists clients for the admin dashboard. Clients are global;
// staff of any salon may look them up.
func GetClients(c *gin.Context) {
	var clients []models.Client
	query := config.DB.Preload("Loyalty")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone LIKE ?", like, like, like)
	}
	if err := query.Order("created_at desc").Limit(200).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a client with loyalty balance and internal notes.
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.Preload("Loyalty").First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient edits a client record, including the staff-only notes. The
// phone is the natural key and is not editable here.
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// AdjustLoyalty earns or redeems points on a client's balance.
func AdjustLoyalty(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input LoyaltyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var loyalty models.LoyaltyPoints
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`SELECT * FROM loyalty_points WHERE client_id = ? FOR UPDATE`, clientUUID).
			Scan(&loyalty).Error; err != nil {
			return err
		}
		if loyalty.ID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		switch input.Action {
		case "earn":
			loyalty.Balance += input.Points
			loyalty.TotalEarned += input.Points
		case "redeem":
			if input.Points > loyalty.Balance {
				return errors.New("insufficient balance")
			}
			loyalty.Balance -= input.Points
			loyalty.TotalRedeemed += input.Points
		}

		return tx.Save(&loyalty).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else if err.Error() == "insufficient balance" {
			utils.RespondWithError(c, http.StatusBadRequest, "Insufficient loyalty balance")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to adjust loyalty points")
		}
		return
	}

	c.JSON(http.StatusOK, loyalty)
}
