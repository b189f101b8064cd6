// services/notification_service.go
package services

import (
	"log"
	"os"
	"time"

	"salonbook-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const maxDispatchAttempts = 5

// NotificationService drains the SMS outbox. Delivery is at-least-once; the
// unique appointment index on the outbox dedups, and a delivery failure only
// marks the row, never the booking.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotificationService) StartDispatcher() {
	c := cron.New()

	c.AddFunc("@every 1m", func() {
		s.DispatchPending()
	})

	c.Start()
	log.Println("Notification dispatcher started")
}

// DispatchPending sends a batch of queued notifications. Failed rows stay
// pending until they exhaust their attempts.
func (s *NotificationService) DispatchPending() {
	var pending []models.Notification
	if err := s.db.
		Where("status = ? AND attempts < ?", models.NotificationPending, maxDispatchAttempts).
		Order("created_at asc").
		Limit(50).
		Find(&pending).Error; err != nil {
		log.Printf("notifications: failed to fetch pending: %v", err)
		return
	}

	for i := range pending {
		s.dispatch(&pending[i])
	}
}

func (s *NotificationService) dispatch(n *models.Notification) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.Phone)
	params.SetBody(n.Message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	n.Attempts++
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("notifications: send to %s failed: %v", n.Phone, err)
		n.LastError = err.Error()
		if n.Attempts >= maxDispatchAttempts {
			n.Status = models.NotificationFailed
		}
	} else {
		if resp.Sid != nil {
			log.Printf("notifications: sent to %s, SID: %s", n.Phone, *resp.Sid)
		} else {
			log.Printf("notifications: sent to %s, no SID returned", n.Phone)
		}
		now := time.Now()
		n.Status = models.NotificationSent
		n.SentAt = &now
		n.LastError = ""
	}

	if err := s.db.Save(n).Error; err != nil {
		log.Printf("notifications: failed to update outbox row %s: %v", n.ID, err)
	}
}
