package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WelcomeNotification is published after a registrant is created. The
// consumer side (mail delivery) lives outside this service.
type WelcomeNotification struct {
	ID             string    `json:"id"`
	RegistrantID   uint      `json:"registrant_id"`
	RecipientEmail string    `json:"recipient_email"`
	FirstName      string    `json:"first_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewWelcomeNotification(registrantID uint, email, firstName string) *WelcomeNotification {
	return &WelcomeNotification{
		ID:             uuid.New().String(),
		RegistrantID:   registrantID,
		RecipientEmail: email,
		FirstName:      firstName,
		CreatedAt:      time.Now(),
	}
}

func (n *WelcomeNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all notifications for one recipient to the same
// partition, preserving per-recipient ordering.
func (n *WelcomeNotification) GetPartitionKey() string {
	return n.RecipientEmail
}
