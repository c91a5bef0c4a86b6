// AngelaMos | 2026
// entity.go

package subscribe

import (
	"time"
)

type Subscriber struct {
	ID             int64     `db:"id"              json:"id"`
	WhatsAppNumber string    `db:"whatsapp_number" json:"whatsapp_number"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
}

type SubscribeRequest struct {
	WhatsAppNumber string `json:"whatsappNumber" validate:"required,len=10,number"`
}

const (
	MessageSubscribed        = "subscribed successfully"
	MessageAlreadySubscribed = "already subscribed"
)
