package model

import "time"

type SenderRole string

const (
	SenderRoleClient   SenderRole = "CLIENT"
	SenderRoleProvider SenderRole = "PROVIDER"
)

func (r SenderRole) Valid() bool {
	return r == SenderRoleClient || r == SenderRoleProvider
}

// Message is append-only; IsRead is the only mutable field.
type Message struct {
	ID             int64      `json:"id,string"`
	ConversationID int64      `json:"conversation_id,string"`
	SenderID       int64      `json:"sender_id,string"`
	SenderRole     SenderRole `json:"sender_role"`
	Text           string     `json:"message_text"`
	IsRead         bool       `json:"is_read"`
	CreatedAt      time.Time  `json:"created_at"`
}
