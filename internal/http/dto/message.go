package dto

import (
	"time"

	"pathway.app/server/internal/model"
)

type PostMessageRequest struct {
	SenderID   int64  `json:"sender_id,string" binding:"required"`
	SenderRole string `json:"sender_role" binding:"required"`
	Text       string `json:"message_text" binding:"required,min=1,max=10000"`
}

type MessageResponse struct {
	ID             int64            `json:"id,string"`
	ConversationID int64            `json:"conversation_id,string"`
	SenderID       int64            `json:"sender_id,string"`
	SenderRole     model.SenderRole `json:"sender_role"`
	Text           string           `json:"message_text"`
	IsRead         bool             `json:"is_read"`
	CreatedAt      time.Time        `json:"created_at"`
}

func ToMessageResponse(m *model.Message) *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderRole:     m.SenderRole,
		Text:           m.Text,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

func ToMessageResponses(msgs []model.Message) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, ToMessageResponse(&msgs[i]))
	}
	return out
}
