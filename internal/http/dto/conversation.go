package dto

import (
	"time"

	"pathway.app/server/internal/model"
)

type ConversationResponse struct {
	ID               int64                    `json:"id,string"`
	ServiceRequestID int64                    `json:"service_request_id,string"`
	ClientID         int64                    `json:"client_id,string"`
	ProviderID       int64                    `json:"provider_id,string"`
	Status           model.ConversationStatus `json:"status"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func ToConversationResponse(c *model.Conversation) *ConversationResponse {
	return &ConversationResponse{
		ID:               c.ID,
		ServiceRequestID: c.ServiceRequestID,
		ClientID:         c.ClientID,
		ProviderID:       c.ProviderID,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type ConversationSummaryResponse struct {
	ConversationResponse
	RequestTitle  string              `json:"request_title"`
	RequestStatus model.RequestStatus `json:"request_status"`

	ProviderName *string            `json:"provider_name,omitempty"`
	ServiceType  *model.ServiceType `json:"service_type,omitempty"`

	Client *ClientContact `json:"client,omitempty"`
}

func ToConversationSummaryResponse(c model.ConversationSummary) ConversationSummaryResponse {
	resp := ConversationSummaryResponse{
		ConversationResponse: *ToConversationResponse(&c.Conversation),
		RequestTitle:         c.RequestTitle,
		RequestStatus:        c.RequestStatus,
		ProviderName:         c.ProviderName,
		ServiceType:          c.ServiceType,
	}
	if c.ClientEmail != nil || c.ClientName != nil {
		client := ClientContact{}
		if c.ClientEmail != nil {
			client.Email = *c.ClientEmail
		}
		if c.ClientName != nil {
			client.Name = *c.ClientName
		}
		resp.Client = &client
	}
	return resp
}
