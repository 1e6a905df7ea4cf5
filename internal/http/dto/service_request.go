package dto

import (
	"time"

	"pathway.app/server/internal/model"
)

type CreateServiceRequestRequest struct {
	ClientID    int64   `json:"client_id,string" binding:"required"`
	ProviderID  int64   `json:"provider_id,string" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	Priority    string  `json:"priority,omitempty"`
}

type AcceptServiceRequestRequest struct {
	ProviderID int64   `json:"provider_id,string" binding:"required"`
	Notes      *string `json:"notes,omitempty" binding:"omitempty,max=4000"`
}

type CompleteServiceRequestRequest struct {
	ProviderID      int64   `json:"provider_id,string" binding:"required"`
	CompletionNotes *string `json:"completion_notes,omitempty" binding:"omitempty,max=4000"`
}

type ConfirmServiceRequestRequest struct {
	ClientID int64 `json:"client_id,string" binding:"required"`
	Rating   int   `json:"rating" binding:"required"`
}

type ServiceRequestResponse struct {
	ID           int64               `json:"id,string"`
	ClientID     int64               `json:"client_id,string"`
	ProviderID   int64               `json:"provider_id,string"`
	ServiceType  model.ServiceType   `json:"service_type"`
	Title        string              `json:"title"`
	Description  *string             `json:"description,omitempty"`
	Priority     model.Priority      `json:"priority"`
	Status       model.RequestStatus `json:"status"`
	Notes        *string             `json:"notes,omitempty"`
	ClientRating *int                `json:"client_rating,omitempty"`
	RequestedAt  time.Time           `json:"requested_at"`
	AcceptedAt   *time.Time          `json:"accepted_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	ConfirmedAt  *time.Time          `json:"confirmed_at,omitempty"`
}

func ToServiceRequestResponse(r *model.ServiceRequest) *ServiceRequestResponse {
	return &ServiceRequestResponse{
		ID:           r.ID,
		ClientID:     r.ClientID,
		ProviderID:   r.ProviderID,
		ServiceType:  r.ServiceType,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
		Status:       r.Status,
		Notes:        r.Notes,
		ClientRating: r.ClientRating,
		RequestedAt:  r.RequestedAt,
		AcceptedAt:   r.AcceptedAt,
		CompletedAt:  r.CompletedAt,
		ConfirmedAt:  r.ConfirmedAt,
	}
}

// ProviderContact is the provider block on client-facing request listings.
type ProviderContact struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type RequestWithProviderResponse struct {
	ServiceRequestResponse
	Provider ProviderContact `json:"provider"`
}

func ToRequestWithProviderResponse(r model.RequestWithProvider) RequestWithProviderResponse {
	return RequestWithProviderResponse{
		ServiceRequestResponse: *ToServiceRequestResponse(&r.ServiceRequest),
		Provider: ProviderContact{
			Name:  r.ProviderName,
			Email: r.ProviderEmail,
			Phone: r.ProviderPhone,
		},
	}
}

// ClientContact is the client block on provider-facing request listings.
type ClientContact struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RequestWithClientResponse struct {
	ServiceRequestResponse
	Client ClientContact `json:"client"`
}

func ToRequestWithClientResponse(r model.RequestWithClient) RequestWithClientResponse {
	return RequestWithClientResponse{
		ServiceRequestResponse: *ToServiceRequestResponse(&r.ServiceRequest),
		Client: ClientContact{
			Email: r.ClientEmail,
			Name:  r.ClientName,
		},
	}
}
