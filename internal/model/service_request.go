package model

import "time"

type ServiceType string

const (
	ServiceTypeLegal      ServiceType = "Legal"
	ServiceTypeMedical    ServiceType = "Medical"
	ServiceTypeEducation  ServiceType = "Education"
	ServiceTypeEmployment ServiceType = "Employment"
	ServiceTypeHousing    ServiceType = "Housing"
	ServiceTypeOther      ServiceType = "Other"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeLegal, ServiceTypeMedical, ServiceTypeEducation,
		ServiceTypeEmployment, ServiceTypeHousing, ServiceTypeOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type RequestStatus string

// Request lifecycle. Transitions are strictly monotonic:
// REQUESTED → ACCEPTED → COMPLETED → CONFIRMED.
const (
	RequestStatusRequested RequestStatus = "REQUESTED"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
)

type ServiceRequest struct {
	ID           int64         `json:"id,string"`
	ClientID     int64         `json:"client_id,string"`
	ProviderID   int64         `json:"provider_id,string"`
	ServiceType  ServiceType   `json:"service_type"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Priority     Priority      `json:"priority"`
	Status       RequestStatus `json:"status"`
	Notes        *string       `json:"notes,omitempty"`
	ClientRating *int          `json:"client_rating,omitempty"`
	RequestedAt  time.Time     `json:"requested_at"`
	AcceptedAt   *time.Time    `json:"accepted_at,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	ConfirmedAt  *time.Time    `json:"confirmed_at,omitempty"`
}

// RequestWithProvider is the client-facing listing row: a request plus
// the provider's contact block.
type RequestWithProvider struct {
	ServiceRequest
	ProviderName  string  `json:"provider_name"`
	ProviderEmail string  `json:"provider_email"`
	ProviderPhone *string `json:"provider_phone,omitempty"`
}

// RequestWithClient is the provider-facing listing row.
type RequestWithClient struct {
	ServiceRequest
	ClientEmail string `json:"client_email"`
	ClientName  string `json:"client_name"`
}
