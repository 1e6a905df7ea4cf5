package model

import "time"

type ConversationStatus string

const (
	ConversationStatusActive ConversationStatus = "ACTIVE"
	ConversationStatusClosed ConversationStatus = "CLOSED"
)

// Conversation is the messaging channel bound 1:1 to an accepted
// service request. ClientID/ProviderID always mirror the originating
// request's participants.
type Conversation struct {
	ID               int64              `json:"id,string"`
	ServiceRequestID int64              `json:"service_request_id,string"`
	ClientID         int64              `json:"client_id,string"`
	ProviderID       int64              `json:"provider_id,string"`
	Status           ConversationStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// ConversationMembership is the single-read snapshot the authorization
// gate decides over: the conversation plus the user owning its provider
// side, resolved in one query so the decision cannot race a provider
// ownership change.
type ConversationMembership struct {
	Conversation
	ProviderUserID *int64
}

// ConversationSummary is a listing row joining the conversation with its
// request and counterparty details.
type ConversationSummary struct {
	Conversation
	RequestTitle  string        `json:"request_title"`
	RequestStatus RequestStatus `json:"request_status"`

	// Populated for client-side listings.
	ProviderName *string      `json:"provider_name,omitempty"`
	ServiceType  *ServiceType `json:"service_type,omitempty"`

	// Populated for provider-side listings.
	ClientEmail *string `json:"client_email,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
}
