package store

import (
	"context"
	"errors"
	"time"

	"pathway.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// RequestStore defines the contract for service request data access.
// The Mark* methods are conditional read-modify-writes: they apply only
// when the row is still in the expected prior status (and owned by the
// given party) and report whether a row was updated. That single-statement
// discipline is what makes racing transitions linearizable.
type RequestStore interface {
	GetByID(ctx context.Context, id int64) (*model.ServiceRequest, error)
	Create(ctx context.Context, req *model.ServiceRequest) error
	MarkAccepted(ctx context.Context, id, providerID int64, notes *string, at time.Time) (bool, error)
	MarkCompleted(ctx context.Context, id, providerID int64, completionNotes *string, at time.Time) (bool, error)
	MarkConfirmed(ctx context.Context, id, clientID int64, rating int, at time.Time) (bool, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error)
	ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error)
}

// ConversationStore defines the contract for conversation data access
type ConversationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	GetByRequest(ctx context.Context, requestID int64) (*model.Conversation, error)
	// GetMembership loads the conversation and the provider-owning user
	// in one query; both transports authorize against this snapshot.
	GetMembership(ctx context.Context, id int64) (*model.ConversationMembership, error)
	Create(ctx context.Context, conv *model.Conversation) error
	Touch(ctx context.Context, id int64, at time.Time) error
	ListByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error)
	ListByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
	MarkRead(ctx context.Context, conversationID, messageID int64) (bool, error)
}

// ProviderStore defines the contract for provider data access
type ProviderStore interface {
	GetByID(ctx context.Context, id int64) (*model.Provider, error)
	GetByUser(ctx context.Context, userID int64) (*model.Provider, error)
	List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error)
	// RecalculateRating sets rating to the mean of all confirmed client
	// ratings for the provider and bumps total_reviews by one.
	RecalculateRating(ctx context.Context, id int64) error
}

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// SessionStore resolves opaque bearer tokens for the identity layer
type SessionStore interface {
	GetValidByToken(ctx context.Context, token string) (*model.Session, error)
}

// AuditStore appends audit entries. Callers treat failures as
// non-fatal; see audit.Recorder.
type AuditStore interface {
	Record(ctx context.Context, entry *model.AuditEntry) error
}
