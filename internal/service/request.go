package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pathway.app/server/common/id"
	"pathway.app/server/internal/audit"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/store"
)

// RequestService owns the service request state machine:
// REQUESTED → ACCEPTED → COMPLETED → CONFIRMED, strictly monotonic.
type RequestService interface {
	Create(ctx context.Context, in CreateRequestInput) (*model.ServiceRequest, error)
	Accept(ctx context.Context, requestID, providerID int64, notes *string) (*model.Conversation, error)
	Complete(ctx context.Context, requestID, providerID int64, completionNotes *string) error
	Confirm(ctx context.Context, requestID, clientID int64, rating int) error
	GetConversation(ctx context.Context, requestID int64) (*model.Conversation, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error)
	ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error)
}

type CreateRequestInput struct {
	ClientID    int64
	ProviderID  int64
	ServiceType model.ServiceType
	Title       string
	Description *string
	Priority    model.Priority
}

type requestService struct {
	requests      store.RequestStore
	conversations store.ConversationStore
	txRunner      TxRunner
	audit         audit.Recorder
}

func NewRequestService(
	requests store.RequestStore,
	conversations store.ConversationStore,
	txRunner TxRunner,
	auditRecorder audit.Recorder,
) RequestService {
	return &requestService{
		requests:      requests,
		conversations: conversations,
		txRunner:      txRunner,
		audit:         auditRecorder,
	}
}

func (s *requestService) Create(ctx context.Context, in CreateRequestInput) (*model.ServiceRequest, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !in.ServiceType.Valid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, in.ServiceType)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, in.Priority)
	}

	req := &model.ServiceRequest{
		ID:          id.New(),
		ClientID:    in.ClientID,
		ProviderID:  in.ProviderID,
		ServiceType: in.ServiceType,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      model.RequestStatusRequested,
		RequestedAt: time.Now().UTC(),
	}

	if err := s.requests.Create(ctx, req); err != nil {
		slog.ErrorContext(ctx, "failed to create service request",
			"error", err,
			"client_id", req.ClientID,
			"provider_id", req.ProviderID,
		)
		return nil, storeErr(fmt.Errorf("creating service request: %w", err))
	}

	s.audit.Record(ctx, model.AuditRequestCreated, "Service request created: "+req.Title, &req.ClientID)

	slog.InfoContext(ctx, "service request created", "request_id", req.ID, "service_type", req.ServiceType)
	return req, nil
}

// Accept transitions the request to ACCEPTED and creates its conversation
// in the same transaction: both commit together or not at all. Ownership
// and status are folded into one conditional update, so of two racing
// accepts exactly one sees a row change. A miss is always the conflated
// not-found (never "wrong provider").
func (s *requestService) Accept(ctx context.Context, requestID, providerID int64, notes *string) (*model.Conversation, error) {
	var conv *model.Conversation
	now := time.Now().UTC()

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ok, err := stores.Requests().MarkAccepted(ctx, requestID, providerID, notes, now)
		if err != nil {
			return fmt.Errorf("accepting request: %w", err)
		}
		if !ok {
			return ErrNotFound
		}

		req, err := stores.Requests().GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("reloading request: %w", err)
		}

		conv = &model.Conversation{
			ID:               id.New(),
			ServiceRequestID: req.ID,
			ClientID:         req.ClientID,
			ProviderID:       req.ProviderID,
			Status:           model.ConversationStatusActive,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := stores.Conversations().Create(ctx, conv); err != nil {
			return fmt.Errorf("creating conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.ErrorContext(ctx, "failed to accept service request", "error", err, "request_id", requestID)
		}
		return nil, storeErr(err)
	}

	s.audit.Record(ctx, model.AuditRequestAccepted,
		fmt.Sprintf("Service request accepted: %d", requestID), &providerID)

	slog.InfoContext(ctx, "service request accepted",
		"request_id", requestID,
		"conversation_id", conv.ID,
	)
	return conv, nil
}

func (s *requestService) Complete(ctx context.Context, requestID, providerID int64, completionNotes *string) error {
	now := time.Now().UTC()

	ok, err := s.requests.MarkCompleted(ctx, requestID, providerID, completionNotes, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to complete service request", "error", err, "request_id", requestID)
		return storeErr(fmt.Errorf("completing request: %w", err))
	}
	if !ok {
		return s.classifyMiss(ctx, requestID, providerID, ownerProvider, model.RequestStatusAccepted)
	}

	s.audit.Record(ctx, model.AuditRequestCompleted,
		fmt.Sprintf("Service request completed: %d", requestID), &providerID)

	slog.InfoContext(ctx, "service request completed", "request_id", requestID)
	return nil
}

// Confirm finalizes the request with the client's rating and recomputes
// the provider's running average in the same transaction.
func (s *requestService) Confirm(ctx context.Context, requestID, clientID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	now := time.Now().UTC()

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ok, err := stores.Requests().MarkConfirmed(ctx, requestID, clientID, rating, now)
		if err != nil {
			return fmt.Errorf("confirming request: %w", err)
		}
		if !ok {
			return errTransitionMiss
		}

		req, err := stores.Requests().GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("reloading request: %w", err)
		}
		if err := stores.Providers().RecalculateRating(ctx, req.ProviderID); err != nil {
			return fmt.Errorf("recalculating provider rating: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errTransitionMiss) {
			return s.classifyMiss(ctx, requestID, clientID, ownerClient, model.RequestStatusCompleted)
		}
		slog.ErrorContext(ctx, "failed to confirm service request", "error", err, "request_id", requestID)
		return storeErr(err)
	}

	s.audit.Record(ctx, model.AuditRequestConfirmed,
		fmt.Sprintf("Service request confirmed: %d", requestID), &clientID)

	slog.InfoContext(ctx, "service request confirmed", "request_id", requestID, "rating", rating)
	return nil
}

func (s *requestService) GetConversation(ctx context.Context, requestID int64) (*model.Conversation, error) {
	conv, err := s.conversations.GetByRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(fmt.Errorf("loading conversation: %w", err))
	}
	return conv, nil
}

func (s *requestService) ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error) {
	out, err := s.requests.ListByClient(ctx, clientID)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing client requests: %w", err))
	}
	return out, nil
}

func (s *requestService) ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error) {
	out, err := s.requests.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing provider requests: %w", err))
	}
	return out, nil
}

// errTransitionMiss marks a conditional update that changed no rows,
// before the miss has been classified.
var errTransitionMiss = errors.New("transition miss")

type ownerSide int

const (
	ownerProvider ownerSide = iota
	ownerClient
)

// classifyMiss turns a zero-row conditional update into the right
// taxonomy error: missing row or wrong owner stay conflated as
// ErrNotFound; an owned row in the wrong status is ErrInvalidState.
func (s *requestService) classifyMiss(ctx context.Context, requestID, ownerID int64, side ownerSide, expected model.RequestStatus) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return storeErr(fmt.Errorf("classifying transition: %w", err))
	}

	switch side {
	case ownerProvider:
		if req.ProviderID != ownerID {
			return ErrNotFound
		}
	case ownerClient:
		if req.ClientID != ownerID {
			return ErrNotFound
		}
	}

	if req.Status != expected {
		return fmt.Errorf("%w: request is %s", ErrInvalidState, req.Status)
	}

	// The row matched moments ago but the update missed: a concurrent
	// transition won the race.
	return fmt.Errorf("%w: concurrent transition", ErrInvalidState)
}

func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
