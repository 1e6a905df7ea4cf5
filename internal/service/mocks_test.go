package service_test

import (
	"context"
	"time"

	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
	"pathway.app/server/internal/store"
)

type mockRequestStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.ServiceRequest, error)
	createFn         func(ctx context.Context, req *model.ServiceRequest) error
	markAcceptedFn   func(ctx context.Context, id, providerID int64, notes *string, at time.Time) (bool, error)
	markCompletedFn  func(ctx context.Context, id, providerID int64, completionNotes *string, at time.Time) (bool, error)
	markConfirmedFn  func(ctx context.Context, id, clientID int64, rating int, at time.Time) (bool, error)
	listByClientFn   func(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error)
	listByProviderFn func(ctx context.Context, providerID int64) ([]model.RequestWithClient, error)
}

func (m *mockRequestStore) GetByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockRequestStore) Create(ctx context.Context, req *model.ServiceRequest) error {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil
}

func (m *mockRequestStore) MarkAccepted(ctx context.Context, id, providerID int64, notes *string, at time.Time) (bool, error) {
	if m.markAcceptedFn != nil {
		return m.markAcceptedFn(ctx, id, providerID, notes, at)
	}
	return false, nil
}

func (m *mockRequestStore) MarkCompleted(ctx context.Context, id, providerID int64, completionNotes *string, at time.Time) (bool, error) {
	if m.markCompletedFn != nil {
		return m.markCompletedFn(ctx, id, providerID, completionNotes, at)
	}
	return false, nil
}

func (m *mockRequestStore) MarkConfirmed(ctx context.Context, id, clientID int64, rating int, at time.Time) (bool, error) {
	if m.markConfirmedFn != nil {
		return m.markConfirmedFn(ctx, id, clientID, rating, at)
	}
	return false, nil
}

func (m *mockRequestStore) ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error) {
	if m.listByClientFn != nil {
		return m.listByClientFn(ctx, clientID)
	}
	return nil, nil
}

func (m *mockRequestStore) ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error) {
	if m.listByProviderFn != nil {
		return m.listByProviderFn(ctx, providerID)
	}
	return nil, nil
}

type mockConversationStore struct {
	getByIDFn        func(ctx context.Context, id int64) (*model.Conversation, error)
	getByRequestFn   func(ctx context.Context, requestID int64) (*model.Conversation, error)
	getMembershipFn  func(ctx context.Context, id int64) (*model.ConversationMembership, error)
	createFn         func(ctx context.Context, conv *model.Conversation) error
	touchFn          func(ctx context.Context, id int64, at time.Time) error
	listByClientFn   func(ctx context.Context, clientID int64) ([]model.ConversationSummary, error)
	listByProviderFn func(ctx context.Context, providerID int64) ([]model.ConversationSummary, error)
}

func (m *mockConversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) GetByRequest(ctx context.Context, requestID int64) (*model.Conversation, error) {
	if m.getByRequestFn != nil {
		return m.getByRequestFn(ctx, requestID)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) GetMembership(ctx context.Context, id int64) (*model.ConversationMembership, error) {
	if m.getMembershipFn != nil {
		return m.getMembershipFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockConversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	if m.createFn != nil {
		return m.createFn(ctx, conv)
	}
	return nil
}

func (m *mockConversationStore) Touch(ctx context.Context, id int64, at time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id, at)
	}
	return nil
}

func (m *mockConversationStore) ListByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error) {
	if m.listByClientFn != nil {
		return m.listByClientFn(ctx, clientID)
	}
	return nil, nil
}

func (m *mockConversationStore) ListByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error) {
	if m.listByProviderFn != nil {
		return m.listByProviderFn(ctx, providerID)
	}
	return nil, nil
}

type mockMessageStore struct {
	createFn             func(ctx context.Context, msg *model.Message) error
	listByConversationFn func(ctx context.Context, conversationID int64) ([]model.Message, error)
	markReadFn           func(ctx context.Context, conversationID, messageID int64) (bool, error)
}

func (m *mockMessageStore) Create(ctx context.Context, msg *model.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageStore) MarkRead(ctx context.Context, conversationID, messageID int64) (bool, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, conversationID, messageID)
	}
	return false, nil
}

type mockProviderStore struct {
	getByIDFn           func(ctx context.Context, id int64) (*model.Provider, error)
	getByUserFn         func(ctx context.Context, userID int64) (*model.Provider, error)
	listFn              func(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error)
	recalculateRatingFn func(ctx context.Context, id int64) error
}

func (m *mockProviderStore) GetByID(ctx context.Context, id int64) (*model.Provider, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProviderStore) GetByUser(ctx context.Context, userID int64) (*model.Provider, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockProviderStore) List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error) {
	if m.listFn != nil {
		return m.listFn(ctx, serviceType)
	}
	return nil, nil
}

func (m *mockProviderStore) RecalculateRating(ctx context.Context, id int64) error {
	if m.recalculateRatingFn != nil {
		return m.recalculateRatingFn(ctx, id)
	}
	return nil
}

// mockStoreProvider hands the same mocks to transactional and
// non-transactional paths, so a test observes every store call
// regardless of which side it went through.
type mockStoreProvider struct {
	requests      *mockRequestStore
	conversations *mockConversationStore
	messages      *mockMessageStore
	providers     *mockProviderStore
}

func newMockStoreProvider() *mockStoreProvider {
	return &mockStoreProvider{
		requests:      &mockRequestStore{},
		conversations: &mockConversationStore{},
		messages:      &mockMessageStore{},
		providers:     &mockProviderStore{},
	}
}

func (p *mockStoreProvider) Requests() store.RequestStore           { return p.requests }
func (p *mockStoreProvider) Conversations() store.ConversationStore { return p.conversations }
func (p *mockStoreProvider) Messages() store.MessageStore           { return p.messages }
func (p *mockStoreProvider) Providers() store.ProviderStore         { return p.providers }

// mockTxRunner runs the function inline against the shared provider.
// Commit/rollback semantics are the real runner's concern; here only
// the error propagation matters.
type mockTxRunner struct {
	provider *mockStoreProvider
	calls    int
}

func (r *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	r.calls++
	return fn(r.provider)
}
