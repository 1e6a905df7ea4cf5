package handler_test

import (
	"context"

	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

type mockRequestService struct {
	createFn          func(ctx context.Context, in service.CreateRequestInput) (*model.ServiceRequest, error)
	acceptFn          func(ctx context.Context, requestID, providerID int64, notes *string) (*model.Conversation, error)
	completeFn        func(ctx context.Context, requestID, providerID int64, completionNotes *string) error
	confirmFn         func(ctx context.Context, requestID, clientID int64, rating int) error
	getConversationFn func(ctx context.Context, requestID int64) (*model.Conversation, error)
	listByClientFn    func(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error)
	listByProviderFn  func(ctx context.Context, providerID int64) ([]model.RequestWithClient, error)
}

func (m *mockRequestService) Create(ctx context.Context, in service.CreateRequestInput) (*model.ServiceRequest, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return nil, nil
}

func (m *mockRequestService) Accept(ctx context.Context, requestID, providerID int64, notes *string) (*model.Conversation, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, requestID, providerID, notes)
	}
	return nil, nil
}

func (m *mockRequestService) Complete(ctx context.Context, requestID, providerID int64, completionNotes *string) error {
	if m.completeFn != nil {
		return m.completeFn(ctx, requestID, providerID, completionNotes)
	}
	return nil
}

func (m *mockRequestService) Confirm(ctx context.Context, requestID, clientID int64, rating int) error {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, requestID, clientID, rating)
	}
	return nil
}

func (m *mockRequestService) GetConversation(ctx context.Context, requestID int64) (*model.Conversation, error) {
	if m.getConversationFn != nil {
		return m.getConversationFn(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestService) ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error) {
	if m.listByClientFn != nil {
		return m.listByClientFn(ctx, clientID)
	}
	return nil, nil
}

func (m *mockRequestService) ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error) {
	if m.listByProviderFn != nil {
		return m.listByProviderFn(ctx, providerID)
	}
	return nil, nil
}

type mockMessageService struct {
	membershipFn          func(ctx context.Context, conversationID int64) (*model.ConversationMembership, error)
	postFn                func(ctx context.Context, in service.PostMessageInput) (*model.Message, error)
	listFn                func(ctx context.Context, conversationID, actorID int64) ([]model.Message, error)
	markReadFn            func(ctx context.Context, conversationID, messageID int64) error
	listConvsByClientFn   func(ctx context.Context, clientID int64) ([]model.ConversationSummary, error)
	listConvsByProviderFn func(ctx context.Context, providerID int64) ([]model.ConversationSummary, error)
}

func (m *mockMessageService) Membership(ctx context.Context, conversationID int64) (*model.ConversationMembership, error) {
	if m.membershipFn != nil {
		return m.membershipFn(ctx, conversationID)
	}
	return nil, nil
}

func (m *mockMessageService) Post(ctx context.Context, in service.PostMessageInput) (*model.Message, error) {
	if m.postFn != nil {
		return m.postFn(ctx, in)
	}
	return nil, nil
}

func (m *mockMessageService) List(ctx context.Context, conversationID, actorID int64) ([]model.Message, error) {
	if m.listFn != nil {
		return m.listFn(ctx, conversationID, actorID)
	}
	return nil, nil
}

func (m *mockMessageService) MarkRead(ctx context.Context, conversationID, messageID int64) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, conversationID, messageID)
	}
	return nil
}

func (m *mockMessageService) ListConversationsByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error) {
	if m.listConvsByClientFn != nil {
		return m.listConvsByClientFn(ctx, clientID)
	}
	return nil, nil
}

func (m *mockMessageService) ListConversationsByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error) {
	if m.listConvsByProviderFn != nil {
		return m.listConvsByProviderFn(ctx, providerID)
	}
	return nil, nil
}

type mockUserService struct {
	getFn func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

type mockProviderService struct {
	listFn      func(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error)
	getByUserFn func(ctx context.Context, userID int64) (*model.Provider, error)
}

func (m *mockProviderService) List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error) {
	if m.listFn != nil {
		return m.listFn(ctx, serviceType)
	}
	return nil, nil
}

func (m *mockProviderService) GetByUser(ctx context.Context, userID int64) (*model.Provider, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return nil, nil
}
