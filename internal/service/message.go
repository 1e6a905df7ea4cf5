package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pathway.app/server/common/id"
	"pathway.app/server/internal/access"
	"pathway.app/server/internal/audit"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/store"
)

// MessageService is the one message path: the HTTP gateway and the
// realtime router both go through Post/List, so authorization and
// persistence semantics cannot drift between transports.
type MessageService interface {
	// Membership loads the gate's decision snapshot in one read.
	Membership(ctx context.Context, conversationID int64) (*model.ConversationMembership, error)
	Post(ctx context.Context, in PostMessageInput) (*model.Message, error)
	List(ctx context.Context, conversationID, actorID int64) ([]model.Message, error)
	MarkRead(ctx context.Context, conversationID, messageID int64) error
	ListConversationsByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error)
	ListConversationsByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error)
}

type PostMessageInput struct {
	ConversationID int64
	SenderID       int64
	SenderRole     model.SenderRole
	Text           string
}

type messageService struct {
	conversations store.ConversationStore
	messages      store.MessageStore
	txRunner      TxRunner
	audit         audit.Recorder
}

func NewMessageService(
	conversations store.ConversationStore,
	messages store.MessageStore,
	txRunner TxRunner,
	auditRecorder audit.Recorder,
) MessageService {
	return &messageService{
		conversations: conversations,
		messages:      messages,
		txRunner:      txRunner,
		audit:         auditRecorder,
	}
}

func (s *messageService) Membership(ctx context.Context, conversationID int64) (*model.ConversationMembership, error) {
	m, err := s.conversations.GetMembership(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(fmt.Errorf("loading conversation membership: %w", err))
	}
	return m, nil
}

func (s *messageService) Post(ctx context.Context, in PostMessageInput) (*model.Message, error) {
	in.Text = strings.TrimSpace(in.Text)
	if in.ConversationID == 0 || in.SenderID == 0 || in.Text == "" {
		return nil, fmt.Errorf("%w: conversation_id, sender_id and message_text are required", ErrValidation)
	}
	if !in.SenderRole.Valid() {
		return nil, fmt.Errorf("%w: sender_role must be CLIENT or PROVIDER", ErrValidation)
	}

	membership, err := s.Membership(ctx, in.ConversationID)
	if err != nil {
		return nil, err
	}
	if !access.CanSend(membership, in.SenderID, in.SenderRole) {
		slog.WarnContext(ctx, "message send rejected",
			"conversation_id", in.ConversationID,
			"sender_id", in.SenderID,
			"sender_role", in.SenderRole,
		)
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	msg := &model.Message{
		ID:             id.New(),
		ConversationID: in.ConversationID,
		SenderID:       in.SenderID,
		SenderRole:     in.SenderRole,
		Text:           in.Text,
		IsRead:         false,
		CreatedAt:      now,
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Messages().Create(ctx, msg); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		return stores.Conversations().Touch(ctx, in.ConversationID, now)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist message", "error", err, "conversation_id", in.ConversationID)
		return nil, storeErr(err)
	}

	s.audit.Record(ctx, model.AuditMessageSent,
		fmt.Sprintf("Message sent in conversation: %d", in.ConversationID), &in.SenderID)

	slog.InfoContext(ctx, "message sent",
		"conversation_id", in.ConversationID,
		"message_id", msg.ID,
		"sender_role", msg.SenderRole,
	)
	return msg, nil
}

func (s *messageService) List(ctx context.Context, conversationID, actorID int64) ([]model.Message, error) {
	membership, err := s.Membership(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(membership, actorID) {
		return nil, ErrForbidden
	}

	msgs, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing messages: %w", err))
	}
	return msgs, nil
}

func (s *messageService) MarkRead(ctx context.Context, conversationID, messageID int64) error {
	ok, err := s.messages.MarkRead(ctx, conversationID, messageID)
	if err != nil {
		return storeErr(fmt.Errorf("marking message read: %w", err))
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *messageService) ListConversationsByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error) {
	out, err := s.conversations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing client conversations: %w", err))
	}
	return out, nil
}

func (s *messageService) ListConversationsByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error) {
	out, err := s.conversations.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, storeErr(fmt.Errorf("listing provider conversations: %w", err))
	}
	return out, nil
}
