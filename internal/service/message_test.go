package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathway.app/server/common/id"
	"pathway.app/server/internal/audit"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
	"pathway.app/server/internal/store"
)

var _ = Describe("MessageService", func() {
	var (
		svc      service.MessageService
		provider *mockStoreProvider
		txRunner *mockTxRunner
		ctx      context.Context
	)

	providerUserID := int64(200)

	membership := func() *model.ConversationMembership {
		return &model.ConversationMembership{
			Conversation: model.Conversation{
				ID:         1,
				ClientID:   100,
				ProviderID: 20,
				Status:     model.ConversationStatusActive,
			},
			ProviderUserID: &providerUserID,
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockStoreProvider()
		txRunner = &mockTxRunner{provider: provider}

		Expect(id.Init(1)).To(Succeed())

		provider.conversations.getMembershipFn = func(_ context.Context, convID int64) (*model.ConversationMembership, error) {
			if convID != 1 {
				return nil, store.ErrNotFound
			}
			return membership(), nil
		}

		svc = service.NewMessageService(
			provider.conversations,
			provider.messages,
			txRunner,
			audit.Nop(),
		)
	})

	Describe("Post", func() {
		It("persists a client message and touches the conversation", func() {
			var captured *model.Message
			touched := int64(0)
			provider.messages.createFn = func(_ context.Context, msg *model.Message) error {
				captured = msg
				return nil
			}
			provider.conversations.touchFn = func(_ context.Context, convID int64, _ time.Time) error {
				touched = convID
				return nil
			}

			msg, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       100,
				SenderRole:     model.SenderRoleClient,
				Text:           "  Hello, when can we meet?  ",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(msg).To(Equal(captured))
			Expect(msg.ID).NotTo(BeZero())
			Expect(msg.Text).To(Equal("Hello, when can we meet?"))
			Expect(msg.IsRead).To(BeFalse())
			Expect(touched).To(Equal(int64(1)))
			Expect(txRunner.calls).To(Equal(1))
		})

		It("accepts the provider-owning user under the PROVIDER role", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       200,
				SenderRole:     model.SenderRoleProvider,
				Text:           "Tomorrow at 10 works.",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a sender outside the conversation", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       300,
				SenderRole:     model.SenderRoleClient,
				Text:           "Let me in",
			})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("rejects a participant under the wrong role", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       100,
				SenderRole:     model.SenderRoleProvider,
				Text:           "Speaking as the provider now",
			})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("rejects an unknown role", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       100,
				SenderRole:     model.SenderRole("ADMIN"),
				Text:           "hi",
			})
			Expect(err).To(MatchError(service.ErrValidation))
		})

		It("rejects whitespace-only text", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       100,
				SenderRole:     model.SenderRoleClient,
				Text:           "   ",
			})
			Expect(err).To(MatchError(service.ErrValidation))
		})

		It("returns not found for a missing conversation", func() {
			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 42,
				SenderID:       100,
				SenderRole:     model.SenderRoleClient,
				Text:           "anyone there?",
			})
			Expect(err).To(MatchError(service.ErrNotFound))
		})

		It("does not persist when authorization fails", func() {
			created := false
			provider.messages.createFn = func(context.Context, *model.Message) error {
				created = true
				return nil
			}

			_, err := svc.Post(ctx, service.PostMessageInput{
				ConversationID: 1,
				SenderID:       300,
				SenderRole:     model.SenderRoleClient,
				Text:           "hi",
			})
			Expect(err).To(MatchError(service.ErrForbidden))
			Expect(created).To(BeFalse())
			Expect(txRunner.calls).To(BeZero())
		})
	})

	Describe("List", func() {
		It("returns history for a participant", func() {
			provider.messages.listByConversationFn = func(_ context.Context, convID int64) ([]model.Message, error) {
				return []model.Message{
					{ID: 10, ConversationID: convID, Text: "first"},
					{ID: 11, ConversationID: convID, Text: "second"},
				}, nil
			}

			msgs, err := svc.List(ctx, 1, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(HaveLen(2))
		})

		It("admits the provider-owning user", func() {
			_, err := svc.List(ctx, 1, 200)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects non-participants", func() {
			_, err := svc.List(ctx, 1, 300)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("returns not found for a missing conversation", func() {
			_, err := svc.List(ctx, 42, 100)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("MarkRead", func() {
		It("succeeds when the message belongs to the conversation", func() {
			provider.messages.markReadFn = func(_ context.Context, convID, msgID int64) (bool, error) {
				Expect(convID).To(Equal(int64(1)))
				Expect(msgID).To(Equal(int64(10)))
				return true, nil
			}

			Expect(svc.MarkRead(ctx, 1, 10)).To(Succeed())
		})

		It("returns not found when no row matches", func() {
			provider.messages.markReadFn = func(context.Context, int64, int64) (bool, error) {
				return false, nil
			}

			Expect(svc.MarkRead(ctx, 1, 10)).To(MatchError(service.ErrNotFound))
		})
	})
})
