package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathway.app/server/internal/identity"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/service"
)

type mockMessageService struct {
	membershipFn func(ctx context.Context, conversationID int64) (*model.ConversationMembership, error)
	postFn       func(ctx context.Context, in service.PostMessageInput) (*model.Message, error)
}

func (m *mockMessageService) Membership(ctx context.Context, conversationID int64) (*model.ConversationMembership, error) {
	if m.membershipFn != nil {
		return m.membershipFn(ctx, conversationID)
	}
	return nil, service.ErrNotFound
}

func (m *mockMessageService) Post(ctx context.Context, in service.PostMessageInput) (*model.Message, error) {
	if m.postFn != nil {
		return m.postFn(ctx, in)
	}
	return nil, service.ErrNotFound
}

func (m *mockMessageService) List(context.Context, int64, int64) ([]model.Message, error) {
	return nil, nil
}

func (m *mockMessageService) MarkRead(context.Context, int64, int64) error {
	return nil
}

func (m *mockMessageService) ListConversationsByClient(context.Context, int64) ([]model.ConversationSummary, error) {
	return nil, nil
}

func (m *mockMessageService) ListConversationsByProvider(context.Context, int64) ([]model.ConversationSummary, error) {
	return nil, nil
}

func frameOf(event string, payload any) Frame {
	raw, err := json.Marshal(payload)
	Expect(err).NotTo(HaveOccurred())
	return Frame{Event: event, Data: raw}
}

func lastEvent(c *fakeConn) Frame {
	frames := c.received()
	Expect(frames).NotTo(BeEmpty())
	return frames[len(frames)-1]
}

var _ = Describe("Handler dispatch", func() {
	var (
		h    *Handler
		hub  *Hub
		svc  *mockMessageService
		sock *fakeConn
		ctx  context.Context
	)

	providerUserID := int64(200)

	membership := &model.ConversationMembership{
		Conversation: model.Conversation{
			ID:         1,
			ClientID:   100,
			ProviderID: 20,
			Status:     model.ConversationStatusActive,
		},
		ProviderUserID: &providerUserID,
	}

	BeforeEach(func() {
		ctx = context.Background()
		hub = NewHub()
		svc = &mockMessageService{}
		sock = &fakeConn{}
		h = NewHandler(hub, svc, nil, nil)

		svc.membershipFn = func(_ context.Context, convID int64) (*model.ConversationMembership, error) {
			if convID != 1 {
				return nil, service.ErrNotFound
			}
			return membership, nil
		}
	})

	Describe("join_conversation", func() {
		It("admits a participant and confirms", func() {
			h.dispatch(ctx, sock, frameOf(EventJoinConversation, map[string]string{
				"conversation_id": "1",
				"user_id":         "100",
			}), nil)

			Expect(lastEvent(sock).Event).To(Equal(EventJoinedConversation))
			Expect(hub.RoomSize(1)).To(Equal(1))
		})

		It("rejects a non-participant with an error event", func() {
			h.dispatch(ctx, sock, frameOf(EventJoinConversation, map[string]string{
				"conversation_id": "1",
				"user_id":         "300",
			}), nil)

			Expect(lastEvent(sock).Event).To(Equal(EventError))
			Expect(hub.RoomSize(1)).To(BeZero())
		})

		It("rejects a join naming someone other than the pinned identity", func() {
			pinned := &identity.Identity{UserID: 200, UserType: model.UserTypeProvider}

			h.dispatch(ctx, sock, frameOf(EventJoinConversation, map[string]string{
				"conversation_id": "1",
				"user_id":         "100",
			}), pinned)

			Expect(lastEvent(sock).Event).To(Equal(EventError))
		})

		It("reports a missing conversation", func() {
			h.dispatch(ctx, sock, frameOf(EventJoinConversation, map[string]string{
				"conversation_id": "42",
				"user_id":         "100",
			}), nil)

			evt := lastEvent(sock)
			Expect(evt.Event).To(Equal(EventError))
			Expect(string(evt.Data)).To(ContainSubstring("not found"))
		})
	})

	Describe("leave_conversation", func() {
		It("removes the member and confirms", func() {
			hub.Join(1, sock)

			h.dispatch(ctx, sock, frameOf(EventLeaveConversation, map[string]string{
				"conversation_id": "1",
			}), nil)

			Expect(lastEvent(sock).Event).To(Equal(EventLeftConversation))
			Expect(hub.RoomSize(1)).To(BeZero())
		})
	})

	Describe("send_message", func() {
		It("persists and fans out to the room, sender included", func() {
			other := &fakeConn{}
			hub.Join(1, sock)
			hub.Join(1, other)

			svc.postFn = func(_ context.Context, in service.PostMessageInput) (*model.Message, error) {
				return &model.Message{
					ID:             10,
					ConversationID: in.ConversationID,
					SenderID:       in.SenderID,
					SenderRole:     in.SenderRole,
					Text:           in.Text,
				}, nil
			}

			h.dispatch(ctx, sock, frameOf(EventSendMessage, map[string]string{
				"conversation_id": "1",
				"sender_id":       "100",
				"sender_role":     "CLIENT",
				"message_text":    "Hello",
			}), nil)

			Expect(lastEvent(sock).Event).To(Equal(EventNewMessage))
			Expect(lastEvent(other).Event).To(Equal(EventNewMessage))
			Expect(string(lastEvent(other).Data)).To(ContainSubstring(`"Hello"`))
		})

		It("emits an error event when the sender is rejected", func() {
			svc.postFn = func(context.Context, service.PostMessageInput) (*model.Message, error) {
				return nil, service.ErrForbidden
			}

			h.dispatch(ctx, sock, frameOf(EventSendMessage, map[string]string{
				"conversation_id": "1",
				"sender_id":       "300",
				"sender_role":     "CLIENT",
				"message_text":    "hi",
			}), nil)

			Expect(lastEvent(sock).Event).To(Equal(EventError))
		})

		It("rejects a sender_id contradicting the pinned identity before hitting the service", func() {
			called := false
			svc.postFn = func(context.Context, service.PostMessageInput) (*model.Message, error) {
				called = true
				return nil, nil
			}
			pinned := &identity.Identity{UserID: 200, UserType: model.UserTypeProvider}

			h.dispatch(ctx, sock, frameOf(EventSendMessage, map[string]string{
				"conversation_id": "1",
				"sender_id":       "100",
				"sender_role":     "CLIENT",
				"message_text":    "spoof",
			}), pinned)

			Expect(lastEvent(sock).Event).To(Equal(EventError))
			Expect(called).To(BeFalse())
		})

		It("keeps internals out of unexpected errors", func() {
			svc.postFn = func(context.Context, service.PostMessageInput) (*model.Message, error) {
				return nil, fmt.Errorf("pq: connection reset")
			}

			h.dispatch(ctx, sock, frameOf(EventSendMessage, map[string]string{
				"conversation_id": "1",
				"sender_id":       "100",
				"sender_role":     "CLIENT",
				"message_text":    "hi",
			}), nil)

			evt := lastEvent(sock)
			Expect(evt.Event).To(Equal(EventError))
			Expect(string(evt.Data)).To(ContainSubstring("internal error"))
			Expect(string(evt.Data)).NotTo(ContainSubstring("pq:"))
		})
	})

	It("answers unknown events with an error event", func() {
		h.dispatch(ctx, sock, Frame{Event: "subscribe"}, nil)

		evt := lastEvent(sock)
		Expect(evt.Event).To(Equal(EventError))
		Expect(string(evt.Data)).To(ContainSubstring("unknown event"))
	})
})
