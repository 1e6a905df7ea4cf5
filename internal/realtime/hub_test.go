package realtime

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeConn records frames instead of writing to a socket.
type fakeConn struct {
	mu       sync.Mutex
	frames   []Frame
	writeErr error
}

func (f *fakeConn) write(_ context.Context, frame Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeConn) close(websocket.StatusCode, string) {}

func (f *fakeConn) received() []Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Frame(nil), f.frames...)
}

var _ = Describe("Hub", func() {
	var (
		hub *Hub
		ctx context.Context
	)

	BeforeEach(func() {
		hub = NewHub()
		ctx = context.Background()
	})

	It("delivers a broadcast to every member, sender included", func() {
		a := &fakeConn{}
		b := &fakeConn{}
		hub.Join(1, a)
		hub.Join(1, b)

		hub.Broadcast(ctx, 1, NewFrame(EventNewMessage, map[string]string{"message_text": "hi"}))

		Expect(a.received()).To(HaveLen(1))
		Expect(b.received()).To(HaveLen(1))
		Expect(a.received()[0].Event).To(Equal(EventNewMessage))
	})

	It("does not leak broadcasts across rooms", func() {
		a := &fakeConn{}
		b := &fakeConn{}
		hub.Join(1, a)
		hub.Join(2, b)

		hub.Broadcast(ctx, 1, NewFrame(EventNewMessage, nil))

		Expect(a.received()).To(HaveLen(1))
		Expect(b.received()).To(BeEmpty())
	})

	It("treats joining twice as one membership", func() {
		a := &fakeConn{}
		hub.Join(1, a)
		hub.Join(1, a)

		Expect(hub.RoomSize(1)).To(Equal(1))
		hub.Broadcast(ctx, 1, NewFrame(EventNewMessage, nil))
		Expect(a.received()).To(HaveLen(1))
	})

	It("stops delivering after leave", func() {
		a := &fakeConn{}
		hub.Join(1, a)
		hub.Leave(1, a)

		hub.Broadcast(ctx, 1, NewFrame(EventNewMessage, nil))

		Expect(a.received()).To(BeEmpty())
		Expect(hub.RoomSize(1)).To(BeZero())
	})

	It("removes a connection from every room on RemoveAll", func() {
		a := &fakeConn{}
		b := &fakeConn{}
		hub.Join(1, a)
		hub.Join(2, a)
		hub.Join(1, b)

		hub.RemoveAll(a)

		Expect(hub.RoomSize(1)).To(Equal(1))
		Expect(hub.RoomSize(2)).To(BeZero())
	})

	It("evicts members whose writes fail and keeps delivering to the rest", func() {
		dead := &fakeConn{writeErr: errors.New("broken pipe")}
		live := &fakeConn{}
		hub.Join(1, dead)
		hub.Join(1, live)

		hub.Broadcast(ctx, 1, NewFrame(EventNewMessage, nil))

		Expect(live.received()).To(HaveLen(1))
		Expect(hub.RoomSize(1)).To(Equal(1))
	})

	It("tolerates leave and broadcast on unknown rooms", func() {
		a := &fakeConn{}
		hub.Leave(99, a)
		hub.Broadcast(ctx, 99, NewFrame(EventNewMessage, nil))
		Expect(hub.RoomSize(99)).To(BeZero())
	})
})

var _ = Describe("NewFrame", func() {
	It("encodes snowflake ids as strings", func() {
		frame := NewFrame(EventJoinedConversation, roomPayload{ConversationID: 123456789})
		Expect(string(frame.Data)).To(ContainSubstring(`"123456789"`))
	})

	It("omits data for nil payloads", func() {
		frame := NewFrame(EventConnected, nil)
		Expect(frame.Data).To(BeNil())
	})
})
