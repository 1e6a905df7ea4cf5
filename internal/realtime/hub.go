package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Hub tracks which connections are in which conversation room. Room
// membership is connection-scoped: when a connection drops, all of its
// memberships go with it.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[conn]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[int64]map[conn]struct{})}
}

func roomKey(conversationID int64) string {
	return fmt.Sprintf("conversation_%d", conversationID)
}

func (h *Hub) Join(conversationID int64, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[conversationID]
	if !ok {
		room = make(map[conn]struct{})
		h.rooms[conversationID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) Leave(conversationID int64, c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(conversationID, c)
}

// RemoveAll drops the connection from every room it joined. Called on
// disconnect.
func (h *Hub) RemoveAll(c conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conversationID := range h.rooms {
		h.removeLocked(conversationID, c)
	}
}

func (h *Hub) removeLocked(conversationID int64, c conn) {
	room, ok := h.rooms[conversationID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
}

// Broadcast delivers a frame to every connection in the room, the
// sender included. A failed write evicts that connection from the room;
// one slow or dead peer never blocks delivery to the rest.
func (h *Hub) Broadcast(ctx context.Context, conversationID int64, frame Frame) {
	h.mu.RLock()
	room := h.rooms[conversationID]
	targets := make([]conn, 0, len(room))
	for c := range room {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(ctx, frame); err != nil {
			slog.WarnContext(ctx, "evicting unreachable room member",
				"room", roomKey(conversationID),
				"error", err,
			)
			h.Leave(conversationID, c)
		}
	}
}

// RoomSize reports the current member count of a room.
func (h *Hub) RoomSize(conversationID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[conversationID])
}
