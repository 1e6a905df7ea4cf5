package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// conn is the subset of websocket.Conn the client uses, split out so hub
// and dispatch tests run without a live socket.
type conn interface {
	write(ctx context.Context, frame Frame) error
	close(code websocket.StatusCode, reason string)
}

// client serializes writes to one websocket connection. The hub
// broadcasts from whichever goroutine posted the message, so writes
// must be mutex-guarded.
type client struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func newClient(ws *websocket.Conn) *client {
	return &client{ws: ws}
}

func (c *client) write(ctx context.Context, frame Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, c.ws, frame)
}

func (c *client) close(code websocket.StatusCode, reason string) {
	_ = c.ws.Close(code, reason)
}
