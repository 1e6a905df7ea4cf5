package realtime

import "encoding/json"

// Wire event names. These are the compatibility surface existing
// frontends speak; renaming any of them is a breaking change.
const (
	EventConnected          = "connected"
	EventJoinConversation   = "join_conversation"
	EventJoinedConversation = "joined_conversation"
	EventLeaveConversation  = "leave_conversation"
	EventLeftConversation   = "left_conversation"
	EventSendMessage        = "send_message"
	EventNewMessage         = "new_message"
	EventError              = "error"
)

// Frame is the envelope for every websocket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func NewFrame(event string, data any) Frame {
	if data == nil {
		return Frame{Event: event}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		// Payloads are our own types; a marshal failure is a programming
		// error, surfaced as an empty data frame rather than a panic.
		return Frame{Event: event}
	}
	return Frame{Event: event, Data: raw}
}

type joinPayload struct {
	ConversationID int64 `json:"conversation_id,string"`
	UserID         int64 `json:"user_id,string"`
}

type leavePayload struct {
	ConversationID int64 `json:"conversation_id,string"`
}

type sendPayload struct {
	ConversationID int64  `json:"conversation_id,string"`
	SenderID       int64  `json:"sender_id,string"`
	SenderRole     string `json:"sender_role"`
	Text           string `json:"message_text"`
}

type roomPayload struct {
	ConversationID int64 `json:"conversation_id,string"`
}

type errorPayload struct {
	Message string `json:"message"`
}
