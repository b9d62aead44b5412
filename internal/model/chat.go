package model

import "time"

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
}

type ChatReply struct {
	Response string `json:"response"`
}

// ChatMessage is one transcript entry. Entries are append-only.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"is_error,omitempty"`
}

type ChatForm struct {
	Message string `form:"message"`
}

// ChatAPIResponse is returned by the JSON chat endpoint.
type ChatAPIResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// ChatEvent is pushed to websocket chat clients.
type ChatEvent struct {
	Type           string       `json:"type"`
	ConversationID string       `json:"conversation_id,omitempty"`
	Message        *ChatMessage `json:"message,omitempty"`
	HTML           string       `json:"html,omitempty"`
	Notice         *Notice      `json:"notice,omitempty"`
	Busy           bool         `json:"busy"`
}

type ChatInbound struct {
	Text string `json:"text"`
}
