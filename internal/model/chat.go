package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ChatRole identifies who produced a transcript entry
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// ChatMessage is one entry in a search assistant transcript. Assistant turns
// that completed a search carry the matched properties alongside the text.
type ChatMessage struct {
	Role       ChatRole   `json:"role"`
	Content    string     `json:"content"`
	Properties []Property `json:"properties,omitempty"`
	Timestamp  time.Time  `json:"timestamp,omitempty"`
}

// ChatHistory is the persisted form of a transcript.
type ChatHistory []ChatMessage

// Value implements driver.Valuer interface
func (h ChatHistory) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal(ChatHistory{})
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner interface
func (h *ChatHistory) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	return scanJSON(value, h, "chat history")
}

// Chat is one user's saved assistant conversation.
type Chat struct {
	ID             int64       `json:"id" db:"id"`
	UserID         string      `json:"user_id" db:"user_id"`
	MessageHistory ChatHistory `json:"message_history" db:"message_history"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}
