package components

import (
	"encoding/json"
	"time"

	"github.com/rs/xid"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
)

// Message represents a message in the chat history.
type Message struct {
	// role is the role of the message sender
	role MessageRole
	// content is the text of the message
	content string
	// turnID is the unique identifier of the turn this message belongs to.
	turnID string
	// createdAt is when the message was recorded
	createdAt time.Time
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content string) *Message {
	return &Message{
		role:      role,
		content:   content,
		createdAt: time.Now(),
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() string {
	return m.content
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// CreatedAt returns when the message was recorded
func (m Message) CreatedAt() time.Time {
	return m.createdAt
}

type messageJSON struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	TurnID    string      `json:"turn_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{
		Role:      m.role,
		Content:   m.content,
		TurnID:    m.turnID,
		CreatedAt: m.createdAt,
	})
}

func (m *Message) UnmarshalJSON(bs []byte) error {
	var v messageJSON
	if err := json.Unmarshal(bs, &v); err != nil {
		return err
	}
	m.role = v.Role
	m.content = v.Content
	m.turnID = v.TurnID
	m.createdAt = v.CreatedAt
	return nil
}
