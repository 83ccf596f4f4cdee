package components

import (
	"fmt"
	"sync"
)

type MemoryStore interface {
	MaxMessages() int
	TurnID() string
	NewTurn() MemoryStore
	NewMessage(MessageRole, string) *Message
	History() []Message
	Reset() MemoryStore
	Copy(MemoryStore)
	MessageCount() int
}

// Memory Manages the chat history of a conversation.
// threadsafe
type Memory struct {
	// history is a list of messages representing the chat history.
	history []Message
	// turnID is the ID of the current turn.
	turnID string
	// maxMessages is the maximum number of messages to keep in history.
	// When exceeded, oldest messages are removed first.
	maxMessages int
	// mtx sync lock
	mtx *sync.RWMutex
}

var _ MemoryStore = (*Memory)(nil)

// NewMemory initializes the Memory with an empty history and optional constraints.
func NewMemory(maxMessages int) *Memory {
	return &Memory{
		maxMessages: maxMessages,
		history:     make([]Message, 0, maxMessages+1),
		mtx:         new(sync.RWMutex),
	}
}

// MaxMessages returns the max number of messages
func (m *Memory) MaxMessages() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.maxMessages
}

// SetMaxMessages set the max number of messages, trimming the oldest if needed
func (m *Memory) SetMaxMessages(maxMessages int) *Memory {
	m.mtx.Lock()
	m.maxMessages = maxMessages
	m.trim()
	m.mtx.Unlock()
	return m
}

// TurnID returns the current turn ID
func (m *Memory) TurnID() string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.turnID
}

// SetTurnID set the current turn ID
func (m *Memory) SetTurnID(turnID string) MemoryStore {
	m.mtx.Lock()
	m.turnID = turnID
	m.mtx.Unlock()
	return m
}

// NewTurn initializes a new turn by generating a random turn ID.
func (m *Memory) NewTurn() MemoryStore {
	return m.SetTurnID(NewTurnID())
}

// NewMessage adds a message to the chat history and manages overflow.
func (m *Memory) NewMessage(role MessageRole, content string) *Message {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	msg := NewMessage(role, content).SetTurnID(m.turnID)
	m.history = append(m.history, *msg)
	m.trim()
	return msg
}

// trim drops the oldest messages beyond maxMessages. A turn cut in half is
// dropped whole so the history never opens in the middle of a turn.
func (m *Memory) trim() {
	l := len(m.history)
	if m.maxMessages <= 0 || l <= m.maxMessages {
		return
	}
	cut := l - m.maxMessages
	for cut < l {
		turnID := m.history[cut].TurnID()
		if turnID == "" || turnID != m.history[cut-1].TurnID() {
			break
		}
		cut++
	}
	m.history = append(m.history[:0:0], m.history[cut:]...)
}

// SetHistory set a copy of chat history
func (m *Memory) SetHistory(history []Message) *Memory {
	m.mtx.Lock()
	m.history = make([]Message, len(history))
	copy(m.history, history)
	m.trim()
	m.mtx.Unlock()
	return m
}

// History returns a copy of the chat history, oldest first.
func (m *Memory) History() []Message {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	ret := make([]Message, len(m.history))
	copy(ret, m.history)
	return ret
}

// Copy replaces this memory's state with a copy of src.
func (m *Memory) Copy(src MemoryStore) {
	m.SetMaxMessages(src.MaxMessages()).SetTurnID(src.TurnID())
	m.SetHistory(src.History())
}

// Reset clears the history and the current turn
func (m *Memory) Reset() MemoryStore {
	m.mtx.Lock()
	m.history = make([]Message, 0, m.maxMessages)
	m.turnID = ""
	m.mtx.Unlock()
	return m
}

// DeleteTurn delete messages from the memory by its turn ID.
// returns Error if the specified turn ID is not found in the memory
func (m *Memory) DeleteTurn(turnID string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	l := len(m.history)
	list := make([]Message, 0, l)
	for _, v := range m.history {
		if v.TurnID() == turnID {
			continue
		}
		list = append(list, v)
	}
	num := len(list)
	if num == l {
		return fmt.Errorf("TurnID %s not found in memory", turnID)
	}
	m.history = list
	if num == 0 {
		m.turnID = ""
	} else if turnID == m.turnID {
		m.turnID = m.history[num-1].TurnID()
	}
	return nil
}

// MessageCount returns the number of messages in the chat history.
func (m *Memory) MessageCount() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.history)
}
