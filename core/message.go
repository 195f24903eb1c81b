package core

import (
	"time"

	"github.com/google/uuid"
)

// SenderUser is the ledger sender tag for end-user messages. Agent responses
// are tagged with the resolved agent's name.
const SenderUser = "user"

// Message is a single immutable entry in a thread's ledger. Order within a
// thread is the order of ledger writes.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage constructs a Message with a generated id and UTC timestamp.
func NewMessage(threadID, sender, content string) Message {
	return Message{
		ID:        NewID(),
		ThreadID:  threadID,
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewID generates a unique identifier for messages and step records.
func NewID() string { return uuid.NewString() }
