package domain

import "time"

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderBot  MessageSender = "bot"
)

type MessageKind string

const (
	KindText     MessageKind = "text"
	KindSummary  MessageKind = "summary"
	KindAnalysis MessageKind = "analysis"
)

// Message is one conversation entry. Content may carry the lightweight
// markup markers the display surface understands ("## ", "**", "• ").
// Kind is set for bot messages only.
type Message struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Kind      MessageKind   `json:"kind,omitempty"`
}
