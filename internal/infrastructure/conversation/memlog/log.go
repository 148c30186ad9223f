// Package memlog is the in-memory conversation log. The log belongs to
// the active document context: Reset replaces the sequence wholesale when
// the context changes, Append is strictly ordered and append-only.
package memlog

import (
	"sync"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

type Log struct {
	mu       sync.Mutex
	messages []domain.Message
}

func New() *Log {
	return &Log{}
}

func (l *Log) Append(msg domain.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *Log) Reset(seed *domain.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
	if seed != nil {
		l.messages = []domain.Message{*seed}
	}
}

func (l *Log) Messages() []domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Message, len(l.messages))
	copy(out, l.messages)
	return out
}
