package ports

import (
	"context"
	"time"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

// DocumentStore holds document state for the lifetime of the process.
type DocumentStore interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
	// CompleteAnalysis transitions a processing document to completed and
	// attaches the assessment in one atomic step. Completing twice is an
	// error; readers never observe a partially applied assessment.
	CompleteAnalysis(ctx context.Context, id string, assessment domain.RiskAssessment) error
}

// ConversationLog is the append-only message history of the active
// document context. Reset replaces the whole sequence on context switch.
type ConversationLog interface {
	Append(msg domain.Message)
	Reset(seed *domain.Message)
	Messages() []domain.Message
}

// ContentClassifier synthesizes a structured content record from the raw
// upload tuple. Pure apart from its injected randomness.
type ContentClassifier interface {
	Classify(filename string, sizeBytes int64, mimeType string) domain.ContentRecord
}

// RiskAssessor produces the placeholder fraud assessment for a record.
type RiskAssessor interface {
	Assess(content domain.ContentRecord) domain.RiskAssessment
}

// TaskScheduler runs deferred tasks keyed by an owning context, so that
// everything pending for a context can be cancelled when it is discarded.
type TaskScheduler interface {
	Schedule(contextKey, taskID string, delay time.Duration, fn func(context.Context))
	Cancel(contextKey string)
	Stop()
}

// Rand is the injectable randomness behind scoring, section counts and
// fallback template selection; tests seed it for determinism.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
