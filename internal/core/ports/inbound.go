package ports

import (
	"context"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

// DocumentRegistry is the inbound contract for document upload and reads.
type DocumentRegistry interface {
	Upload(ctx context.Context, files []domain.FileInfo) ([]*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
}

// ChatSession is the inbound contract for the document assistant.
// Select binds the conversation to a document and reseeds the log;
// Send routes one user message through the intent cascade.
type ChatSession interface {
	Select(ctx context.Context, documentID string) (*domain.Document, error)
	Send(ctx context.Context, text string) (*domain.Message, error)
	History(ctx context.Context) ([]domain.Message, error)
}
