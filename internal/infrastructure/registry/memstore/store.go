// Package memstore is the in-memory document store. All state is
// process-lifetime; there is no persistence behind it and no delete
// operation in the document lifecycle.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

type Store struct {
	mu    sync.RWMutex
	docs  map[string]*domain.Document
	order []string
}

func New() *Store {
	return &Store{docs: make(map[string]*domain.Document)}
}

func (s *Store) Create(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.ID == "" {
		return domain.WrapError(domain.ErrInvalidInput, "create document", fmt.Errorf("empty id"))
	}
	if _, ok := s.docs[doc.ID]; ok {
		return domain.WrapError(domain.ErrInvalidInput, "create document", fmt.Errorf("duplicate id %s", doc.ID))
	}

	stored := snapshot(doc)
	s.docs[doc.ID] = stored
	s.order = append(s.order, doc.ID)
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("id %s", id))
	}
	return snapshot(doc), nil
}

func (s *Store) List(_ context.Context) ([]*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshot(s.docs[id]))
	}
	return out, nil
}

// CompleteAnalysis applies the assessment and the completed status in one
// step under the write lock, so readers see either none or all of it.
func (s *Store) CompleteAnalysis(_ context.Context, id string, assessment domain.RiskAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return domain.WrapError(domain.ErrDocumentNotFound, "complete analysis", fmt.Errorf("id %s", id))
	}
	if doc.Status == domain.StatusCompleted {
		return domain.WrapError(domain.ErrAlreadyCompleted, "complete analysis", fmt.Errorf("id %s", id))
	}

	score := assessment.RiskScore
	factors := make([]string, len(assessment.RiskFactors))
	copy(factors, assessment.RiskFactors)

	doc.RiskScore = &score
	doc.Summary = assessment.Summary
	doc.RiskFactors = factors
	doc.Status = domain.StatusCompleted
	return nil
}

// snapshot copies the mutable top of a document. Content is shared: it is
// assigned once at creation and read-only afterwards.
func snapshot(doc *domain.Document) *domain.Document {
	out := *doc
	if doc.RiskScore != nil {
		score := *doc.RiskScore
		out.RiskScore = &score
	}
	if doc.RiskFactors != nil {
		out.RiskFactors = make([]string, len(doc.RiskFactors))
		copy(out.RiskFactors, doc.RiskFactors)
	}
	return &out
}
