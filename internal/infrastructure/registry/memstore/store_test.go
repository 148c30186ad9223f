package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

func newDoc(id string) *domain.Document {
	return &domain.Document{
		ID:         id,
		Name:       id + ".pdf",
		SizeBytes:  1000,
		UploadedAt: time.Now().UTC(),
		Status:     domain.StatusProcessing,
		Content:    domain.ContentRecord{DocumentType: domain.TypeGeneral},
	}
}

func TestCreateAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Create(ctx, newDoc("a")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "a.pdf" || got.Status != domain.StatusProcessing {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestCreateRejectsDuplicateAndEmptyID(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Create(ctx, newDoc("a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create(ctx, newDoc("a")); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for duplicate id, got %v", err)
	}
	if err := s.Create(ctx, newDoc("")); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty id, got %v", err)
	}
}

func TestGetUnknownReturnsNotFound(t *testing.T) {
	s := New()
	if _, err := s.GetByID(context.Background(), "missing"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		if err := s.Create(ctx, newDoc(id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	docs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []string{"c", "a", "b"} {
		if docs[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, docs[i].ID)
		}
	}
}

func TestCompleteAnalysisAppliesAllFieldsAtOnce(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Create(ctx, newDoc("a")); err != nil {
		t.Fatalf("create: %v", err)
	}

	assessment := domain.RiskAssessment{
		RiskScore:   42.5,
		Summary:     "analyzed",
		RiskFactors: []string{"factor one", "factor two"},
	}
	if err := s.CompleteAnalysis(ctx, "a", assessment); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err := s.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Fatalf("expected completed status, got %s", got.Status)
	}
	if got.RiskScore == nil || *got.RiskScore != 42.5 {
		t.Fatalf("expected risk score 42.5, got %v", got.RiskScore)
	}
	if got.Summary != "analyzed" || len(got.RiskFactors) != 2 {
		t.Fatalf("assessment fields incomplete: %+v", got)
	}
}

func TestCompleteAnalysisIsIdempotentGuarded(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Create(ctx, newDoc("a")); err != nil {
		t.Fatalf("create: %v", err)
	}

	assessment := domain.RiskAssessment{RiskScore: 10}
	if err := s.CompleteAnalysis(ctx, "a", assessment); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := s.CompleteAnalysis(ctx, "a", assessment); !domain.IsKind(err, domain.ErrAlreadyCompleted) {
		t.Fatalf("expected already completed, got %v", err)
	}
	if err := s.CompleteAnalysis(ctx, "missing", assessment); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Create(ctx, newDoc("a")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CompleteAnalysis(ctx, "a", domain.RiskAssessment{RiskScore: 5, RiskFactors: []string{"x"}}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	first, _ := s.GetByID(ctx, "a")
	*first.RiskScore = 99
	first.RiskFactors[0] = "mutated"
	first.Status = domain.StatusError

	second, _ := s.GetByID(ctx, "a")
	if *second.RiskScore != 5 || second.RiskFactors[0] != "x" || second.Status != domain.StatusCompleted {
		t.Fatalf("mutation of a snapshot leaked into the store: %+v", second)
	}
}
