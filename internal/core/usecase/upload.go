package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/ports"
	"github.com/mdashkov/doc-fraud-assistant/internal/observability/metrics"
)

// analysisContext owns every pending completion timer; discarding the
// registry cancels them as a group.
const analysisContext = "analysis"

const serviceName = "doc-fraud-assistant"

// ProcessingWindow bounds the simulated analysis delay. Each document
// draws an independent delay in [Min, Max), so completion order is
// unrelated to upload order.
type ProcessingWindow struct {
	Min time.Duration
	Max time.Duration
}

func (w ProcessingWindow) normalize() ProcessingWindow {
	if w.Min <= 0 {
		w.Min = 2 * time.Second
	}
	if w.Max <= w.Min {
		w.Max = w.Min + 3*time.Second
	}
	return w
}

type RegistryUseCase struct {
	store      ports.DocumentStore
	classifier ports.ContentClassifier
	assessor   ports.RiskAssessor
	scheduler  ports.TaskScheduler
	rng        ports.Rand
	window     ProcessingWindow
	metrics    *metrics.AnalysisMetrics
}

func NewRegistryUseCase(
	store ports.DocumentStore,
	classifier ports.ContentClassifier,
	assessor ports.RiskAssessor,
	scheduler ports.TaskScheduler,
	rng ports.Rand,
	window ProcessingWindow,
	analysisMetrics *metrics.AnalysisMetrics,
) *RegistryUseCase {
	return &RegistryUseCase{
		store:      store,
		classifier: classifier,
		assessor:   assessor,
		scheduler:  scheduler,
		rng:        rng,
		window:     window.normalize(),
		metrics:    analysisMetrics,
	}
}

// Upload classifies each file synchronously, stores it as processing and
// schedules its completion. The created batch is returned immediately;
// there is no validation at this layer and no failing path for an upload.
func (uc *RegistryUseCase) Upload(ctx context.Context, files []domain.FileInfo) ([]*domain.Document, error) {
	docs := make([]*domain.Document, 0, len(files))
	for _, file := range files {
		doc := &domain.Document{
			ID:         uuid.NewString(),
			Name:       file.Name,
			SizeBytes:  file.SizeBytes,
			MimeType:   file.MimeType,
			UploadedAt: time.Now().UTC(),
			Status:     domain.StatusProcessing,
			Content:    uc.classifier.Classify(file.Name, file.SizeBytes, file.MimeType),
		}
		if err := uc.store.Create(ctx, doc); err != nil {
			return nil, fmt.Errorf("create document: %w", err)
		}

		uc.metrics.RecordUpload(serviceName, string(doc.Content.DocumentType))
		uc.scheduleCompletion(doc)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (uc *RegistryUseCase) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	return doc, nil
}

func (uc *RegistryUseCase) List(ctx context.Context) ([]*domain.Document, error) {
	docs, err := uc.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// CancelPending discards every scheduled completion task. Documents left
// in processing state stay there; nothing updates them afterwards.
func (uc *RegistryUseCase) CancelPending() {
	uc.scheduler.Cancel(analysisContext)
}

func (uc *RegistryUseCase) scheduleCompletion(doc *domain.Document) {
	window := uc.window.Max - uc.window.Min
	delay := uc.window.Min + time.Duration(uc.rng.Float64()*float64(window))

	id := doc.ID
	uploadedAt := doc.UploadedAt
	content := doc.Content

	uc.scheduler.Schedule(analysisContext, id, delay, func(taskCtx context.Context) {
		assessment := uc.assessor.Assess(content)
		err := uc.store.CompleteAnalysis(taskCtx, id, assessment)
		uc.metrics.FinishAnalysis(serviceName, uploadedAt, err)
		if err != nil {
			slog.Error("analysis_complete_failed", "document_id", id, "error", err)
			return
		}
		slog.Info("analysis_completed",
			"document_id", id,
			"document_type", string(content.DocumentType),
			"risk_score", assessment.RiskScore,
			"delay_ms", delay.Milliseconds(),
		)
	})
}
