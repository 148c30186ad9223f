package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type fakeStore struct {
	docs      map[string]*domain.Document
	order     []string
	completed []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]*domain.Document)}
}

func (f *fakeStore) Create(_ context.Context, doc *domain.Document) error {
	copied := *doc
	f.docs[doc.ID] = &copied
	f.order = append(f.order, doc.ID)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", context.Canceled)
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeStore) List(_ context.Context) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0, len(f.order))
	for _, id := range f.order {
		copied := *f.docs[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStore) CompleteAnalysis(_ context.Context, id string, assessment domain.RiskAssessment) error {
	doc, ok := f.docs[id]
	if !ok {
		return domain.WrapError(domain.ErrDocumentNotFound, "complete analysis", context.Canceled)
	}
	if doc.Status == domain.StatusCompleted {
		return domain.WrapError(domain.ErrAlreadyCompleted, "complete analysis", context.Canceled)
	}
	score := assessment.RiskScore
	doc.RiskScore = &score
	doc.Summary = assessment.Summary
	doc.RiskFactors = assessment.RiskFactors
	doc.Status = domain.StatusCompleted
	f.completed = append(f.completed, id)
	return nil
}

type scheduledTask struct {
	contextKey string
	taskID     string
	delay      time.Duration
	fn         func(context.Context)
}

type fakeScheduler struct {
	tasks     []scheduledTask
	cancelled []string
}

func (f *fakeScheduler) Schedule(contextKey, taskID string, delay time.Duration, fn func(context.Context)) {
	f.tasks = append(f.tasks, scheduledTask{contextKey: contextKey, taskID: taskID, delay: delay, fn: fn})
}

func (f *fakeScheduler) Cancel(contextKey string) {
	f.cancelled = append(f.cancelled, contextKey)
	var kept []scheduledTask
	for _, task := range f.tasks {
		if task.contextKey != contextKey {
			kept = append(kept, task)
		}
	}
	f.tasks = kept
}

func (f *fakeScheduler) Stop() {}

func (f *fakeScheduler) runAll() {
	tasks := f.tasks
	f.tasks = nil
	for _, task := range tasks {
		task.fn(context.Background())
	}
}

type fakeClassifier struct{}

func (fakeClassifier) Classify(filename string, sizeBytes int64, mimeType string) domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeGeneral,
		General: &domain.GeneralDetails{
			Title:     filename,
			SizeBytes: sizeBytes,
			MimeType:  mimeType,
		},
		TextContent: []string{"text"},
	}
}

type fakeAssessor struct {
	score float64
}

func (f fakeAssessor) Assess(domain.ContentRecord) domain.RiskAssessment {
	return domain.RiskAssessment{
		RiskScore:   f.score,
		Summary:     "assessed",
		RiskFactors: []string{"factor"},
	}
}

func newRegistryForTest(store *fakeStore, sched *fakeScheduler, rng *scriptedRand, window ProcessingWindow) *RegistryUseCase {
	return NewRegistryUseCase(store, fakeClassifier{}, fakeAssessor{score: 42}, sched, rng, window, nil)
}

func TestUploadStoresProcessingDocuments(t *testing.T) {
	store := newFakeStore()
	sched := &fakeScheduler{}
	uc := newRegistryForTest(store, sched, &scriptedRand{}, ProcessingWindow{})

	docs, err := uc.Upload(context.Background(), []domain.FileInfo{
		{Name: "one.pdf", SizeBytes: 100, MimeType: "application/pdf"},
		{Name: "two.pdf", SizeBytes: 200, MimeType: "application/pdf"},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.Status != domain.StatusProcessing {
			t.Fatalf("expected processing status, got %s", doc.Status)
		}
		if doc.RiskScore != nil {
			t.Fatalf("risk score must be unset before completion")
		}
		if doc.ID == "" {
			t.Fatalf("expected generated id")
		}
	}
	if docs[0].ID == docs[1].ID {
		t.Fatalf("ids must be unique per upload")
	}
	if len(sched.tasks) != 2 {
		t.Fatalf("expected a completion task per document, got %d", len(sched.tasks))
	}
}

func TestUploadDelayWithinWindow(t *testing.T) {
	window := ProcessingWindow{Min: 2 * time.Second, Max: 5 * time.Second}

	cases := []struct {
		draw float64
		want time.Duration
	}{
		{0, 2 * time.Second},
		{0.5, 3500 * time.Millisecond},
		{0.75, 4250 * time.Millisecond},
	}
	for _, tc := range cases {
		store := newFakeStore()
		sched := &fakeScheduler{}
		uc := newRegistryForTest(store, sched, &scriptedRand{floats: []float64{tc.draw}}, window)

		if _, err := uc.Upload(context.Background(), []domain.FileInfo{{Name: "a.pdf"}}); err != nil {
			t.Fatalf("upload: %v", err)
		}
		got := sched.tasks[0].delay
		if got != tc.want {
			t.Fatalf("draw %v: expected delay %v, got %v", tc.draw, tc.want, got)
		}
		if got < window.Min || got >= window.Max {
			t.Fatalf("delay %v outside [%v, %v)", got, window.Min, window.Max)
		}
	}
}

func TestCompletionTaskAppliesAssessment(t *testing.T) {
	store := newFakeStore()
	sched := &fakeScheduler{}
	uc := newRegistryForTest(store, sched, &scriptedRand{}, ProcessingWindow{})

	docs, err := uc.Upload(context.Background(), []domain.FileInfo{{Name: "a.pdf"}})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	sched.runAll()

	got, err := uc.Get(context.Background(), docs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusCompleted {
		t.Fatalf("expected completed after task ran, got %s", got.Status)
	}
	if got.RiskScore == nil || *got.RiskScore != 42 {
		t.Fatalf("expected risk score 42, got %v", got.RiskScore)
	}
	if got.Summary != "assessed" || len(got.RiskFactors) != 1 {
		t.Fatalf("assessment not applied: %+v", got)
	}
}

func TestCancelPendingDropsScheduledCompletions(t *testing.T) {
	store := newFakeStore()
	sched := &fakeScheduler{}
	uc := newRegistryForTest(store, sched, &scriptedRand{}, ProcessingWindow{})

	docs, err := uc.Upload(context.Background(), []domain.FileInfo{{Name: "a.pdf"}})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	uc.CancelPending()
	sched.runAll()

	got, err := uc.Get(context.Background(), docs[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusProcessing {
		t.Fatalf("cancelled document must stay processing, got %s", got.Status)
	}
}

func TestGetUnknownDocument(t *testing.T) {
	uc := newRegistryForTest(newFakeStore(), &fakeScheduler{}, &scriptedRand{}, ProcessingWindow{})
	if _, err := uc.Get(context.Background(), "missing"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListReturnsUploadOrder(t *testing.T) {
	store := newFakeStore()
	sched := &fakeScheduler{}
	uc := newRegistryForTest(store, sched, &scriptedRand{}, ProcessingWindow{})

	first, _ := uc.Upload(context.Background(), []domain.FileInfo{{Name: "one.pdf"}})
	second, _ := uc.Upload(context.Background(), []domain.FileInfo{{Name: "two.pdf"}})

	docs, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != first[0].ID || docs[1].ID != second[0].ID {
		t.Fatalf("list not in upload order")
	}
}
