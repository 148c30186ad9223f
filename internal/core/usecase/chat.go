package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/ports"
	"github.com/mdashkov/doc-fraud-assistant/internal/observability/metrics"
)

// TypingSimulation configures the artificial reveal delay applied to bot
// responses: PerChar per response character, capped at Max, plus Base.
type TypingSimulation struct {
	PerChar time.Duration
	Max     time.Duration
	Base    time.Duration
}

func (t TypingSimulation) normalize() TypingSimulation {
	if t.PerChar <= 0 {
		t.PerChar = 15 * time.Millisecond
	}
	if t.Max <= 0 {
		t.Max = 3 * time.Second
	}
	if t.Base <= 0 {
		t.Base = 800 * time.Millisecond
	}
	return t
}

func (t TypingSimulation) delayFor(text string) time.Duration {
	d := time.Duration(len(text)) * t.PerChar
	if d > t.Max {
		d = t.Max
	}
	return d + t.Base
}

// ChatUseCase owns the conversation of the currently selected document.
// Switching documents replaces the log and cancels every typing task of
// the previous session so no stale response lands in the new context.
type ChatUseCase struct {
	store     ports.DocumentStore
	log       ports.ConversationLog
	responder *Responder
	scheduler ports.TaskScheduler
	typing    TypingSimulation
	metrics   *metrics.AnalysisMetrics

	mu         sync.Mutex
	activeID   string
	sessionKey string
}

func NewChatUseCase(
	store ports.DocumentStore,
	log ports.ConversationLog,
	responder *Responder,
	sched ports.TaskScheduler,
	typing TypingSimulation,
	analysisMetrics *metrics.AnalysisMetrics,
) *ChatUseCase {
	return &ChatUseCase{
		store:     store,
		log:       log,
		responder: responder,
		scheduler: sched,
		typing:    typing.normalize(),
		metrics:   analysisMetrics,
	}
}

// Select binds the conversation to a document. The log is replaced with a
// single welcome message for a known document, or emptied when the id is
// unknown; either way the previous conversation is discarded.
func (uc *ChatUseCase) Select(ctx context.Context, documentID string) (*domain.Document, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.sessionKey != "" {
		uc.scheduler.Cancel(uc.sessionKey)
	}
	uc.sessionKey = uuid.NewString()

	doc, err := uc.store.GetByID(ctx, documentID)
	if err != nil {
		uc.activeID = ""
		uc.log.Reset(nil)
		return nil, fmt.Errorf("select document: %w", err)
	}

	uc.activeID = doc.ID
	welcome := welcomeMessage(doc)
	uc.log.Reset(&welcome)
	return doc, nil
}

// Send routes one user message. Empty or whitespace-only input is a
// no-op: nothing is appended and no response is generated. Otherwise the
// user message is appended immediately and the routed response is
// revealed after the simulated typing delay; overlapping sends each
// resolve independently.
func (uc *ChatUseCase) Send(ctx context.Context, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	uc.mu.Lock()
	if uc.sessionKey == "" {
		uc.sessionKey = uuid.NewString()
	}
	sessionKey := uc.sessionKey
	activeID := uc.activeID
	uc.mu.Unlock()

	userMsg := domain.Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
	}
	uc.log.Append(userMsg)

	var doc *domain.Document
	if activeID != "" {
		snapshot, err := uc.store.GetByID(ctx, activeID)
		if err != nil {
			return nil, fmt.Errorf("load active document: %w", err)
		}
		doc = snapshot
	}

	resp := uc.responder.Respond(text, doc)
	delay := uc.typing.delayFor(resp.Text)
	uc.metrics.RecordChatResponse(serviceName, string(resp.Kind), delay)

	uc.scheduler.Schedule(sessionKey, userMsg.ID, delay, func(context.Context) {
		uc.log.Append(domain.Message{
			ID:        uuid.NewString(),
			Content:   resp.Text,
			Sender:    domain.SenderBot,
			Timestamp: time.Now().UTC(),
			Kind:      resp.Kind,
		})
	})

	return &userMsg, nil
}

func (uc *ChatUseCase) History(context.Context) ([]domain.Message, error) {
	return uc.log.Messages(), nil
}

func welcomeMessage(doc *domain.Document) domain.Message {
	content := fmt.Sprintf(
		"Hello! I'm analyzing your %s: %q\n\n"+
			"I can help you with:\n"+
			"• **Document Content** - Ask about specific information in the document\n"+
			"• **Fraud Analysis** - Understand risk factors and security assessment\n"+
			"• **Summary** - Get a comprehensive overview\n"+
			"• **Specific Questions** - Ask about any details, sections, or data\n\n"+
			"What would you like to know about this document?",
		doc.Content.DocumentType, doc.Name,
	)
	return domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    domain.SenderBot,
		Timestamp: time.Now().UTC(),
		Kind:      domain.KindText,
	}
}
