package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
)

type fakeLog struct {
	messages []domain.Message
	resets   int
}

func (f *fakeLog) Append(msg domain.Message) {
	f.messages = append(f.messages, msg)
}

func (f *fakeLog) Reset(seed *domain.Message) {
	f.resets++
	f.messages = nil
	if seed != nil {
		f.messages = []domain.Message{*seed}
	}
}

func (f *fakeLog) Messages() []domain.Message {
	out := make([]domain.Message, len(f.messages))
	copy(out, f.messages)
	return out
}

func newChatForTest(store *fakeStore, log *fakeLog, sched *fakeScheduler, typing TypingSimulation) *ChatUseCase {
	return NewChatUseCase(store, log, NewResponder(&scriptedRand{}), sched, typing, nil)
}

func seedDocument(t *testing.T, store *fakeStore, doc *domain.Document) {
	t.Helper()
	if err := store.Create(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
}

func TestSelectSeedsWelcomeMessage(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	uc := newChatForTest(store, log, &fakeScheduler{}, TypingSimulation{})
	seedDocument(t, store, resumeDoc())

	doc, err := uc.Select(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if doc.ID != "doc-1" {
		t.Fatalf("unexpected document: %+v", doc)
	}

	msgs := log.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected a single welcome message, got %d", len(msgs))
	}
	welcome := msgs[0]
	if welcome.Sender != domain.SenderBot {
		t.Fatalf("welcome must come from the bot")
	}
	if !strings.Contains(welcome.Content, "Resume/CV") || !strings.Contains(welcome.Content, `"john_resume.pdf"`) {
		t.Fatalf("welcome missing type or filename:\n%s", welcome.Content)
	}
}

func TestSelectDiscardsPreviousConversation(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	sched := &fakeScheduler{}
	uc := newChatForTest(store, log, sched, TypingSimulation{})
	seedDocument(t, store, resumeDoc())
	seedDocument(t, store, invoiceDoc())

	if _, err := uc.Select(context.Background(), "doc-1"); err != nil {
		t.Fatalf("select first: %v", err)
	}
	if _, err := uc.Send(context.Background(), "what skills are listed?"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if _, err := uc.Select(context.Background(), "doc-2"); err != nil {
		t.Fatalf("select second: %v", err)
	}

	msgs := log.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected conversation reset to one welcome, got %d messages", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "Invoice") || strings.Contains(msgs[0].Content, "john_resume.pdf") {
		t.Fatalf("welcome references the wrong document:\n%s", msgs[0].Content)
	}
	if len(sched.cancelled) == 0 {
		t.Fatalf("expected pending typing tasks of the old session to be cancelled")
	}
}

func TestSelectUnknownDocumentClearsSession(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	uc := newChatForTest(store, log, &fakeScheduler{}, TypingSimulation{})
	seedDocument(t, store, resumeDoc())

	if _, err := uc.Select(context.Background(), "doc-1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := uc.Select(context.Background(), "missing"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(log.Messages()) != 0 {
		t.Fatalf("expected log emptied after failed select")
	}
}

func TestSendEmptyInputIsNoOp(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	sched := &fakeScheduler{}
	uc := newChatForTest(store, log, sched, TypingSimulation{})

	msg, err := uc.Send(context.Background(), "   \n\t ")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg != nil {
		t.Fatalf("expected nil message for whitespace input, got %+v", msg)
	}
	if len(log.Messages()) != 0 || len(sched.tasks) != 0 {
		t.Fatalf("whitespace input must not touch the log or scheduler")
	}
}

func TestSendAppendsUserMessageAndSchedulesReply(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	sched := &fakeScheduler{}
	uc := newChatForTest(store, log, sched, TypingSimulation{})
	seedDocument(t, store, resumeDoc())

	if _, err := uc.Select(context.Background(), "doc-1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	msg, err := uc.Send(context.Background(), "what skills are listed?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg == nil || msg.Sender != domain.SenderUser || msg.Content != "what skills are listed?" {
		t.Fatalf("unexpected user message: %+v", msg)
	}

	msgs := log.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected welcome + user message before the reply, got %d", len(msgs))
	}
	if len(sched.tasks) != 1 {
		t.Fatalf("expected one scheduled reply, got %d", len(sched.tasks))
	}

	sched.runAll()
	msgs = log.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected the bot reply after the delay, got %d messages", len(msgs))
	}
	reply := msgs[2]
	if reply.Sender != domain.SenderBot || reply.Kind != domain.KindAnalysis {
		t.Fatalf("unexpected reply: sender=%s kind=%s", reply.Sender, reply.Kind)
	}
	if !strings.Contains(reply.Content, "## Skills from") {
		t.Fatalf("reply did not come from the skills rule:\n%s", reply.Content)
	}
}

func TestSendTypingDelayScalesWithResponse(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	sched := &fakeScheduler{}
	typing := TypingSimulation{PerChar: 15 * time.Millisecond, Max: 3 * time.Second, Base: 800 * time.Millisecond}
	uc := newChatForTest(store, log, sched, typing)
	seedDocument(t, store, resumeDoc())

	if _, err := uc.Select(context.Background(), "doc-1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := uc.Send(context.Background(), "what skills are listed?"); err != nil {
		t.Fatalf("send: %v", err)
	}

	delay := sched.tasks[0].delay
	if delay < 800*time.Millisecond || delay > 3800*time.Millisecond {
		t.Fatalf("delay %v outside [base, base+max]", delay)
	}
}

func TestSendLongResponseDelayIsCapped(t *testing.T) {
	typing := TypingSimulation{PerChar: 15 * time.Millisecond, Max: 3 * time.Second, Base: 800 * time.Millisecond}
	long := strings.Repeat("a", 10_000)
	if got := typing.delayFor(long); got != 3800*time.Millisecond {
		t.Fatalf("expected capped delay 3.8s, got %v", got)
	}
	if got := typing.delayFor("ab"); got != 830*time.Millisecond {
		t.Fatalf("expected 2*15ms+800ms, got %v", got)
	}
}

func TestSendWithoutSelectionPromptsForDocument(t *testing.T) {
	store := newFakeStore()
	log := &fakeLog{}
	sched := &fakeScheduler{}
	uc := newChatForTest(store, log, sched, TypingSimulation{})

	if _, err := uc.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	sched.runAll()

	msgs := log.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user message + prompt, got %d", len(msgs))
	}
	if !strings.Contains(msgs[1].Content, "Please select a document first") {
		t.Fatalf("expected selection prompt, got %q", msgs[1].Content)
	}
}
