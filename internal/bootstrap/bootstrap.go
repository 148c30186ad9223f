package bootstrap

import (
	"time"

	"github.com/mdashkov/doc-fraud-assistant/internal/config"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/ports"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/usecase"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/classifier/heuristic"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/conversation/memlog"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/randsrc"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/registry/memstore"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/scheduler"
	"github.com/mdashkov/doc-fraud-assistant/internal/infrastructure/scoring"
	"github.com/mdashkov/doc-fraud-assistant/internal/observability/metrics"
)

const serviceName = "doc-fraud-assistant"

type App struct {
	Config config.Config

	Registry ports.DocumentRegistry
	Chat     ports.ChatSession

	HTTPMetrics *metrics.HTTPServerMetrics

	closeFn func()
}

func New(cfg config.Config) *App {
	rng := randsrc.New(cfg.RandomSeed)

	store := memstore.New()
	log := memlog.New()
	sched := scheduler.New()

	httpMetrics := metrics.NewHTTPServerMetrics(serviceName)
	analysisMetrics := metrics.NewAnalysisMetrics(serviceName, httpMetrics.Registry())

	registryUC := usecase.NewRegistryUseCase(
		store,
		heuristic.NewClassifier(rng),
		scoring.NewAssessor(rng),
		sched,
		rng,
		usecase.ProcessingWindow{
			Min: time.Duration(cfg.ProcessingDelayMinMs) * time.Millisecond,
			Max: time.Duration(cfg.ProcessingDelayMaxMs) * time.Millisecond,
		},
		analysisMetrics,
	)

	chatUC := usecase.NewChatUseCase(
		store,
		log,
		usecase.NewResponder(rng),
		sched,
		usecase.TypingSimulation{
			PerChar: time.Duration(cfg.TypingDelayPerCharMs) * time.Millisecond,
			Max:     time.Duration(cfg.TypingDelayMaxMs) * time.Millisecond,
			Base:    time.Duration(cfg.TypingDelayBaseMs) * time.Millisecond,
		},
		analysisMetrics,
	)

	return &App{
		Config: cfg,

		Registry: registryUC,
		Chat:     chatUC,

		HTTPMetrics: httpMetrics,

		closeFn: func() {
			sched.Stop()
		},
	}
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
