// Package scheduler runs deferred simulation tasks (analysis completion,
// chat typing delays) on plain timers. Tasks are keyed by an owning
// context so a context switch can cancel everything still pending for the
// discarded context instead of letting it update stale state.
package scheduler

import (
	"context"
	"sync"
	"time"
)

type task struct {
	timer  *time.Timer
	cancel context.CancelFunc
}

type Timed struct {
	mu      sync.Mutex
	tasks   map[string]map[string]*task
	stopped bool
}

func New() *Timed {
	return &Timed{tasks: make(map[string]map[string]*task)}
}

// Schedule runs fn after delay unless the task's context is cancelled
// first. fn receives a context that is done once Cancel or Stop has been
// called for its owner, so a late firing can still bail out.
func (s *Timed) Schedule(contextKey, taskID string, delay time.Duration, fn func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel}
	t.timer = time.AfterFunc(delay, func() {
		s.remove(contextKey, taskID)
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})

	group, ok := s.tasks[contextKey]
	if !ok {
		group = make(map[string]*task)
		s.tasks[contextKey] = group
	}
	if previous, ok := group[taskID]; ok {
		previous.timer.Stop()
		previous.cancel()
	}
	group[taskID] = t
}

// Cancel discards every task still pending for the context.
func (s *Timed) Cancel(contextKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks[contextKey] {
		t.timer.Stop()
		t.cancel()
	}
	delete(s.tasks, contextKey)
}

// Stop cancels all pending tasks and refuses new ones.
func (s *Timed) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for _, group := range s.tasks {
		for _, t := range group {
			t.timer.Stop()
			t.cancel()
		}
	}
	s.tasks = make(map[string]map[string]*task)
}

func (s *Timed) remove(contextKey, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.tasks[contextKey]
	if !ok {
		return
	}
	delete(group, taskID)
	if len(group) == 0 {
		delete(s.tasks, contextKey)
	}
}
