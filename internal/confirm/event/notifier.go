package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.SummaryFailedEvent) error
}

type NotifierConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// FailureNotifier drains the bus with a pool of workers and hands each
// failed-summary event to a Handler, retrying with exponential backoff.
//
// Events carrying an EventID already seen are dropped.
type FailureNotifier struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func NewFailureNotifier(bus *Bus, handler Handler, cfg NotifierConfig) *FailureNotifier {
	workers := cfg.Workers
	if workers < 1 {
		workers = 4
	}

	maxRetries := max(cfg.MaxRetries, 0)

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FailureNotifier{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (n *FailureNotifier) Start() {
	for range n.workers {
		n.wg.Add(1)
		go n.worker()
	}
}

// Stop closes the bus and waits for queued events to be handled.
//
// When ctx expires first, pending retries are abandoned and ctx's error is returned.
func (n *FailureNotifier) Stop(ctx context.Context) error {
	if n.bus != nil {
		n.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.cancel()
		return nil
	case <-ctx.Done():
		n.cancel()
		return ctx.Err()
	}
}

func (n *FailureNotifier) worker() {
	defer n.wg.Done()

	for event := range n.bus.Subscribe() {
		n.processEvent(event)
	}
}

func (n *FailureNotifier) processEvent(event entity.SummaryFailedEvent) {
	if n.handler == nil {
		return
	}

	if event.EventID != 0 {
		if _, loaded := n.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate summary failed event", "event_id", event.EventID, "summary_id", event.SummaryID)
			return
		}
	}

	backoff := n.baseBackoff
	for attempt := 0; attempt <= n.maxRetries; attempt++ {
		err := n.handler.Handle(n.ctx, event)
		if err == nil {
			return
		}

		if attempt == n.maxRetries {
			slog.Error("failed to notify summary failure after retries", "event_id", event.EventID, "summary_id", event.SummaryID, "error", err)
			return
		}

		if !n.sleep(backoff) {
			return
		}
		backoff *= 2
	}
}

func (n *FailureNotifier) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-n.ctx.Done():
		return false
	}
}

// LogHandler reports failed summaries in the service log.
type LogHandler struct{}

func (LogHandler) Handle(ctx context.Context, event entity.SummaryFailedEvent) error {
	if event.SummaryID == "" {
		return errors.New("missing summary id")
	}

	slog.WarnContext(ctx, "summary failed",
		"event_id", event.EventID,
		"summary_id", event.SummaryID,
		"run", event.Run,
		"reason", event.Reason,
	)
	return nil
}
