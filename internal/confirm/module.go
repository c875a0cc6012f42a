package confirm

import (
	"context"
	"time"

	"github.com/shandysiswandi/goconfirm/internal/confirm/event"
	"github.com/shandysiswandi/goconfirm/internal/confirm/inbound"
	"github.com/shandysiswandi/goconfirm/internal/confirm/store"
	"github.com/shandysiswandi/goconfirm/internal/confirm/usecase"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkguid"
)

const (
	defaultMaxPayloadBytes = 10 << 20
	defaultEventBuffer     = 512
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
	EventID   pkguid.NumberID
}

// New wires the confirm module and returns the closer that drains its notifier.
func New(dep Dependency) (func(context.Context) error, error) {
	maxPayload := dep.Config.GetInt("modules.confirm.max_payload_bytes")
	if maxPayload <= 0 {
		maxPayload = defaultMaxPayloadBytes
	}

	buffer := int(dep.Config.GetInt("modules.confirm.event_buffer"))
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	bus := event.NewBus(buffer)
	notifier := event.NewFailureNotifier(bus, event.LogHandler{}, event.NotifierConfig{
		Workers:     int(dep.Config.GetInt("modules.confirm.notifier.workers")),
		MaxRetries:  int(dep.Config.GetInt("modules.confirm.notifier.max_retries")),
		BaseBackoff: durationOr(dep.Config.GetDuration("modules.confirm.notifier.base_backoff"), 200*time.Millisecond),
	})
	notifier.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store:           store.NewInMemoryStore(),
		Events:          bus,
		Runner:          dep.Goroutine,
		ID:              dep.ID,
		EventID:         dep.EventID,
		RootCtx:         dep.Context,
		MaxPayloadBytes: maxPayload,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, maxPayload)

	return notifier.Stop, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
