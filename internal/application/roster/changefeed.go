package roster

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

const defaultFeedBuffer = 256

// ChangeFeed convierte cada mutación del store en un ChangeEvent y lo publica en segundo plano.
// El listener nunca bloquea el despacho: con el buffer lleno el evento se descarta y se cuenta.
type ChangeFeed struct {
	pub    ports.ChangePublisher
	events chan ports.ChangeEvent
	log    zerolog.Logger

	dropped atomic.Int64

	// OnPublish se invoca tras cada intento de publicación (métricas).
	OnPublish func(err error)
}

// NewChangeFeed construye el feed; buffer <= 0 usa el valor por defecto.
func NewChangeFeed(pub ports.ChangePublisher, buffer int, log zerolog.Logger) *ChangeFeed {
	if buffer <= 0 {
		buffer = defaultFeedBuffer
	}
	return &ChangeFeed{
		pub:    pub,
		events: make(chan ports.ChangeEvent, buffer),
		log:    log.With().Str("component", "ChangeFeed").Logger(),
	}
}

// Attach suscribe el feed al store. Solo las acciones que modifican la colección generan eventos.
func (f *ChangeFeed) Attach(store *Store) (detach func()) {
	return store.Subscribe(func(state domroster.State, action domroster.Action) {
		ev, ok := EventFor(state, action)
		if !ok {
			return
		}
		select {
		case f.events <- ev:
		default:
			f.dropped.Add(1)
			f.log.Warn().Str("kind", ev.Kind).Int("employee_id", ev.EmployeeID).Msg("feed de cambios lleno, evento descartado")
		}
	})
}

// Dropped eventos descartados por buffer lleno.
func (f *ChangeFeed) Dropped() int64 { return f.dropped.Load() }

// Run publica eventos hasta que ctx termine; al terminar intenta vaciar lo pendiente.
func (f *ChangeFeed) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			f.drain()
			return nil
		case ev := <-f.events:
			f.publish(ctx, ev)
		}
	}
}

func (f *ChangeFeed) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	for {
		select {
		case ev := <-f.events:
			f.publish(ctx, ev)
		default:
			return
		}
	}
}

func (f *ChangeFeed) publish(ctx context.Context, ev ports.ChangeEvent) {
	err := f.pub.Publish(ctx, ev)
	if err != nil {
		f.log.Error().Err(err).Str("event_id", ev.ID).Str("kind", ev.Kind).Msg("no se pudo publicar el cambio")
	}
	if f.OnPublish != nil {
		f.OnPublish(err)
	}
}

// EventFor arma el evento de una acción despachada; false si la acción no modifica la colección.
func EventFor(state domroster.State, action domroster.Action) (ports.ChangeEvent, bool) {
	if !action.Mutates() {
		return ports.ChangeEvent{}, false
	}
	ev := ports.ChangeEvent{
		ID:         uuid.NewString(),
		Kind:       string(action.Kind),
		Total:      len(state.Employees),
		OccurredAt: time.Now().UTC(),
	}
	switch p := action.Payload.(type) {
	case entity.Employee:
		// Add: el registro agregado es el último.
		if n := len(state.Employees); n > 0 {
			added := state.Employees[n-1]
			ev.EmployeeID = added.ID
			ev.Employee = &added
		}
	case entity.EmployeePatch:
		ev.EmployeeID = p.ID
		if e, ok := state.Find(p.ID); ok {
			ev.Employee = &e
		}
	case int:
		ev.EmployeeID = p
	}
	return ev, true
}
