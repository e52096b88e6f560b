package roster

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/repository"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

// DefaultSnapshotKey slot donde se guarda el snapshot.
const DefaultSnapshotKey = "employeeAppState"

const writeTimeout = 5 * time.Second

// Bridge puente de persistencia: carga el snapshot al arrancar y lo reescribe tras cada despacho.
// La persistencia es best-effort: los fallos se registran y el estado en memoria sigue siendo la fuente de verdad.
type Bridge struct {
	storage repository.SnapshotStorage
	key     string
	log     zerolog.Logger

	// OnWrite, si no es nil, recibe el resultado de cada escritura (métricas).
	OnWrite func(err error)
}

// NewBridge construye el puente sobre un storage. key vacío usa DefaultSnapshotKey.
func NewBridge(storage repository.SnapshotStorage, key string, log zerolog.Logger) *Bridge {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &Bridge{
		storage: storage,
		key:     key,
		log:     log.With().Str("component", "PersistenceBridge").Str("key", key).Logger(),
	}
}

// Load lee el snapshot. Devuelve nil si no existe o no se puede leer/parsear (se usará el seed por defecto).
func (b *Bridge) Load(ctx context.Context) *domroster.State {
	if b == nil || b.storage == nil {
		return nil
	}
	payload, err := b.storage.Load(ctx, b.key)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			b.log.Info().Msg("sin snapshot previo, se usará el estado por defecto")
			return nil
		}
		b.log.Warn().Err(err).Msg("no se pudo leer el snapshot")
		return nil
	}
	var state domroster.State
	if err := json.Unmarshal(payload, &state); err != nil {
		b.log.Warn().Err(err).Msg("snapshot corrupto, se usará el estado por defecto")
		return nil
	}
	if state.Employees == nil {
		state.Employees = []entity.Employee{}
	}
	b.log.Info().Int("employees", len(state.Employees)).Msg("snapshot cargado")
	return &state
}

// Save serializa el estado completo y lo escribe en el slot.
func (b *Bridge) Save(ctx context.Context, state domroster.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return b.storage.Save(ctx, b.key, payload)
}

// Attach suscribe el puente al store; cada despacho produce una escritura del snapshot.
func (b *Bridge) Attach(store *Store) (detach func()) {
	if b == nil || b.storage == nil {
		return func() {}
	}
	return store.Subscribe(func(state domroster.State, action domroster.Action) {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		err := b.Save(ctx, state)
		if err != nil {
			b.log.Warn().Err(err).Str("action", string(action.Kind)).Msg("no se pudo guardar el snapshot")
		}
		if b.OnWrite != nil {
			b.OnWrite(err)
		}
	})
}
