package roster_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/roster"
	"github.com/jhoicas/Roster-api/internal/infrastructure/storage"
)

func newEmployee(first string) entity.Employee {
	return entity.Employee{
		FirstName:        first,
		LastName:         "Doe",
		DateOfEmployment: "01/01/2024",
		DateOfBirth:      "02/02/1990",
		PhoneNumber:      "5551234567",
		EmailAddress:     "john@example.com",
		Department:       entity.DepartmentAnalytics,
		Position:         entity.PositionMedior,
	}
}

func TestStore_SinEstadoInicialUsaSeed(t *testing.T) {
	store := approster.NewStore(nil, 10, zerolog.Nop())

	assert.Len(t, store.Employees(), 10)
}

func TestStore_AddLuegoBuscar(t *testing.T) {
	store := approster.NewStore(&roster.State{}, 0, zerolog.Nop())

	added := store.Add(newEmployee("John"))

	require.Equal(t, 1, added.ID)
	found, ok := store.FindByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, found)

	assert.True(t, store.Delete(added.ID))
	_, ok = store.FindByID(added.ID)
	assert.False(t, ok)
	assert.False(t, store.Delete(added.ID))
}

func TestStore_UpdateIDInexistente(t *testing.T) {
	store := approster.NewStore(nil, 2, zerolog.Nop())
	name := "Nadie"

	_, ok := store.Update(entity.EmployeePatch{ID: 50, FirstName: &name})

	assert.False(t, ok)
	assert.Len(t, store.Employees(), 2)
}

func TestStore_ListenersVenEstadoDelDespachoEnOrden(t *testing.T) {
	store := approster.NewStore(&roster.State{}, 0, zerolog.Nop())
	var calls []string

	unsubA := store.Subscribe(func(state roster.State, action roster.Action) {
		calls = append(calls, "a:"+string(action.Kind))
		assert.Len(t, state.Employees, 1)
	})
	store.Subscribe(func(state roster.State, _ roster.Action) {
		calls = append(calls, "b")
	})

	store.Add(newEmployee("John"))
	assert.Equal(t, []string{"a:ADD_EMPLOYEE", "b"}, calls)

	unsubA()
	unsubA() // idempotente
	assert.Equal(t, 1, store.ListenerCount())
}

func TestStore_StateEsCopiaDefensiva(t *testing.T) {
	store := approster.NewStore(nil, 1, zerolog.Nop())

	st := store.State()
	st.Employees[0].FirstName = "mutado"

	got, _ := store.FindByID(1)
	assert.Equal(t, "Alihan", got.FirstName)
}

func TestStore_NilNoRompe(t *testing.T) {
	var store *approster.Store

	assert.Empty(t, store.Employees())
	_, ok := store.FindByID(1)
	assert.False(t, ok)
	store.Subscribe(func(roster.State, roster.Action) {})()
	assert.Equal(t, 0, store.ListenerCount())
}

func TestStore_DespachosConcurrentes(t *testing.T) {
	store := approster.NewStore(&roster.State{}, 0, zerolog.Nop())
	var mu sync.Mutex
	seen := 0
	store.Subscribe(func(state roster.State, _ roster.Action) {
		mu.Lock()
		defer mu.Unlock()
		seen++
		// Con despachos serializados cada notificación ve exactamente un empleado más.
		assert.Equal(t, seen, len(state.Employees))
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(newEmployee("John"))
		}()
	}
	wg.Wait()
	assert.Len(t, store.Employees(), 20)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bridge
// ──────────────────────────────────────────────────────────────────────────────

type failingStorage struct{ loadErr, saveErr error }

func (f failingStorage) Load(context.Context, string) ([]byte, error) { return nil, f.loadErr }
func (f failingStorage) Save(context.Context, string, []byte) error  { return f.saveErr }

func TestBridge_SinSnapshotDevuelveNil(t *testing.T) {
	bridge := approster.NewBridge(storage.NewMemoryStorage(), "", zerolog.Nop())

	assert.Nil(t, bridge.Load(context.Background()))
}

func TestBridge_SnapshotCorruptoDevuelveNil(t *testing.T) {
	s := storage.NewMemoryStorage()
	require.NoError(t, s.Save(context.Background(), approster.DefaultSnapshotKey, []byte("{no-json")))

	bridge := approster.NewBridge(s, "", zerolog.Nop())

	assert.Nil(t, bridge.Load(context.Background()))
}

func TestBridge_ErrorDeLecturaDevuelveNil(t *testing.T) {
	bridge := approster.NewBridge(failingStorage{loadErr: errors.New("disco roto")}, "", zerolog.Nop())

	assert.Nil(t, bridge.Load(context.Background()))
}

func TestBridge_GuardaTrasCadaDespachoYRecarga(t *testing.T) {
	s := storage.NewMemoryStorage()
	bridge := approster.NewBridge(s, "", zerolog.Nop())
	store := approster.NewStore(bridge.Load(context.Background()), 3, zerolog.Nop())
	detach := bridge.Attach(store)
	defer detach()

	store.Add(newEmployee("John"))
	store.Delete(1)

	raw, err := s.Load(context.Background(), approster.DefaultSnapshotKey)
	require.NoError(t, err)
	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Contains(t, snapshot, "employees")
	assert.Contains(t, snapshot, "selectedEmployee")
	assert.Contains(t, snapshot, "loading")
	assert.Contains(t, snapshot, "error")

	reloaded := bridge.Load(context.Background())
	require.NotNil(t, reloaded)
	assert.Equal(t, store.Employees(), reloaded.Employees)
}

func TestBridge_FalloDeEscrituraNoRevierteMemoria(t *testing.T) {
	bridge := approster.NewBridge(failingStorage{saveErr: errors.New("sin espacio")}, "", zerolog.Nop())
	var writeErrs []error
	bridge.OnWrite = func(err error) { writeErrs = append(writeErrs, err) }
	store := approster.NewStore(nil, 2, zerolog.Nop())
	bridge.Attach(store)

	store.Delete(1)

	assert.Len(t, store.Employees(), 1)
	require.Len(t, writeErrs, 1)
	assert.Error(t, writeErrs[0])
}
