// Package roster expone la instancia del Record Store (estado + suscriptores) y el puente de
// persistencia que guarda un snapshot tras cada despacho.
package roster

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/domain/entity"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

// Listener se invoca tras cada despacho con el estado resultante y la acción que lo produjo.
// El estado recibido es de solo lectura. Un listener no debe despachar.
type Listener func(state domroster.State, action domroster.Action)

type subscription struct {
	id uint64
	fn Listener
}

// Store dueño de la colección de empleados y único mutador vía acciones.
// Los despachos se serializan: cada listener ve el estado de su despacho antes de que empiece el siguiente.
// Un *Store nil se comporta como una colección vacía.
type Store struct {
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     domroster.State
	listeners []subscription
	nextID    uint64

	log zerolog.Logger
}

// NewStore construye el store con el estado inicial; si es nil genera seedCount empleados por defecto.
func NewStore(initial *domroster.State, seedCount int, log zerolog.Logger) *Store {
	var state domroster.State
	if initial != nil {
		state = initial.Clone()
	} else {
		state = domroster.DefaultState(seedCount)
	}
	return &Store{
		state: state,
		log:   log.With().Str("component", "RecordStore").Logger(),
	}
}

// State devuelve una copia del estado actual.
func (s *Store) State() domroster.State {
	if s == nil {
		return domroster.State{Employees: []entity.Employee{}}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Employees devuelve una copia de la colección en orden de inserción.
func (s *Store) Employees() []entity.Employee {
	return s.State().Employees
}

// FindByID busca un empleado por ID.
func (s *Store) FindByID(id int) (entity.Employee, bool) {
	if s == nil {
		return entity.Employee{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Find(id)
}

// Dispatch reduce la acción y notifica a los listeners en orden de registro.
func (s *Store) Dispatch(action domroster.Action) domroster.State {
	if s == nil {
		return domroster.State{Employees: []entity.Employee{}}
	}
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = domroster.Reduce(s.state, action)
	next := s.state.Clone()
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.log.Debug().
		Str("action", string(action.Kind)).
		Int("total", len(next.Employees)).
		Int("listeners", len(listeners)).
		Msg("acción despachada")

	for _, l := range listeners {
		l.fn(next, action)
	}
	return next
}

// Subscribe registra un listener y devuelve la función para darlo de baja (idempotente).
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// ListenerCount cantidad de listeners registrados.
func (s *Store) ListenerCount() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Add agrega el empleado y devuelve el registro con el ID asignado.
func (s *Store) Add(e entity.Employee) entity.Employee {
	next := s.Dispatch(domroster.Add(e))
	if len(next.Employees) == 0 {
		return entity.Employee{}
	}
	return next.Employees[len(next.Employees)-1]
}

// Update aplica el patch; false si no existe un empleado con ese ID (el despacho es no-op).
func (s *Store) Update(p entity.EmployeePatch) (entity.Employee, bool) {
	next := s.Dispatch(domroster.Update(p))
	return next.Find(p.ID)
}

// Delete elimina el empleado; false si no existía.
func (s *Store) Delete(id int) bool {
	_, existed := s.FindByID(id)
	s.Dispatch(domroster.Delete(id))
	return existed
}
