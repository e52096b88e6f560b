// Package session mantiene el estado de vista de cada cliente HTTP: idioma, navegación,
// controlador de lista y, cuando está abierto, el formulario.
package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/form"
	"github.com/jhoicas/Roster-api/internal/application/listview"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
)

// Navigator navegación que además informa la ubicación actual.
type Navigator interface {
	ports.Navigator
	Location() string
}

// Session vista de un cliente. Lock/Unlock serializan las peticiones del mismo cliente.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	store    *approster.Store
	tr       ports.Translator
	nav      Navigator
	list     *listview.Controller
	form     *form.Controller
	answer   atomic.Bool
	lastSeen atomic.Int64
	log      zerolog.Logger
}

func newSession(id string, store *approster.Store, tr ports.Translator, nav Navigator, now time.Time, log zerolog.Logger) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: now,
		store:     store,
		tr:        tr,
		nav:       nav,
		log:       log,
	}
	s.lastSeen.Store(now.UnixNano())
	s.list = listview.New(store, tr, nav, log)
	s.list.Mount()
	return s
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch registra actividad.
func (s *Session) Touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

// LastSeen última actividad registrada.
func (s *Session) LastSeen() time.Time { return time.Unix(0, s.lastSeen.Load()) }

func (s *Session) Translator() ports.Translator { return s.tr }

func (s *Session) Navigator() Navigator { return s.nav }

func (s *Session) List() *listview.Controller { return s.list }

// Location ubicación actual de la sesión.
func (s *Session) Location() string { return s.nav.Location() }

// Language idioma activo.
func (s *Session) Language() string { return s.tr.Language() }

// Form formulario abierto, si hay.
func (s *Session) Form() (*form.Controller, bool) {
	return s.form, s.form != nil
}

// OpenForm desmonta el formulario anterior y monta uno nuevo cargado con token.
func (s *Session) OpenForm(token string) *form.Controller {
	s.CloseForm()
	f := form.New(s.store, s.tr, s.nav, ports.ConfirmFunc(s.confirm), s.log)
	f.Load(token)
	f.Mount()
	s.form = f
	return f
}

// FormFor devuelve el formulario abierto para token, abriéndolo si es otro o no hay ninguno.
func (s *Session) FormFor(token string) *form.Controller {
	if s.form != nil && s.form.Token() == token {
		return s.form
	}
	return s.OpenForm(token)
}

// CloseForm desmonta el formulario abierto.
func (s *Session) CloseForm() {
	if s.form != nil {
		s.form.Unmount()
		s.form = nil
	}
}

// AnswerConfirmations fija la respuesta que recibirá la próxima confirmación del formulario.
func (s *Session) AnswerConfirmations(yes bool) { s.answer.Store(yes) }

func (s *Session) confirm(string) bool { return s.answer.Swap(false) }

func (s *Session) close() {
	s.CloseForm()
	s.list.Unmount()
}
