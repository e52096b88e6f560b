package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Options dependencias y tiempos del manager.
type Options struct {
	TTL           time.Duration
	SweepInterval time.Duration
	// NewTranslator crea el traductor de una sesión nueva en el idioma dado.
	NewTranslator func(lang string) ports.Translator
	// NewNavigator crea la navegación de una sesión nueva.
	NewNavigator func() Navigator
	// OnCount se invoca con la cantidad de sesiones activas tras cada alta o baja.
	OnCount func(active int)
	Now     func() time.Time
}

// Manager registro de sesiones activas.
type Manager struct {
	store *approster.Store
	opts  Options
	log   zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager construye el manager; NewTranslator y NewNavigator son obligatorios.
func NewManager(store *approster.Store, opts Options, log zerolog.Logger) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{
		store:    store,
		opts:     opts,
		log:      log.With().Str("component", "SessionManager").Logger(),
		sessions: make(map[string]*Session),
	}
}

// Create abre una sesión nueva en el idioma dado.
func (m *Manager) Create(lang string) *Session {
	id := uuid.NewString()
	s := newSession(id, m.store, m.opts.NewTranslator(lang), m.opts.NewNavigator(), m.opts.Now(), m.log)

	m.mu.Lock()
	m.sessions[id] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.log.Debug().Str("session_id", id).Str("lang", s.Language()).Msg("sesión creada")
	m.count(n)
	return s
}

// Get busca la sesión y registra actividad.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.Touch(m.opts.Now())
	}
	return s, ok
}

// GetOrCreate devuelve la sesión id o crea una nueva; created indica lo segundo.
func (m *Manager) GetOrCreate(id, lang string) (s *Session, created bool) {
	if id != "" {
		if s, ok := m.Get(id); ok {
			return s, false
		}
	}
	return m.Create(lang), true
}

// Close cierra la sesión y libera sus suscripciones.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.Lock()
	s.close()
	s.Unlock()
	m.count(n)
	return true
}

// Count sesiones activas.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep cierra las sesiones inactivas por más de TTL y devuelve cuántas cerró.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen()) > m.opts.TTL {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	closed := 0
	for _, id := range expired {
		if m.Close(id) {
			closed++
		}
	}
	if closed > 0 {
		m.log.Info().Int("closed", closed).Int("active", m.Count()).Msg("sesiones expiradas cerradas")
	}
	return closed
}

// Run barre sesiones cada SweepInterval hasta que ctx termine; al salir cierra todas.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return nil
		case <-ticker.C:
			m.Sweep(m.opts.Now())
		}
	}
}

func (m *Manager) closeAll() {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	for _, id := range ids {
		m.Close(id)
	}
}

func (m *Manager) count(n int) {
	if m.opts.OnCount != nil {
		m.opts.OnCount(n)
	}
}
