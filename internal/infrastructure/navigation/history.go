// Package navigation implementa la capacidad de navegación de una sesión como un historial en memoria.
package navigation

import (
	"sync"

	"github.com/jhoicas/Roster-api/internal/application/ports"
)

var _ ports.Navigator = (*History)(nil)

const maxHistory = 50

// History guarda la ubicación actual y las últimas visitadas.
type History struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistory arranca en start ("/" si está vacío).
func NewHistory(start string) *History {
	if start == "" {
		start = ports.PathHome
	}
	return &History{entries: []string{start}}
}

// Navigate cambia la ubicación actual.
func (h *History) Navigate(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, path)
	if len(h.entries) > maxHistory {
		h.entries = append([]string(nil), h.entries[len(h.entries)-maxHistory:]...)
	}
}

// Location ubicación actual.
func (h *History) Location() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[len(h.entries)-1]
}

// Entries copia del historial, de la más antigua a la actual.
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
