package i18n

import (
	"fmt"
	"sync"

	goi18n "github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain"
)

var _ ports.Translator = (*Localizer)(nil)

// Localizer idioma activo de una sesión más sus suscriptores de cambio de idioma.
type Localizer struct {
	catalog *Catalog

	mu        sync.RWMutex
	lang      string
	localizer *goi18n.Localizer
	listeners map[uint64]func(string)
	nextID    uint64
}

// NewLocalizer crea un Localizer en el idioma indicado (o el por defecto del catálogo).
func (c *Catalog) NewLocalizer(lang string) *Localizer {
	if !Supported(lang) {
		lang = c.defaultLang
	}
	return &Localizer{
		catalog:   c,
		lang:      lang,
		localizer: c.localizer(lang),
		listeners: map[uint64]func(string){},
	}
}

// Translate devuelve el texto de la clave; si no existe devuelve la clave.
func (l *Localizer) Translate(key string) string {
	l.mu.RLock()
	loc := l.localizer
	l.mu.RUnlock()

	// Si falta en el idioma activo, go-i18n devuelve el texto del idioma por defecto junto con el error.
	msg, _ := loc.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if msg == "" {
		return key
	}
	return msg
}

// Language idioma activo.
func (l *Localizer) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// SetLanguage cambia el idioma y notifica a los suscriptores.
func (l *Localizer) SetLanguage(lang string) error {
	if !Supported(lang) {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLang, lang)
	}
	l.mu.Lock()
	l.lang = lang
	l.localizer = l.catalog.localizer(lang)
	listeners := make([]func(string), 0, len(l.listeners))
	for _, fn := range l.listeners {
		listeners = append(listeners, fn)
	}
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(lang)
	}
	return nil
}

// Toggle alterna entre inglés y turco y devuelve el idioma nuevo.
func (l *Localizer) Toggle() string {
	next := Turkish
	if l.Language() == Turkish {
		next = English
	}
	_ = l.SetLanguage(next)
	return next
}

// Subscribe registra un callback de cambio de idioma.
func (l *Localizer) Subscribe(onChange func(lang string)) func() {
	if onChange == nil {
		return func() {}
	}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.listeners[id] = onChange
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}
