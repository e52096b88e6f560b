// Package i18n implementa la capacidad de traducción (en/tr) sobre un bundle go-i18n.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	goi18n "github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

// Idiomas soportados.
const (
	English = "en"
	Turkish = "tr"
)

// Catalog bundle compartido por todos los Localizer (uno por sesión).
type Catalog struct {
	bundle      *goi18n.Bundle
	matcher     language.Matcher
	defaultLang string
}

// NewCatalog carga los mensajes embebidos. defaultLang vacío o no soportado usa inglés.
func NewCatalog(defaultLang string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("leer locales: %w", err)
	}
	for _, entry := range entries {
		file := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, file); err != nil {
			return nil, fmt.Errorf("parsear %s: %w", file, err)
		}
	}

	if !Supported(defaultLang) {
		defaultLang = English
	}
	return &Catalog{
		bundle:      bundle,
		matcher:     language.NewMatcher([]language.Tag{language.English, language.Turkish}),
		defaultLang: defaultLang,
	}, nil
}

// MustCatalog como NewCatalog pero entra en pánico; los locales van embebidos en el binario.
func MustCatalog(defaultLang string) *Catalog {
	c, err := NewCatalog(defaultLang)
	if err != nil {
		panic(err)
	}
	return c
}

// Supported indica si el idioma tiene catálogo.
func Supported(lang string) bool {
	return lang == English || lang == Turkish
}

// DefaultLanguage idioma inicial de los Localizer nuevos.
func (c *Catalog) DefaultLanguage() string { return c.defaultLang }

// Match elige el idioma soportado que mejor encaja con un header Accept-Language.
// Sin header válido devuelve el idioma por defecto.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	tag, _, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultLang
	}
	base, _ := tag.Base()
	if !Supported(base.String()) {
		return c.defaultLang
	}
	return base.String()
}

func (c *Catalog) localizer(lang string) *goi18n.Localizer {
	return goi18n.NewLocalizer(c.bundle, lang)
}

var _ ports.TranslatorFactory = (*Catalog)(nil)

// NewTranslator como NewLocalizer pero rechaza idiomas no soportados.
func (c *Catalog) NewTranslator(lang string) (ports.Translator, error) {
	if lang != "" && !Supported(lang) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLang, lang)
	}
	return c.NewLocalizer(lang), nil
}
