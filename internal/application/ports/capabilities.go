package ports

// Navigator capacidad de navegación: dado un path, cambia la pantalla visible.
// Paths usados: "/", "/user/new", "/user/{id}".
type Navigator interface {
	Navigate(path string)
}

// Translator capacidad de traducción clave → texto para el idioma activo.
// Subscribe registra un callback de cambio de idioma y devuelve la función para darlo de baja.
type Translator interface {
	Translate(key string) string
	Language() string
	SetLanguage(lang string) error
	Subscribe(onChange func(lang string)) (unsubscribe func())
}

// Confirmer capacidad sí/no inyectada (reemplaza al diálogo de confirmación bloqueante).
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(message string) bool

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

// Paths de navegación.
const (
	PathHome    = "/"
	PathNewUser = "/user/new"
)

// TranslatorFactory crea traductores independientes para un idioma; "" usa el idioma por defecto.
type TranslatorFactory interface {
	NewTranslator(lang string) (Translator, error)
}
