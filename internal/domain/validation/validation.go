// Package validation reglas de validación por campo del formulario de empleado.
// Las reglas devuelven la clave de traducción del mensaje de error, o "" si el valor es válido.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

// Field campo editable del formulario.
type Field string

const (
	FirstName        Field = "firstName"
	LastName         Field = "lastName"
	DateOfEmployment Field = "dateOfEmployment"
	DateOfBirth      Field = "dateOfBirth"
	PhoneNumber      Field = "phoneNumber"
	EmailAddress     Field = "emailAddress"
	Department       Field = "department"
	Position         Field = "position"
)

// Fields campos requeridos, en el orden del formulario.
var Fields = []Field{
	FirstName, LastName, DateOfEmployment, DateOfBirth,
	PhoneNumber, EmailAddress, Department, Position,
}

// ParseField valida el nombre de un campo.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, s)
}

// IsDate indica si el campo se edita con selector de fecha.
func (f Field) IsDate() bool { return f == DateOfEmployment || f == DateOfBirth }

// Claves de mensajes de error.
const (
	MsgFirstNameRequired  = "firstNameRequired"
	MsgLastNameRequired   = "lastNameRequired"
	MsgValidEmailRequired = "validEmailRequired"
	MsgValidPhoneRequired = "validPhoneRequired"
	MsgFieldRequired      = "fieldRequired"
	MsgInvalidOption      = "invalidOption"
)

const (
	minNameLength  = 2
	minPhoneLength = 7

	// StorageDateLayout formato con el que se guardan las fechas.
	StorageDateLayout = "02/01/2006"
	// InputDateLayout formato que emite el selector de fecha.
	InputDateLayout = "2006-01-02"
)

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex       = regexp.MustCompile(`^[+]?[()\s\d]+$`)
	phoneDigitRegex  = regexp.MustCompile(`\d`)
	phoneStripRegex  = regexp.MustCompile(`[\s()+]`)
	phoneFilterRegex = regexp.MustCompile(`[^+\s()0-9]`)
)

// Validate aplica la regla del campo al valor y devuelve la clave del mensaje de error.
func Validate(field Field, value string) string {
	switch field {
	case FirstName:
		if !validName(value) {
			return MsgFirstNameRequired
		}
	case LastName:
		if !validName(value) {
			return MsgLastNameRequired
		}
	case EmailAddress:
		if !ValidEmail(value) {
			return MsgValidEmailRequired
		}
	case PhoneNumber:
		if !ValidPhone(value) {
			return MsgValidPhoneRequired
		}
	case Department:
		if strings.TrimSpace(value) == "" {
			return MsgFieldRequired
		}
		if _, ok := entity.ParseDepartment(value); !ok {
			return MsgInvalidOption
		}
	case Position:
		if strings.TrimSpace(value) == "" {
			return MsgFieldRequired
		}
		if _, ok := entity.ParsePosition(value); !ok {
			return MsgInvalidOption
		}
	default:
		if strings.TrimSpace(value) == "" {
			return MsgFieldRequired
		}
	}
	return ""
}

func validName(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= minNameLength
}

// ValidEmail forma básica local@dominio.tld.
func ValidEmail(value string) bool {
	return value != "" && emailRegex.MatchString(value)
}

// SanitizePhone elimina todo carácter distinto de +, (, ), espacios y dígitos.
func SanitizePhone(raw string) string {
	return phoneFilterRegex.ReplaceAllString(raw, "")
}

// ValidPhone heurística de longitud mínima, no un validador real de números:
// caracteres permitidos, al menos un dígito y 7 caracteres tras quitar espacios, paréntesis y +.
func ValidPhone(value string) bool {
	if value == "" || !phoneRegex.MatchString(value) || !phoneDigitRegex.MatchString(value) {
		return false
	}
	return len(phoneStripRegex.ReplaceAllString(value, "")) >= minPhoneLength
}

// FromDateInput convierte YYYY-MM-DD en DD/MM/YYYY. Vacío o no parseable devuelve "".
func FromDateInput(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	t, err := time.Parse(InputDateLayout, value)
	if err != nil {
		return ""
	}
	return t.Format(StorageDateLayout)
}

// ToDateInput convierte DD/MM/YYYY (día y mes pueden venir sin cero) en YYYY-MM-DD.
func ToDateInput(value string) string {
	if value == "" || !strings.Contains(value, "/") {
		return ""
	}
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], padTwo(parts[1]), padTwo(parts[0]))
}

func padTwo(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

// Errors claves de mensaje por campo inválido. Envuelve domain.ErrInvalidInput.
type Errors map[Field]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range Fields {
		if msg, ok := e[f]; ok {
			parts = append(parts, string(f)+": "+msg)
		}
	}
	return "campos inválidos: " + strings.Join(parts, ", ")
}

func (e Errors) Unwrap() error { return domain.ErrInvalidInput }

// ValidateEmployee aplica todas las reglas; nil si el empleado es válido.
func ValidateEmployee(e entity.Employee) Errors {
	values := map[Field]string{
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		PhoneNumber:      e.PhoneNumber,
		EmailAddress:     e.EmailAddress,
		Department:       string(e.Department),
		Position:         string(e.Position),
	}
	var errs Errors
	for _, f := range Fields {
		if msg := Validate(f, values[f]); msg != "" {
			if errs == nil {
				errs = Errors{}
			}
			errs[f] = msg
		}
	}
	return errs
}
