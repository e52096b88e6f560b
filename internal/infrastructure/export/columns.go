// Package export implementa los exportadores de la plantilla (PDF, XLSX, XML).
package export

import (
	"strconv"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

// column columna exportada: clave de traducción del encabezado y valor por empleado.
type column struct {
	key   string
	value func(e entity.Employee) string
}

var columns = []column{
	{"id", func(e entity.Employee) string { return strconv.Itoa(e.ID) }},
	{"firstName", func(e entity.Employee) string { return e.FirstName }},
	{"lastName", func(e entity.Employee) string { return e.LastName }},
	{"dateOfEmployment", func(e entity.Employee) string { return e.DateOfEmployment }},
	{"dateOfBirth", func(e entity.Employee) string { return e.DateOfBirth }},
	{"phone", func(e entity.Employee) string { return e.PhoneNumber }},
	{"email", func(e entity.Employee) string { return e.EmailAddress }},
	{"department", func(e entity.Employee) string { return string(e.Department) }},
	{"position", func(e entity.Employee) string { return string(e.Position) }},
}

// headers encabezados traducidos. "id" no tiene traducción y queda en mayúsculas.
func headers(tr ports.Translator) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.key == "id" {
			out = append(out, "ID")
			continue
		}
		out = append(out, translate(tr, c.key))
	}
	return out
}

func translate(tr ports.Translator, key string) string {
	if tr == nil {
		return key
	}
	return tr.Translate(key)
}

func language(tr ports.Translator) string {
	if tr == nil {
		return ""
	}
	return tr.Language()
}
