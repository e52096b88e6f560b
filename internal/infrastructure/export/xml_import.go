package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

var xmlSetters = map[string]func(e *entity.Employee, v string){
	"firstName":        func(e *entity.Employee, v string) { e.FirstName = v },
	"lastName":         func(e *entity.Employee, v string) { e.LastName = v },
	"dateOfEmployment": func(e *entity.Employee, v string) { e.DateOfEmployment = v },
	"dateOfBirth":      func(e *entity.Employee, v string) { e.DateOfBirth = v },
	"phone":            func(e *entity.Employee, v string) { e.PhoneNumber = v },
	"email":            func(e *entity.Employee, v string) { e.EmailAddress = v },
	"department":       func(e *entity.Employee, v string) { e.Department = entity.Department(v) },
	"position":         func(e *entity.Employee, v string) { e.Position = entity.Position(v) },
}

// ParseXML lee un documento con el formato de XMLExporter. El ID de cada <employee> se conserva
// como referencia; quien importe decide si lo respeta. Elementos desconocidos se ignoran.
// La codificación declarada en el prólogo (windows-1254, iso-8859-9, ...) se decodifica a UTF-8.
func ParseXML(r io.Reader) ([]entity.Employee, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: xml: %v", domain.ErrInvalidInput, err)
	}
	root := doc.SelectElement("employees")
	if root == nil {
		return nil, fmt.Errorf("%w: xml: falta el elemento <employees>", domain.ErrInvalidInput)
	}

	nodes := root.SelectElements("employee")
	out := make([]entity.Employee, 0, len(nodes))
	for i, el := range nodes {
		var e entity.Employee
		if raw := el.SelectAttrValue("id", ""); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: xml: employee %d: id %q", domain.ErrInvalidInput, i+1, raw)
			}
			e.ID = id
		}
		for _, child := range el.ChildElements() {
			if set, ok := xmlSetters[child.Tag]; ok {
				set(&e, strings.TrimSpace(child.Text()))
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("codificación no soportada %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
