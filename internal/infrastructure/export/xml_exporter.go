package export

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

var _ ports.Exporter = (*XMLExporter)(nil)

// XMLExporter plantilla como documento XML. Los nombres de elemento son las claves de los campos;
// los encabezados traducidos van en el atributo label de <columns>.
type XMLExporter struct{}

func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

func (x *XMLExporter) Format() string      { return "xml" }
func (x *XMLExporter) ContentType() string { return "application/xml" }

func (x *XMLExporter) Export(ctx context.Context, employees []entity.Employee, tr ports.Translator) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("employees")
	root.CreateAttr("count", strconv.Itoa(len(employees)))
	if lang := language(tr); lang != "" {
		root.CreateAttr("lang", lang)
	}

	cols := root.CreateElement("columns")
	for i, h := range headers(tr) {
		c := cols.CreateElement("column")
		c.CreateAttr("name", columns[i].key)
		c.CreateAttr("label", h)
	}

	for _, e := range employees {
		el := root.CreateElement("employee")
		el.CreateAttr("id", strconv.Itoa(e.ID))
		for _, c := range columns[1:] {
			el.CreateElement(c.key).SetText(c.value(e))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
