package export

// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título traducido          │  total + fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Apellido | Fechas | Tel | Email | ... │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de registros                              │
//	└─────────────────────────────────────────────────────────────┘

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ancho de cada columna en la grilla de 12 de maroto; mismo orden que columns.
var pdfColumnSizes = []int{1, 1, 1, 1, 1, 2, 3, 1, 1}

var _ ports.Exporter = (*PDFExporter)(nil)

// PDFExporter plantilla en PDF con Maroto v2.
type PDFExporter struct {
	author string
}

// NewPDFExporter construye el exportador; author va en los metadatos del documento.
func NewPDFExporter(author string) *PDFExporter { return &PDFExporter{author: author} }

func (p *PDFExporter) Format() string      { return "pdf" }
func (p *PDFExporter) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (p *PDFExporter) Export(ctx context.Context, employees []entity.Employee, tr ports.Translator) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title := translate(tr, "employeeList")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle(title, true).
		WithAuthor(p.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(pdfHeaderRow(title, translate(tr, "employees"), len(employees)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pdfTableHeaderRow(headers(tr)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(employees) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(translate(tr, "noEmployees"), props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range pdfDetailRows(employees) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func pdfHeaderRow(title, employeesLabel string, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%s: %d", employeesLabel, total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func pdfTableHeaderRow(labels []string) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(pdfColumnSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1, Left: 0.5, Right: 0.5,
		})))
	}
	return row.New(8).Add(cols...)
}

func pdfDetailRows(employees []entity.Employee) []core.Row {
	rows := make([]core.Row, 0, len(employees))
	for _, e := range employees {
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			cols = append(cols, col.New(pdfColumnSizes[i]).Add(text.New(c.value(e), props.Text{
				Size: 7, Top: 1, Left: 0.5, Right: 0.5,
			})))
		}
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}
