package export_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/roster"
	"github.com/jhoicas/Roster-api/internal/infrastructure/export"
	"github.com/jhoicas/Roster-api/internal/infrastructure/i18n"
)

func TestXMLExporter(t *testing.T) {
	employees := roster.DefaultState(3).Employees
	tr := i18n.MustCatalog("en").NewLocalizer("tr")

	out, err := export.NewXMLExporter().Export(context.Background(), employees, tr)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("employees")
	require.NotNil(t, root)
	assert.Equal(t, "3", root.SelectAttrValue("count", ""))
	assert.Equal(t, "tr", root.SelectAttrValue("lang", ""))

	items := root.SelectElements("employee")
	require.Len(t, items, 3)
	assert.Equal(t, "2", items[1].SelectAttrValue("id", ""))
	assert.Equal(t, "Alihan", items[1].SelectElement("firstName").Text())
	assert.Equal(t, "Tech", items[1].SelectElement("department").Text())
}

func TestXLSXExporter(t *testing.T) {
	employees := roster.DefaultState(2).Employees
	tr := i18n.MustCatalog("en").NewLocalizer("en")

	out, err := export.NewXLSXExporter().Export(context.Background(), employees, tr)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "First Name", "Last Name", "Date of Employment", "Date of Birth", "Phone", "Email", "Department", "Position"}, rows[0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "alihan.coskun@hotmail.com", rows[2][6])
}

func TestPDFExporter(t *testing.T) {
	employees := roster.DefaultState(12).Employees

	out, err := export.NewPDFExporter("roster-api").Export(context.Background(), employees, i18n.MustCatalog("en").NewLocalizer("en"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExporter_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := export.NewXMLExporter().Export(ctx, nil, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseXML_LeeLoExportado(t *testing.T) {
	employees := roster.DefaultState(4).Employees
	out, err := export.NewXMLExporter().Export(context.Background(), employees, nil)
	require.NoError(t, err)

	got, err := export.ParseXML(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, employees, got)
}

func TestParseXML_DocumentoInvalido(t *testing.T) {
	_, err := export.ParseXML(bytes.NewReader([]byte(`<staff><employee/></staff>`)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = export.ParseXML(bytes.NewReader([]byte(`<employees><employee id="x"/></employees>`)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseXML_DecodificaWindows1254(t *testing.T) {
	// "Çağrı" en windows-1254: Ç=0xC7 ğ=0xF0 ı=0xFD
	raw := []byte("<?xml version=\"1.0\" encoding=\"windows-1254\"?>\n<employees><employee id=\"1\"><firstName>\xc7a\xf0r\xfd</firstName></employee></employees>")

	got, err := export.ParseXML(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Çağrı", got[0].FirstName)
}
