package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain"
)

// ExportResult documento generado listo para descargar.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportUseCase genera la plantilla completa en el formato pedido.
type ExportUseCase struct {
	store       *approster.Store
	translators ports.TranslatorFactory
	exporters   map[string]ports.Exporter
	log         zerolog.Logger

	// OnExport se invoca tras cada exportación exitosa (métricas).
	OnExport func(format string, elapsed time.Duration)
}

// NewExportUseCase registra los exportadores por formato.
func NewExportUseCase(store *approster.Store, translators ports.TranslatorFactory, log zerolog.Logger, exporters ...ports.Exporter) *ExportUseCase {
	byFormat := make(map[string]ports.Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ExportUseCase{
		store:       store,
		translators: translators,
		exporters:   byFormat,
		log:         log.With().Str("component", "Export").Logger(),
	}
}

// Formats formatos registrados.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	return out
}

// Export genera el documento con los encabezados en lang.
func (uc *ExportUseCase) Export(ctx context.Context, format, lang string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	tr, err := uc.translators.NewTranslator(lang)
	if err != nil {
		return nil, err
	}

	employees := uc.store.Employees()
	start := time.Now()
	content, err := exporter.Export(ctx, employees, tr)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	elapsed := time.Since(start)
	if uc.OnExport != nil {
		uc.OnExport(format, elapsed)
	}
	uc.log.Info().
		Str("format", format).
		Str("lang", tr.Language()).
		Int("employees", len(employees)).
		Int("bytes", len(content)).
		Dur("elapsed", elapsed).
		Msg("plantilla exportada")

	return &ExportResult{
		Content:     content,
		ContentType: exporter.ContentType(),
		Filename:    fmt.Sprintf("employees-%s.%s", time.Now().Format("20060102"), format),
	}, nil
}
