package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Roster-api/internal/application/usecase"
	"github.com/jhoicas/Roster-api/internal/infrastructure/export"
	"github.com/jhoicas/Roster-api/internal/infrastructure/i18n"
)

type exportOutput struct {
	Command string `json:"command"`
	File    string `json:"file"`
	Bytes   int    `json:"bytes"`
}

func newExportCmd() *cobra.Command {
	var (
		format string
		lang   string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta la plantilla a PDF, XLSX o XML",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			catalog, err := i18n.NewCatalog(e.cfg.App.DefaultLanguage)
			if err != nil {
				return err
			}
			uc := usecase.NewExportUseCase(e.store, catalog, e.log.Zerolog(),
				export.NewPDFExporter(e.cfg.App.Name),
				export.NewXLSXExporter(),
				export.NewXMLExporter(),
			)
			res, err := uc.Export(cmd.Context(), format, lang)
			if err != nil {
				return err
			}
			if out == "" {
				out = res.Filename
			}
			if err := os.WriteFile(out, res.Content, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			return writeJSON(cmd.OutOrStdout(), exportOutput{Command: "export", File: out, Bytes: len(res.Content)})
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "Formato: pdf, xlsx o xml")
	cmd.Flags().StringVar(&lang, "lang", "", "Idioma de los encabezados (en, tr)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Archivo de salida (por defecto employees-YYYYMMDD.<formato>)")
	return cmd
}
