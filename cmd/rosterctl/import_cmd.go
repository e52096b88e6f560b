package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Roster-api/internal/domain/validation"
	"github.com/jhoicas/Roster-api/internal/infrastructure/export"
)

type importOutput struct {
	Command  string         `json:"command"`
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Invalid  map[int]string `json:"invalid,omitempty"`
}

// Codificaciones de entrada aceptadas además de UTF-8.
var encodings = map[string]encoding.Encoding{
	"windows-1254": charmap.Windows1254,
	"iso-8859-9":   charmap.ISO8859_9,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

func newImportCmd() *cobra.Command {
	var (
		file    string
		charset string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Agrega los empleados de un XML exportado (se asignan IDs nuevos)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			var r io.Reader = f
			if cs := strings.ToLower(charset); cs != "" && cs != "utf-8" {
				enc, ok := encodings[cs]
				if !ok {
					return fmt.Errorf("codificación no soportada %q", charset)
				}
				r = transform.NewReader(f, enc.NewDecoder())
			}
			employees, err := export.ParseXML(r)
			if err != nil {
				return err
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			out := importOutput{Command: "import"}
			for i, emp := range employees {
				if errs := validation.ValidateEmployee(emp); errs != nil {
					if out.Invalid == nil {
						out.Invalid = make(map[int]string)
					}
					out.Invalid[i+1] = errs.Error()
					out.Skipped++
					continue
				}
				if !dryRun {
					e.store.Add(emp)
				}
				out.Imported++
			}
			e.log.Info().Int("imported", out.Imported).Int("skipped", out.Skipped).Bool("dry_run", dryRun).Msg("importación terminada")
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "XML a importar (requerido)")
	cmd.Flags().StringVar(&charset, "encoding", "utf-8", "Codificación de archivos sin declaración en el prólogo: utf-8, windows-1254, iso-8859-9, windows-1252 o iso-8859-1")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Solo valida, no escribe")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
