package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Roster-api/internal/application/usecase"
)

func newShowCmd() *cobra.Command {
	var (
		page int
		view string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Muestra una página de la plantilla en JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			out, err := usecase.NewEmployeeUseCase(e.store).List(page, view)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Página")
	cmd.Flags().StringVar(&view, "view", "table", "grid (4 por página) o table (9)")
	return cmd
}
