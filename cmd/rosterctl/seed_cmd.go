package main

import (
	"github.com/spf13/cobra"

	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
)

type seedOutput struct {
	Command   string `json:"command"`
	Employees int    `json:"employees"`
	Storage   string `json:"storage"`
}

func newSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reemplaza el snapshot por count empleados de ejemplo",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.bridge.Save(cmd.Context(), domroster.DefaultState(count)); err != nil {
				return err
			}
			e.log.Info().Int("employees", count).Msg("snapshot regenerado")
			return writeJSON(cmd.OutOrStdout(), seedOutput{Command: "seed", Employees: count, Storage: e.cfg.Storage.Driver})
		},
	}

	cmd.Flags().IntVar(&count, "count", domroster.DefaultSeedCount, "Cantidad de empleados a generar")
	return cmd
}
