package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Roster-api/internal/domain/repository"
	domroster "github.com/jhoicas/Roster-api/internal/domain/roster"
	"github.com/jhoicas/Roster-api/internal/infrastructure/persistence"
	"github.com/jhoicas/Roster-api/pkg/config"
	"github.com/jhoicas/Roster-api/pkg/logger"
)

type revisionOutput struct {
	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	Employees int       `json:"employees"`
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lista las últimas revisiones del snapshot (solo STORAGE_DRIVER=postgres)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "rosterctl", Out: os.Stderr})
			st, closeStorage, err := persistence.Open(cmd.Context(), cfg, log.Component("Storage"))
			if err != nil {
				return err
			}
			defer closeStorage()

			history, ok := st.(repository.SnapshotHistory)
			if !ok {
				return fmt.Errorf("el storage %q no guarda revisiones", cfg.Storage.Driver)
			}
			revs, err := history.Revisions(cmd.Context(), cfg.Storage.Key, limit)
			if err != nil {
				return err
			}

			out := make([]revisionOutput, 0, len(revs))
			for _, rev := range revs {
				var state domroster.State
				if err := json.Unmarshal(rev.Payload, &state); err != nil {
					log.Warn().Err(err).Int64("revision", rev.Revision).Msg("revisión ilegible")
				}
				out = append(out, revisionOutput{Revision: rev.Revision, CreatedAt: rev.CreatedAt, Employees: len(state.Employees)})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Cantidad de revisiones")
	return cmd
}
