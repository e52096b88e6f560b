package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/infrastructure/persistence"
	"github.com/jhoicas/Roster-api/pkg/config"
	"github.com/jhoicas/Roster-api/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Herramientas sobre el snapshot de la plantilla de empleados",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newSeedCmd(), newShowCmd(), newExportCmd(), newImportCmd(), newHistoryCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env store cargado desde el storage configurado, con el puente ya suscrito.
type env struct {
	cfg    *config.Config
	log    *logger.Logger
	bridge *approster.Bridge
	store  *approster.Store
	close  func()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "rosterctl",
		Out:     os.Stderr,
	})
	snapshots, closeStorage, err := persistence.Open(ctx, cfg, log.Component("Storage"))
	if err != nil {
		return nil, err
	}
	bridge := approster.NewBridge(snapshots, cfg.Storage.Key, log.Zerolog())
	store := approster.NewStore(bridge.Load(ctx), cfg.Storage.SeedCount, log.Component("RecordStore"))
	detach := bridge.Attach(store)
	return &env{
		cfg:    cfg,
		log:    log,
		bridge: bridge,
		store:  store,
		close: func() {
			detach()
			closeStorage()
		},
	}, nil
}
