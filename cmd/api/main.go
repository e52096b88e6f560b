// @title        Roster API
// @version      1.0
// @description  Gestión de la plantilla de empleados: REST, vistas con sesión y exportación.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	_ "github.com/jhoicas/Roster-api/docs"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/application/session"
	"github.com/jhoicas/Roster-api/internal/application/usecase"
	"github.com/jhoicas/Roster-api/internal/infrastructure/export"
	"github.com/jhoicas/Roster-api/internal/infrastructure/i18n"
	"github.com/jhoicas/Roster-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Roster-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Roster-api/internal/infrastructure/navigation"
	"github.com/jhoicas/Roster-api/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/Roster-api/internal/interfaces/http"
	"github.com/jhoicas/Roster-api/pkg/config"
	"github.com/jhoicas/Roster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshots, closeStorage, err := persistence.Open(ctx, cfg, log.Component("Storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir storage")
	}
	defer closeStorage()

	// Record Store + puente de persistencia
	bridge := approster.NewBridge(snapshots, cfg.Storage.Key, log.Zerolog())
	bridge.OnWrite = metrics.SnapshotWritten
	store := approster.NewStore(bridge.Load(ctx), cfg.Storage.SeedCount, log.Component("RecordStore"))
	defer bridge.Attach(store)()
	defer metrics.ObserveStore(store)()

	catalog, err := i18n.NewCatalog(cfg.App.DefaultLanguage)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar traducciones")
	}

	// Feed de cambios: Kafka si hay brokers, si no se descarta
	var publisher ports.ChangePublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled() {
		sp, err := kafka.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatal().Err(err).Strs("brokers", cfg.Kafka.Brokers).Msg("conexión a Kafka")
		}
		producer := kafka.NewChangeProducer(sp, kafka.Config{Topic: cfg.Kafka.Topic, Source: cfg.App.Name}, log.Zerolog())
		defer producer.Close()
		publisher = producer
	}
	feed := approster.NewChangeFeed(publisher, 0, log.Zerolog())
	feed.OnPublish = metrics.ChangePublished
	defer feed.Attach(store)()

	sessions := session.NewManager(store, session.Options{
		TTL:           cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
		NewTranslator: func(lang string) ports.Translator { return catalog.NewLocalizer(lang) },
		NewNavigator:  func() session.Navigator { return navigation.NewHistory(ports.PathHome) },
		OnCount:       metrics.SessionsActive,
	}, log.Zerolog())

	employeeUC := usecase.NewEmployeeUseCase(store)
	exportUC := usecase.NewExportUseCase(store, catalog, log.Zerolog(),
		export.NewPDFExporter(cfg.App.Name),
		export.NewXLSXExporter(),
		export.NewXMLExporter(),
	)
	exportUC.OnExport = metrics.ObserveExport

	sessionSecret := cfg.Session.Secret
	if sessionSecret == "" {
		sessionSecret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío: se generó uno temporal, las sesiones no sobreviven al reinicio")
	}

	appCfg := httpRouter.AppConfig{Name: cfg.App.Name, DocsPath: cfg.Docs.Path, Metrics: true}
	if cfg.Docs.Enabled {
		appCfg.DocsFile = "./docs/swagger.json"
	}
	app := httpRouter.NewApp(appCfg, httpRouter.RouterDeps{
		EmployeeUC:    employeeUC,
		ExportUC:      exportUC,
		Sessions:      sessions,
		Languages:     catalog,
		SessionTTL:    cfg.Session.TTL,
		SessionSecret: sessionSecret,
		Issuer:        cfg.App.Name,
		Log:           log.Component("HTTP"),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sessions.Run(gctx) })
	g.Go(func() error { return feed.Run(gctx) })
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del servidor")
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}
