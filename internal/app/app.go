package app

import (
	"context"
	"time"

	"github.com/google/wire"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/rpsarena/internal/config"
	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/events/bus"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
	"github.com/zeusync/rpsarena/internal/core/systems"
	"github.com/zeusync/rpsarena/internal/server"
)

const shutdownTimeout = 5 * time.Second

// ProviderSet builds an App from a config and a logger.
var ProviderSet = wire.NewSet(ProvideBus, ProvideWorld, ProvideServer, ProvideRunner, New)

// App is a fully wired arena process.
type App struct {
	Config *config.Config
	Logger log.Log
	Bus    bus.EventBus
	World  *arena.World
	Runner *systems.Runner
	// Server is nil when the snapshot server is disabled.
	Server *server.Server

	combatLog bus.Subscription
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

// ProvideWorld places the initial population. A region that cannot fit its
// population fails here, before anything runs.
func ProvideWorld(cfg *config.Config, b bus.EventBus, logger log.Log) (*arena.World, error) {
	return arena.Setup(cfg.Arena(),
		arena.WithLogger(logger.Named("arena")),
		arena.WithCombatHandler(systems.CombatPublisher(b, logger)),
	)
}

func ProvideServer(cfg *config.Config, logger log.Log) *server.Server {
	if !cfg.Server.Enabled {
		return nil
	}
	return server.New(server.Config{
		ListenAddr:   cfg.Server.ListenAddr,
		SendBuffer:   cfg.Server.SendBuffer,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, logger.Named("server"))
}

func ProvideRunner(cfg *config.Config, world *arena.World, b bus.EventBus, srv *server.Server, logger log.Log) *systems.Runner {
	opts := []systems.RunnerOption{
		systems.WithBus(b),
		systems.WithLogger(logger.Named("runner")),
	}
	if srv != nil {
		opts = append(opts, systems.WithRenderer(srv))
	}
	return systems.NewRunner(world, systems.NewTicker(cfg.TickInterval), opts...)
}

func New(cfg *config.Config, logger log.Log, b bus.EventBus, world *arena.World, runner *systems.Runner, srv *server.Server) (*App, error) {
	sub, err := systems.LogCombats(b, logger.Named("combat"))
	if err != nil {
		return nil, err
	}
	return &App{
		Config:    cfg,
		Logger:    logger,
		Bus:       b,
		World:     world,
		Runner:    runner,
		Server:    srv,
		combatLog: sub,
	}, nil
}

// Run starts the snapshot server and the simulation and blocks until ctx is done
// or either of them fails.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.Bus.Unsubscribe(a.combatLog) }()

	g, ctx := errgroup.WithContext(ctx)
	if a.Server != nil {
		if err := a.Server.Start(ctx); err != nil {
			return err
		}
		g.Go(func() error {
			<-ctx.Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return a.Server.Stop(stopCtx)
		})
	}
	g.Go(func() error {
		return a.Runner.Run(ctx)
	})

	a.Logger.Info("arena started",
		log.Int("agents", a.World.Len()),
		log.Duration("tick_interval", a.Config.TickInterval),
	)
	return g.Wait()
}
