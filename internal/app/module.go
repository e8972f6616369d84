package app

import (
	"context"
	"time"

	"github.com/hugup/hugup/internal/bus"
	"github.com/hugup/hugup/internal/config"
	"github.com/hugup/hugup/internal/lock"
	"github.com/hugup/hugup/internal/logging"
	"github.com/hugup/hugup/internal/pipeline"
	"github.com/hugup/hugup/internal/session"
	"github.com/hugup/hugup/internal/store"
	"github.com/hugup/hugup/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
}

// Module returns the fx module for the app, composing config, logging, the
// seeded store, the message pipeline, app state and the terminal UI.
func Module(p Params) fx.Option {
	return fx.Module("app",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideBus,
			provideLock,
			provideStore,
			providePipeline,
			provideState,
			provideUI,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	return logging.New(session.LogPath(p.SessionName), p.SessionName)
}

func provideConfig(logger *zap.Logger) *config.Config {
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		logger.Info("no usable config file, using defaults", zap.Error(err))
		return config.Default()
	}
	def := config.Default()
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.DeliveredDelayMs <= 0 {
		cfg.DeliveredDelayMs = def.DeliveredDelayMs
	}
	if cfg.ReadDelayMs <= 0 {
		cfg.ReadDelayMs = def.ReadDelayMs
	}
	return cfg
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideStore(logger *zap.Logger) *store.Store {
	st := store.New(store.Seed())
	logger.Info("store seeded",
		zap.Int("chats", len(st.Chats())),
		zap.Int("contacts", len(st.Contacts())),
		zap.Int("stories", len(st.Stories())))
	return st
}

func providePipeline(st *store.Store, b *bus.Bus, cfg *config.Config, logger *zap.Logger) *pipeline.Pipeline {
	return pipeline.New(st, b, logger,
		time.Duration(cfg.DeliveredDelayMs)*time.Millisecond,
		time.Duration(cfg.ReadDelayMs)*time.Millisecond)
}

func provideState(p Params, st *store.Store, pl *pipeline.Pipeline, b *bus.Bus, cfg *config.Config, logger *zap.Logger) *State {
	return NewState(StateParams{SessionName: p.SessionName}, st, pl, b, cfg, logger)
}

func provideUI(s *State, b *bus.Bus, logger *zap.Logger) *tui.App {
	return tui.New(s, b, logger)
}

func registerLifecycle(lc fx.Lifecycle, sh fx.Shutdowner, ui *tui.App, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The UI owns the foreground; shut the app down when it exits.
			go func() {
				if err := ui.Run(); err != nil {
					logger.Error("ui error", zap.Error(err))
				}
				_ = sh.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			ui.Stop()
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("session closed")
			_ = logger.Sync()
			return nil
		},
	})
}
