package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/gametools/internal/config"
	"github.com/zeusync/gametools/internal/observability/log"
	"github.com/zeusync/gametools/pkg/scene"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideManager,
	NewApp,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

// App bundles the long-lived objects the CLI works with.
type App struct {
	Logger *log.Logger
	Scenes *scene.Manager
}

func NewApp(logger *log.Logger, scenes *scene.Manager) *App {
	return &App{Logger: logger, Scenes: scenes}
}

func ProvideLogger(cfg config.Config) *log.Logger {
	return log.New(cfg.LogLevel(), cfg.Log.Encoding)
}

func ProvideManager(logger log.Log) *scene.Manager {
	return scene.NewManager(scene.WithLogger(logger))
}
