package app

import (
	"log/slog"

	"github.com/trebuchet-org/opctl/internal/adapters/interactive"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// App is the main application container
type App struct {
	Config   *config.RuntimeConfig
	Log      *slog.Logger
	Registry *usecase.Registry
	Deps     usecase.Dependencies
	Selector *interactive.CommandSelector
}

// NewApp creates a new application instance
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	registry *usecase.Registry,
	deps usecase.Dependencies,
	selector *interactive.CommandSelector,
) *App {
	return &App{
		Config:   cfg,
		Log:      log,
		Registry: registry,
		Deps:     deps,
		Selector: selector,
	}
}

// Factory binds the command registered under id to the application dependencies
func (a *App) Factory(id string) (usecase.CommandFactory, error) {
	builder, err := a.Registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return builder.Build(a.Deps), nil
}
