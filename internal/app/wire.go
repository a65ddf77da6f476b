//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/opctl/internal/adapters"
	"github.com/trebuchet-org/opctl/internal/commands"
	"github.com/trebuchet-org/opctl/internal/config"
	"github.com/trebuchet-org/opctl/internal/logging"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Commands
		commands.NewRegistry,
		ProvideDependencies,

		// App
		NewApp,
	)
	return nil, nil
}
