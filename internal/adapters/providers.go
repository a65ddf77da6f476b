package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/opctl/internal/adapters/blockchain"
	"github.com/trebuchet-org/opctl/internal/adapters/contracts"
	"github.com/trebuchet-org/opctl/internal/adapters/interactive"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// ProvidePoolOptions derives node connection settings from RuntimeConfig
func ProvidePoolOptions(cfg *config.RuntimeConfig) blockchain.Options {
	return blockchain.Options{
		InclusionTimeout: cfg.InclusionTimeout,
		PollInterval:     cfg.PollInterval,
		ReadRetryDelays:  cfg.ReadRetryDelays,
	}
}

// BlockchainSet provides node access
var BlockchainSet = wire.NewSet(
	ProvidePoolOptions,
	blockchain.NewPool,
)

// ContractsSet provides artifact loading
var ContractsSet = wire.NewSet(
	contracts.NewArtifactLoader,
	wire.Bind(new(usecase.ContractLoader), new(*contracts.ArtifactLoader)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompter,
	wire.Bind(new(usecase.Prompter), new(*interactive.Prompter)),
	interactive.NewCommandSelector,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	ContractsSet,
	InteractiveSet,
)
