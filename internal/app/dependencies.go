package app

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/opctl/internal/adapters/blockchain"
	"github.com/trebuchet-org/opctl/internal/adapters/wallet"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// ProvideDependencies assembles the bundle every command builder receives
func ProvideDependencies(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	sink usecase.ProgressSink,
	prompt usecase.Prompter,
	loader usecase.ContractLoader,
	pool *blockchain.Pool,
) usecase.Dependencies {
	return usecase.Dependencies{
		Logger:     log,
		Progress:   sink,
		Prompt:     prompt,
		Loader:     loader,
		Reapproval: cfg.Reapproval,
		MakeEnv: func(usecase.Flags) (usecase.Env, error) {
			return envFromConfig(cfg), nil
		},
		MakeProvider: func(ctx context.Context, env usecase.Env) (usecase.Provider, error) {
			provider, err := pool.Get(ctx, env.NodeURL, env.ChainID)
			if err != nil {
				return nil, err
			}
			return provider, nil
		},
		MakeWallet: func(usecase.Env) (usecase.Wallet, error) {
			w, err := wallet.New(cfg)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}

func envFromConfig(cfg *config.RuntimeConfig) usecase.Env {
	env := usecase.Env{
		Account:  cfg.Account,
		Multisig: cfg.Multisig,
	}
	if cfg.Network != nil {
		env.Network = cfg.Network.Name
		env.NodeURL = cfg.Network.NodeURL
		env.ChainID = cfg.Network.ChainID
	}
	return env
}
