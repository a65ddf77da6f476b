// Package commands assembles every operator command into a registry.
package commands

import (
	"github.com/trebuchet-org/opctl/internal/commands/example"
	"github.com/trebuchet-org/opctl/internal/commands/multisig"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// Builders returns every command, multisig-wrapped variants included
func Builders() []usecase.CommandBuilder {
	direct := []usecase.CommandBuilder{
		multisig.Deploy,
		multisig.Inspect,
		example.Deploy,
		example.Inspect,
	}
	wrappable := []usecase.CommandBuilder{
		multisig.SetThreshold,
		multisig.SetSigners,
		example.IncreaseBalance,
		example.TransferOwnership,
		example.AcceptOwnership,
	}

	builders := append(direct, wrappable...)
	for _, b := range wrappable {
		builders = append(builders, usecase.WrapCommand(b))
	}
	return builders
}

// NewRegistry registers every command
func NewRegistry() (*usecase.Registry, error) {
	registry := usecase.NewRegistry()
	if err := registry.Register(Builders()...); err != nil {
		return nil, err
	}
	return registry, nil
}
