package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
)

// ContractHandle is a loaded artifact bound to an address and a provider.
type ContractHandle struct {
	Address  common.Address
	Artifact *models.Artifact

	provider Provider
}

// NewContractHandle binds artifact to address
func NewContractHandle(address common.Address, artifact *models.Artifact, provider Provider) *ContractHandle {
	return &ContractHandle{Address: address, Artifact: artifact, provider: provider}
}

// Call invokes a read-only method and returns its decoded outputs
func (c *ContractHandle) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	m, err := c.Artifact.Method(method)
	if err != nil {
		return nil, err
	}
	packed, err := m.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments for %s: %w", m.Sig, err)
	}
	data := append(append([]byte{}, m.ID...), packed...)

	out, err := c.provider.Read(ctx, c.Address, data)
	if err != nil {
		return nil, fmt.Errorf("call to %s on %s failed: %w", m.Name, c.Address.Hex(), err)
	}
	values, err := m.Outputs.Unpack(out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", m.Name, err)
	}
	return values, nil
}

// Populate encodes a call to method without sending it
func (c *ContractHandle) Populate(method string, args ...any) (domain.Call, error) {
	m, err := c.Artifact.Method(method)
	if err != nil {
		return domain.Call{}, err
	}
	return domain.NewCall(c.Address, m, args...)
}
