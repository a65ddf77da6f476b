package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
)

// known maps contract names to their embedded metadata
var known = map[string]*bind.MetaData{
	MultisigMetaData.ID: &MultisigMetaData,
	ExampleMetaData.ID:  &ExampleMetaData,
}

// MetaDataFor returns the embedded metadata of a known contract
func MetaDataFor(name string) (*bind.MetaData, bool) {
	md, ok := known[name]
	return md, ok
}

// GetEventID returns the event signature hash for a given event name
// This is a helper method that works alongside the generated ABI bindings
func (multisig *Multisig) GetEventID(eventName string) (common.Hash, error) {
	event, exists := multisig.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// GetEventID returns the event signature hash for a given event name
func (example *Example) GetEventID(eventName string) (common.Hash, error) {
	event, exists := example.abi.Events[eventName]
	if !exists {
		return common.Hash{}, fmt.Errorf("event %s not found", eventName)
	}
	return event.ID, nil
}

// FindTransactionSubmitted returns the TransactionSubmitted events emitted by
// the multisig at address in logs.
func (multisig *Multisig) FindTransactionSubmitted(logs []*types.Log, address common.Address) []*MultisigTransactionSubmitted {
	id := multisig.abi.Events[MultisigTransactionSubmittedEventName].ID
	return lo.FilterMap(logs, func(log *types.Log, _ int) (*MultisigTransactionSubmitted, bool) {
		if log == nil || log.Address != address || len(log.Topics) == 0 || log.Topics[0] != id {
			return nil, false
		}
		event, err := multisig.UnpackTransactionSubmittedEvent(log)
		if err != nil {
			return nil, false
		}
		return event, true
	})
}

func (e *MultisigTransactionSubmitted) String() string {
	return fmt.Sprintf(
		"%s: nonce=%s signer=%s to=%s",
		e.ContractEventName(),
		e.Nonce.String(),
		e.Signer.String(),
		e.To.String(),
	)
}

func (e *MultisigTransactionConfirmed) String() string {
	return fmt.Sprintf(
		"%s: nonce=%s signer=%s",
		e.ContractEventName(),
		e.Nonce.String(),
		e.Signer.String(),
	)
}

func (e *MultisigTransactionExecuted) String() string {
	return fmt.Sprintf(
		"%s: nonce=%s executor=%s",
		e.ContractEventName(),
		e.Nonce.String(),
		e.Executor.String(),
	)
}

func (e *MultisigSignersSet) String() string {
	return fmt.Sprintf(
		"%s: signers=%v",
		e.ContractEventName(),
		lo.Map(e.Signers, func(s common.Address, _ int) string {
			return s.Hex()
		}),
	)
}
