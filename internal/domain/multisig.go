package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Action is the next step a multisig proposal needs
type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionExecute Action = "EXECUTE"
	ActionNone    Action = "NONE"
)

// ProposalStage is the lifecycle position of a proposal
type ProposalStage string

const (
	StageNoProposal ProposalStage = "NO_PROPOSAL"
	StageProposed   ProposalStage = "PROPOSED"
	StageApproving  ProposalStage = "APPROVING"
	StageExecutable ProposalStage = "EXECUTABLE"
	StageExecuted   ProposalStage = "EXECUTED"
)

// MultisigInfo is the signer set and threshold of a multisig contract
type MultisigInfo struct {
	Address   common.Address   `json:"address"`
	Threshold uint64           `json:"threshold"`
	Signers   []common.Address `json:"signers"`
}

// Proposal is a call stored in the multisig awaiting approvals
type Proposal struct {
	ID            uint64 `json:"id"`
	Confirmations uint64 `json:"confirmations"`
	Executed      bool   `json:"executed"`
	Data          Call   `json:"data"`
	NextAction    Action `json:"nextAction"`
}

// MultisigState is a point-in-time read of a multisig and, optionally, one proposal.
type MultisigState struct {
	Multisig MultisigInfo `json:"multisig"`
	Proposal *Proposal    `json:"proposal,omitempty"`
}

// ResolveAction decides what a proposal needs next.
func ResolveAction(confirmations, threshold uint64, executed bool) Action {
	if executed {
		return ActionNone
	}
	if confirmations >= threshold {
		return ActionExecute
	}
	return ActionApprove
}

// ApprovalsLeft returns how many confirmations the proposal still needs
func (s *MultisigState) ApprovalsLeft() uint64 {
	if s.Proposal == nil || s.Proposal.Confirmations >= s.Multisig.Threshold {
		return 0
	}
	return s.Multisig.Threshold - s.Proposal.Confirmations
}

// Stage derives the proposal lifecycle stage for display
func (s *MultisigState) Stage() ProposalStage {
	p := s.Proposal
	switch {
	case p == nil:
		return StageNoProposal
	case p.Executed:
		return StageExecuted
	case p.Confirmations >= s.Multisig.Threshold:
		return StageExecutable
	case p.Confirmations <= 1:
		return StageProposed
	default:
		return StageApproving
	}
}

// IsSigner reports whether addr belongs to the signer set
func (m MultisigInfo) IsSigner(addr common.Address) bool {
	for _, s := range m.Signers {
		if s == addr {
			return true
		}
	}
	return false
}

// ValidateThreshold checks that a threshold can be met by the given number of signers
func ValidateThreshold(threshold uint64, signers int) error {
	if threshold == 0 {
		return fmt.Errorf("%w: threshold must be at least 1", ErrThresholdMisconfigured)
	}
	if threshold > uint64(signers) {
		return fmt.Errorf("%w: threshold %d is higher than the amount of signers (%d)", ErrThresholdMisconfigured, threshold, signers)
	}
	return nil
}

// IsSameProposal reports whether two calls target the same contract, entrypoint
// and arguments once encoding differences (address padding, signature versus
// selector) are normalized away.
func IsSameProposal(local, onchain Call) bool {
	localTo, err := local.Target()
	if err != nil {
		return false
	}
	onchainTo, err := onchain.Target()
	if err != nil || localTo != onchainTo {
		return false
	}

	localSel, err := local.Selector()
	if err != nil {
		return false
	}
	onchainSel, err := onchain.Selector()
	if err != nil || localSel != onchainSel {
		return false
	}

	if len(local.Calldata) != len(onchain.Calldata) {
		return false
	}
	for i := range local.Calldata {
		a, b := local.Calldata[i], onchain.Calldata[i]
		if a == nil || b == nil || a.Cmp(b) != 0 {
			return false
		}
	}
	return true
}
