package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when trying to register a resource that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidAddress is returned when an address cannot be normalized
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidEntrypoint is returned when an entrypoint is neither a signature nor a selector
	ErrInvalidEntrypoint = errors.New("invalid entrypoint")

	// ErrInvalidCalldata is returned when calldata is not a sequence of 32-byte words
	ErrInvalidCalldata = errors.New("invalid calldata")

	// ErrAborted is returned when the operator declines the confirmation prompt
	ErrAborted = errors.New("aborted by operator")

	// ErrUnknownCommand is returned when no command is registered under an id
	ErrUnknownCommand = errors.New("unknown command")

	// ErrProposalMismatch is returned when the locally generated call differs from the stored proposal
	ErrProposalMismatch = errors.New("the transaction generated is different from the proposal provided")

	// ErrNoActionNeeded is returned when the proposal has already been executed
	ErrNoActionNeeded = errors.New("no action needed")

	// ErrAlreadyConfirmed is returned when the signer already approved the proposal
	ErrAlreadyConfirmed = errors.New("signer already confirmed the proposal")

	// ErrThresholdMisconfigured is returned when the threshold cannot be met by the signer set
	ErrThresholdMisconfigured = errors.New("threshold misconfigured")
)

// ValidationError reports operator input that failed validation.
// Nothing has been sent to the network when it is returned.
type ValidationError struct {
	Command string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid input for %s: %v", e.Command, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ReconciliationError reports a stale or divergent multisig proposal.
type ReconciliationError struct {
	ProposalID *uint64
	Err        error
}

func (e *ReconciliationError) Error() string {
	if e.ProposalID == nil {
		return fmt.Sprintf("multisig: %v", e.Err)
	}
	return fmt.Sprintf("multisig proposal %d: %v", *e.ProposalID, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// UnknownCommandError is returned when a command id does not resolve
type UnknownCommandError struct {
	ID          string
	Suggestions []string
}

func (e UnknownCommandError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown command %q", e.ID)
	}
	return fmt.Sprintf("unknown command %q, did you mean:\n  - %s", e.ID, strings.Join(e.Suggestions, "\n  - "))
}

func (e UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// IsValidationError reports whether err carries a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsReconciliationError reports whether err carries a ReconciliationError
func IsReconciliationError(err error) bool {
	var target *ReconciliationError
	return errors.As(err, &target)
}
