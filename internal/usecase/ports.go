package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/config"
	"github.com/trebuchet-org/opctl/internal/domain/models"
)

// Provider is the network interface every command talks through.
type Provider interface {
	// ChainID returns the chain the provider is connected to
	ChainID(ctx context.Context) (*big.Int, error)
	// Read performs a read-only call and returns the raw return data
	Read(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	// Deploy submits a contract creation signed by wallet
	Deploy(ctx context.Context, wallet Wallet, req DeployRequest) (*models.TransactionResponse, error)
	// SignAndSend signs call with wallet and submits it
	SignAndSend(ctx context.Context, wallet Wallet, call domain.Call) (*models.TransactionResponse, error)
	// SendUnsigned submits call from an account the node manages
	SendUnsigned(ctx context.Context, from common.Address, call domain.Call) (*models.TransactionResponse, error)
	// TransactionReceipt fetches the receipt of an included transaction
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// DeployRequest describes a contract creation
type DeployRequest struct {
	Artifact        *models.Artifact
	ConstructorArgs []any
	// Salt selects deterministic deployment when set
	Salt *common.Hash
}

// Wallet holds the signing key of the operator
type Wallet interface {
	Address() common.Address
	PublicKey() string
	SignTx(chainID *big.Int, tx *types.Transaction) (*types.Transaction, error)
}

// ContractLoader resolves a logical contract name to its artifact
type ContractLoader interface {
	Load(name string) (*models.Artifact, error)
}

// Prompter asks the operator for confirmation. Declining returns domain.ErrAborted.
type Prompter interface {
	Confirm(ctx context.Context, label string) error
}

// ExecutionStage represents a stage of command execution
type ExecutionStage string

const (
	StageFetching   ExecutionStage = "Fetching"
	StageSubmitting ExecutionStage = "Submitting"
	StageWaiting    ExecutionStage = "Waiting"
	StageCompleted  ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events and operator-facing messages
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Success(message string)
	Warn(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Success(string)                            {}
func (NopProgress) Warn(string)                               {}
func (NopProgress) Error(string)                              {}

// Env is the resolved environment a command runs against
type Env struct {
	Network  string
	NodeURL  string
	ChainID  uint64
	Account  string
	Multisig string
}

// Dependencies is the bundle handed to every command builder.
type Dependencies struct {
	Logger       *slog.Logger
	Progress     ProgressSink
	Prompt       Prompter
	Loader       ContractLoader
	MakeEnv      func(flags Flags) (Env, error)
	MakeProvider func(ctx context.Context, env Env) (Provider, error)
	MakeWallet   func(env Env) (Wallet, error)
	// Reapproval decides what happens when a signer approves twice
	Reapproval config.ReapprovalPolicy
}

// withDefaults fills optional members
func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Progress == nil {
		d.Progress = NopProgress{}
	}
	if d.Prompt == nil {
		d.Prompt = AutoConfirm{}
	}
	if !d.Reapproval.Valid() {
		d.Reapproval = config.ReapprovalReject
	}
	return d
}

// AutoConfirm is the Prompter used in non-interactive mode
type AutoConfirm struct{}

func (AutoConfirm) Confirm(context.Context, string) error { return nil }
