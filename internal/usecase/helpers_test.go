package usecase_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/opctl/internal/domain"
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

// RecordingProgress keeps every operator-facing message
type RecordingProgress struct {
	mu        sync.Mutex
	Events    []usecase.ProgressEvent
	Infos     []string
	Successes []string
	Warnings  []string
	Errors    []string
}

func (p *RecordingProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
}

func (p *RecordingProgress) Info(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Infos = append(p.Infos, message)
}

func (p *RecordingProgress) Success(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Successes = append(p.Successes, message)
}

func (p *RecordingProgress) Warn(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Warnings = append(p.Warnings, message)
}

func (p *RecordingProgress) Error(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Errors = append(p.Errors, message)
}

// MockPrompter is a mock implementation of Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Confirm(ctx context.Context, label string) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

type amountInput struct {
	Amount string `json:"amount"`
	Salt   string `json:"salt,omitempty"`
}

func (in amountInput) DeploySalt() string {
	return in.Salt
}

func parsePositive(raw string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("amount is not a number: %q", raw)
	}
	if v.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	return v, nil
}

// increaseBalanceConfig is a minimal execute command against the example contract
func increaseBalanceConfig() usecase.ExecuteCommandConfig[amountInput] {
	return usecase.ExecuteCommandConfig[amountInput]{
		Category:   "example",
		Action:     "increase_balance",
		ContractID: "Example",
		Flags:      []usecase.FlagSpec{{Name: "amount"}},
		MakeUserInput: func(flags usecase.Flags, args []string, env usecase.Env) (amountInput, error) {
			return amountInput{Amount: flags.String("amount")}, nil
		},
		Validations: []usecase.Validation[amountInput]{
			func(ctx context.Context, in amountInput, ec *usecase.ExecutionContext) error {
				_, err := parsePositive(in.Amount)
				return err
			},
		},
		MakeContractInput: func(ctx context.Context, in amountInput, ec *usecase.ExecutionContext) ([]any, error) {
			v, err := parsePositive(in.Amount)
			if err != nil {
				return nil, err
			}
			return []any{v}, nil
		},
	}
}

func deployExampleConfig() usecase.ExecuteCommandConfig[amountInput] {
	return usecase.ExecuteCommandConfig[amountInput]{
		Category:   "example",
		Action:     domain.ActionDeploy,
		ContractID: "Example",
	}
}

func balanceCall(t interface{ Helper() }, to common.Address, amount int64) domain.Call {
	t.Helper()
	return domain.Call{
		ContractAddress: to.Hex(),
		Entrypoint:      "increaseBalance(uint256)",
		Calldata:        []*big.Int{big.NewInt(amount)},
	}
}

func executeCommand(cmd usecase.Command) usecase.ExecuteCommand {
	return cmd.(usecase.ExecuteCommand)
}

func txOf(result *models.Result) *models.TransactionResponse {
	return result.Tx()
}
