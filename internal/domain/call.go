package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const wordSize = 32

// Selector is the 4-byte function identifier of an EVM call
type Selector [4]byte

// Hex returns the 0x-prefixed selector
func (s Selector) Hex() string {
	return hexutil.Encode(s[:])
}

// SelectorFromSignature hashes a canonical signature such as setThreshold(uint256)
func SelectorFromSignature(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:4])
	return s
}

// NormalizeSelector resolves an entrypoint given either as a canonical
// signature or as a hex selector (leading zero padding allowed).
func NormalizeSelector(entrypoint string) (Selector, error) {
	e := strings.TrimSpace(entrypoint)
	if has0xPrefix(e) {
		v, ok := new(big.Int).SetString(e[2:], 16)
		if !ok || v.Sign() < 0 || v.BitLen() > 32 {
			return Selector{}, fmt.Errorf("%w: %q", ErrInvalidEntrypoint, entrypoint)
		}
		var s Selector
		v.FillBytes(s[:])
		return s, nil
	}
	if i := strings.Index(e, "("); i > 0 && strings.HasSuffix(e, ")") {
		return SelectorFromSignature(strings.ReplaceAll(e, " ", "")), nil
	}
	return Selector{}, fmt.Errorf("%w: %q is neither a function signature nor a selector", ErrInvalidEntrypoint, entrypoint)
}

// NormalizeAddress parses a hex address regardless of its zero padding.
func NormalizeAddress(address string) (common.Address, error) {
	a := strings.TrimSpace(address)
	if has0xPrefix(a) {
		a = a[2:]
	}
	v, ok := new(big.Int).SetString(a, 16)
	if a == "" || !ok || v.Sign() < 0 || v.BitLen() > 8*common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.BigToAddress(v), nil
}

// IsAddress reports whether s is a strict 20-byte hex address
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Call is a single contract invocation: target, entrypoint and ABI-encoded
// arguments split into 32-byte words.
type Call struct {
	ContractAddress string     `json:"contractAddress"`
	Entrypoint      string     `json:"entrypoint"`
	Calldata        []*big.Int `json:"calldata"`
}

// NewCall encodes args for method and returns the call targeting to
func NewCall(to common.Address, method abi.Method, args ...any) (Call, error) {
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return Call{}, fmt.Errorf("failed to encode arguments for %s: %w", method.Sig, err)
	}
	words, err := WordsFromBytes(packed)
	if err != nil {
		return Call{}, err
	}
	return Call{ContractAddress: to.Hex(), Entrypoint: method.Sig, Calldata: words}, nil
}

// NewCallFromData splits raw transaction input into selector and words
func NewCallFromData(to common.Address, data []byte) (Call, error) {
	if len(data) < 4 {
		return Call{}, fmt.Errorf("%w: input shorter than a selector", ErrInvalidCalldata)
	}
	words, err := WordsFromBytes(data[4:])
	if err != nil {
		return Call{}, err
	}
	return Call{ContractAddress: to.Hex(), Entrypoint: hexutil.Encode(data[:4]), Calldata: words}, nil
}

// Target returns the normalized contract address
func (c Call) Target() (common.Address, error) {
	return NormalizeAddress(c.ContractAddress)
}

// Selector returns the normalized entrypoint
func (c Call) Selector() (Selector, error) {
	return NormalizeSelector(c.Entrypoint)
}

// Data returns the transaction input: selector followed by the calldata words
func (c Call) Data() ([]byte, error) {
	sel, err := c.Selector()
	if err != nil {
		return nil, err
	}
	body, err := BytesFromWords(c.Calldata)
	if err != nil {
		return nil, err
	}
	return append(sel[:], body...), nil
}

func (c Call) String() string {
	args := make([]string, len(c.Calldata))
	for i, w := range c.Calldata {
		args[i] = hexutil.EncodeBig(w)
	}
	return fmt.Sprintf("%s.%s [%s]", c.ContractAddress, c.Entrypoint, strings.Join(args, ", "))
}

// WordsFromBytes splits ABI-encoded bytes into 32-byte words
func WordsFromBytes(b []byte) ([]*big.Int, error) {
	if len(b)%wordSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidCalldata, len(b), wordSize)
	}
	words := make([]*big.Int, 0, len(b)/wordSize)
	for i := 0; i < len(b); i += wordSize {
		words = append(words, new(big.Int).SetBytes(b[i:i+wordSize]))
	}
	return words, nil
}

// BytesFromWords joins words back into ABI-encoded bytes
func BytesFromWords(words []*big.Int) ([]byte, error) {
	out := make([]byte, len(words)*wordSize)
	for i, w := range words {
		if w == nil || w.Sign() < 0 || w.BitLen() > 8*wordSize {
			return nil, fmt.Errorf("%w: word %d out of range", ErrInvalidCalldata, i)
		}
		w.FillBytes(out[i*wordSize : (i+1)*wordSize])
	}
	return out, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
