package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag names understood by every command
const (
	FlagInput            = "input"
	FlagNoWallet         = "noWallet"
	FlagSalt             = "salt"
	FlagMultisig         = "multisig"
	FlagMultisigProposal = "multisigProposal"
	FlagProposalID       = "proposalId"
)

// FlagKind is the shape of a flag value
type FlagKind int

const (
	FlagString FlagKind = iota
	FlagStringSlice
	FlagBool
)

// FlagSpec declares a flag a command accepts
type FlagSpec struct {
	Name  string
	Usage string
	Kind  FlagKind
}

// Flags is the loosely typed bag of operator-supplied flags
type Flags map[string]any

// Has reports whether the flag was supplied
func (f Flags) Has(name string) bool {
	v, ok := f[name]
	return ok && v != nil
}

// String returns the flag as text
func (f Flags) String(name string) string {
	switch v := f[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the flag as a boolean, false when absent or unparseable
func (f Flags) Bool(name string) bool {
	switch v := f[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// StringSlice returns a list flag. Text values are split on commas and may be
// wrapped in brackets.
func (f Flags) StringSlice(name string) []string {
	switch v := f[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		trimmed := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(v), "["), "]")
		var out []string
		for _, part := range strings.Split(trimmed, ",") {
			if part = strings.Trim(strings.TrimSpace(part), `"'`); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return nil
	}
}

// Uint64 parses a numeric flag. ok is false when the flag is absent.
func (f Flags) Uint64(name string) (value uint64, ok bool, err error) {
	if !f.Has(name) {
		return 0, false, nil
	}
	s := strings.TrimSpace(f.String(name))
	value, err = strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, true, fmt.Errorf("flag --%s: %q is not a valid number", name, s)
	}
	return value, true, nil
}

// DecodeInput converts a raw --input payload into T. Text payloads may be
// JSON or YAML; other values are converted through their JSON form.
func DecodeInput[T any](raw any) (T, error) {
	var out T
	if v, ok := raw.(T); ok {
		return v, nil
	}
	if v, ok := raw.(*T); ok && v != nil {
		return *v, nil
	}

	generic := raw
	switch v := raw.(type) {
	case string:
		doc, err := parseDocument([]byte(v))
		if err != nil {
			return out, err
		}
		generic = doc
	case []byte:
		doc, err := parseDocument(v)
		if err != nil {
			return out, err
		}
		generic = doc
	}

	b, err := json.Marshal(generic)
	if err != nil {
		return out, fmt.Errorf("failed to encode input payload: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("input payload does not match the command input: %w", err)
	}
	return out, nil
}

func parseDocument(b []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse input payload: %w", err)
	}
	return doc, nil
}
