package models

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is the compiled form of a contract as loaded from disk
type Artifact struct {
	Name     string
	Path     string
	ABI      *abi.ABI
	Bytecode []byte
}

// HasBytecode reports whether the artifact can be deployed
func (a *Artifact) HasBytecode() bool {
	return len(a.Bytecode) > 0
}

// Method looks up a method by name. snake_case names also match their
// camelCase ABI counterpart (increase_balance -> increaseBalance).
func (a *Artifact) Method(name string) (abi.Method, error) {
	if a.ABI == nil {
		return abi.Method{}, fmt.Errorf("artifact %s has no ABI", a.Name)
	}
	if m, ok := a.ABI.Methods[name]; ok {
		return m, nil
	}
	if camel := lowerCamel(name); camel != name {
		if m, ok := a.ABI.Methods[camel]; ok {
			return m, nil
		}
	}
	return abi.Method{}, fmt.Errorf("method %s not found in %s ABI", name, a.Name)
}

func lowerCamel(name string) string {
	camel := abi.ToCamelCase(name)
	if camel == "" {
		return camel
	}
	return strings.ToLower(camel[:1]) + camel[1:]
}
