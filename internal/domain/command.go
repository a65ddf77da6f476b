package domain

import (
	"fmt"
	"strings"
)

// Well-known command suffixes and actions
const (
	ActionDeploy   = "deploy"
	SuffixMultisig = "multisig"
)

// CommandDescriptor identifies a registered command.
type CommandDescriptor struct {
	Category string
	Action   string
	Suffixes []string
}

// ID returns the colon-joined identifier, e.g. multisig:set_threshold:multisig
func (d CommandDescriptor) ID() string {
	parts := append([]string{d.Category, d.Action}, d.Suffixes...)
	return strings.Join(parts, ":")
}

// WithSuffix returns a copy of the descriptor with suffix appended
func (d CommandDescriptor) WithSuffix(suffix string) CommandDescriptor {
	suffixes := make([]string, 0, len(d.Suffixes)+1)
	suffixes = append(suffixes, d.Suffixes...)
	suffixes = append(suffixes, suffix)
	return CommandDescriptor{Category: d.Category, Action: d.Action, Suffixes: suffixes}
}

// HasSuffix reports whether suffix is part of the descriptor
func (d CommandDescriptor) HasSuffix(suffix string) bool {
	for _, s := range d.Suffixes {
		if s == suffix {
			return true
		}
	}
	return false
}

// ParseCommandID splits an id back into a descriptor
func ParseCommandID(id string) (CommandDescriptor, error) {
	parts := strings.Split(id, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return CommandDescriptor{}, fmt.Errorf("invalid command id %q: expected category:action", id)
	}
	return CommandDescriptor{Category: parts[0], Action: parts[1], Suffixes: parts[2:]}, nil
}
