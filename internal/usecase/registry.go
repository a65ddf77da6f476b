package usecase

import (
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/opctl/internal/domain"
)

const maxSuggestions = 3

// Registry maps command ids to their builders
type Registry struct {
	builders map[string]CommandBuilder
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]CommandBuilder)}
}

// Register adds builders. Ids are unique.
func (r *Registry) Register(builders ...CommandBuilder) error {
	for _, b := range builders {
		id := b.Spec().ID()
		if _, exists := r.builders[id]; exists {
			return fmt.Errorf("command %s: %w", id, domain.ErrAlreadyExists)
		}
		r.builders[id] = b
	}
	return nil
}

// Lookup returns the builder registered under id, suggesting close matches otherwise
func (r *Registry) Lookup(id string) (CommandBuilder, error) {
	if b, ok := r.builders[id]; ok {
		return b, nil
	}
	return nil, domain.UnknownCommandError{ID: id, Suggestions: r.suggest(id)}
}

// IDs returns all registered ids in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Specs returns the specs of all registered commands, sorted by id
func (r *Registry) Specs() []CommandSpec {
	ids := r.IDs()
	specs := make([]CommandSpec, len(ids))
	for i, id := range ids {
		specs[i] = r.builders[id].Spec()
	}
	return specs
}

func (r *Registry) suggest(id string) []string {
	matches := fuzzy.Find(id, r.IDs())
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
