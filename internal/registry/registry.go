// Package registry holds the channels known to the process, keyed by id.
// It is built once at startup and read-only afterwards.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/chainnotify/internal/runner"
)

var (
	// ErrUnknownChannel is returned when no channel is registered under an id.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrDuplicateChannel is returned when two runners share an id.
	ErrDuplicateChannel = errors.New("duplicate channel id")
)

// Registry resolves channel runners by id.
type Registry interface {
	Get(id string) (runner.Runner, error)

	// List returns the registered ids in lexical order.
	List() []string
}

type registry struct {
	runners map[string]runner.Runner
}

var _ Registry = (*registry)(nil)

func (r *registry) Get(id string) (runner.Runner, error) {
	rn, ok := r.runners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, id)
	}

	return rn, nil
}

func (r *registry) List() []string {
	ids := make([]string, 0, len(r.runners))
	for id := range r.runners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// New builds a registry from runners.
func New(runners ...runner.Runner) (*registry, error) {
	m := make(map[string]runner.Runner, len(runners))
	for _, rn := range runners {
		id := rn.Channel()
		if _, ok := m[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChannel, id)
		}
		m[id] = rn
	}

	return &registry{runners: m}, nil
}
