package ethereum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/chainnotify/internal/ledger"
	transporthttp "github.com/gabapcia/chainnotify/internal/pkg/transport/http"
	"github.com/gabapcia/chainnotify/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainnotify/internal/runner"
)

// ErrUnknownNetwork is returned for networks without a configured endpoint.
var ErrUnknownNetwork = errors.New("unknown network")

// Resolver hands out one shared client per configured network.
type Resolver struct {
	clients map[string]ledger.Client
}

var _ runner.LedgerResolver = (*Resolver)(nil)

func (r *Resolver) Ledger(network string) (ledger.Client, error) {
	c, ok := r.clients[network]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}

	return c, nil
}

// Networks returns the configured network names, sorted.
func (r *Resolver) Networks() []string {
	out := make([]string, 0, len(r.clients))
	for n := range r.clients {
		out = append(out, n)
	}

	slices.Sort(out)
	return out
}

// NewResolver builds a client for every network to RPC endpoint entry.
// Requests are never retried at the HTTP layer, whatever opts say: a network
// failure surfaces as ledger.ErrNetwork and the call is repeated on the next
// scheduled pass. A retried broadcast could otherwise be sent twice.
func NewResolver(endpoints map[string]string, opts ...jsonrpc.Option) *Resolver {
	opts = append(slices.Clone(opts), jsonrpc.WithHTTPOptions(transporthttp.WithRetryMax(0)))

	clients := make(map[string]ledger.Client, len(endpoints))
	for network, url := range endpoints {
		clients[network] = NewClient(jsonrpc.NewClient(url, opts...))
	}

	return &Resolver{clients: clients}
}
