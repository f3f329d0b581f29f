// Package graphql is a minimal GraphQL over HTTP client used to read
// subgraph indexes.
package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels/ens"
	transporthttp "github.com/gabapcia/chainnotify/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrQuery is returned when the response carries GraphQL errors.
var ErrQuery = errors.New("graphql query failed")

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type client struct {
	endpoint string
	http     *retryablehttp.Client
}

var _ ens.Querier = (*client)(nil)

// Query runs query and decodes its data object into out.
func (c *client) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	var res response
	if err := transporthttp.DoJSON(ctx, c.http, http.MethodPost, c.endpoint, nil, request{Query: query, Variables: variables}, &res); err != nil {
		return err
	}

	if len(res.Errors) > 0 {
		msgs := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("%w: %s", ErrQuery, strings.Join(msgs, "; "))
	}

	if out == nil || len(res.Data) == 0 {
		return nil
	}

	return json.Unmarshal(res.Data, out)
}

func New(endpoint string, opts ...transporthttp.Option) *client {
	return &client{
		endpoint: endpoint,
		http:     transporthttp.NewClient(opts...),
	}
}
