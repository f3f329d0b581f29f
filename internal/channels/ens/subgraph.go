package ens

import (
	"context"
	"strings"
)

// Querier executes GraphQL queries.
type Querier interface {
	Query(ctx context.Context, query string, variables map[string]any, out any) error
}

const registrationsQuery = `query Registrations($owner: String!) {
  account(id: $owner) {
    registrations(first: 100, orderBy: expiryDate) {
      labelName
      domain { name }
    }
  }
}`

type registrationsResponse struct {
	Account *struct {
		Registrations []struct {
			LabelName string `json:"labelName"`
			Domain    struct {
				Name string `json:"name"`
			} `json:"domain"`
		} `json:"registrations"`
	} `json:"account"`
}

// Subgraph resolves domains through the ENS subgraph.
type Subgraph struct {
	client Querier
}

var _ DomainSource = (*Subgraph)(nil)

// DomainsOf lists the domains registered by owner.
func (s *Subgraph) DomainsOf(ctx context.Context, owner string) ([]Domain, error) {
	var resp registrationsResponse
	if err := s.client.Query(ctx, registrationsQuery, map[string]any{"owner": strings.ToLower(owner)}, &resp); err != nil {
		return nil, err
	}

	if resp.Account == nil {
		return nil, nil
	}

	domains := make([]Domain, 0, len(resp.Account.Registrations))
	for _, r := range resp.Account.Registrations {
		// Registrations of unknown preimages have no label.
		if r.LabelName == "" {
			continue
		}
		domains = append(domains, Domain{Name: r.Domain.Name, LabelName: r.LabelName})
	}

	return domains, nil
}

// NewSubgraph creates a DomainSource backed by client.
func NewSubgraph(client Querier) *Subgraph {
	return &Subgraph{client: client}
}
