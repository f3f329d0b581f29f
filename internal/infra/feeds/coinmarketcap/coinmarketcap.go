// Package coinmarketcap reads USD quotes from the CoinMarketCap pro API.
package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/chainnotify/internal/channels/ethticker"
	transporthttp "github.com/gabapcia/chainnotify/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrAPI is returned when the API reports an error in its status block.
	ErrAPI = errors.New("coinmarketcap error")

	// ErrNoQuote is returned when the response lacks the requested symbol.
	ErrNoQuote = errors.New("symbol not quoted")
)

const quotesPath = "/v1/cryptocurrency/quotes/latest"

type usdQuote struct {
	Price            float64 `json:"price"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
}

type quotesResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Symbol string `json:"symbol"`
		Quote  struct {
			USD usdQuote `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

type client struct {
	endpoint string
	apiKey   string
	http     *retryablehttp.Client
}

var _ ethticker.QuoteSource = (*client)(nil)

func (c *client) Quote(ctx context.Context, symbol string) (ethticker.Quote, error) {
	u := c.endpoint + quotesPath + "?" + url.Values{"symbol": {symbol}, "convert": {"USD"}}.Encode()

	var res quotesResponse
	err := transporthttp.DoJSON(ctx, c.http, http.MethodGet, u, http.Header{"X-CMC_PRO_API_KEY": {c.apiKey}}, nil, &res)
	if err != nil {
		return ethticker.Quote{}, err
	}

	if res.Status.ErrorCode != 0 {
		return ethticker.Quote{}, fmt.Errorf("%w: [%d] %s", ErrAPI, res.Status.ErrorCode, res.Status.ErrorMessage)
	}

	d, ok := res.Data[strings.ToUpper(symbol)]
	if !ok {
		return ethticker.Quote{}, fmt.Errorf("%w: %s", ErrNoQuote, symbol)
	}

	q := d.Quote.USD
	return ethticker.Quote{
		Symbol:    strings.ToUpper(symbol),
		Price:     q.Price,
		Change1h:  q.PercentChange1h,
		Change24h: q.PercentChange24h,
		Change7d:  q.PercentChange7d,
	}, nil
}

// New creates a quote source. endpoint is the API root, e.g.
// https://pro-api.coinmarketcap.com.
func New(endpoint, apiKey string, opts ...transporthttp.Option) *client {
	return &client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		http:     transporthttp.NewClient(opts...),
	}
}
