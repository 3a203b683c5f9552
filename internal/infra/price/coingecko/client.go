// Package coingecko quotes BTC in fiat currencies using the CoinGecko
// /simple/price endpoint.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

var (
	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("coingecko: unexpected status")

	// ErrMissingQuote is returned when the response lacks the requested pair.
	ErrMissingQuote = errors.New("coingecko: missing quote")
)

type client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

var _ addrinfo.PriceSource = (*client)(nil)

// NewClient returns a client for baseURL (DefaultBaseURL when empty). apiKey
// is optional and sent as x-cg-pro-api-key.
func NewClient(baseURL, apiKey string, httpClient *retryablehttp.Client) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		http:    httpClient,
	}
}

// BTCPrice implements addrinfo.PriceSource.
func (c *client) BTCPrice(ctx context.Context, currency string) (float64, error) {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = "usd"
	}

	q := url.Values{}
	q.Set("ids", "bitcoin")
	q.Set("vs_currencies", currency)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var data map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("coingecko: decode: %w", err)
	}

	price, ok := data["bitcoin"][currency]
	if !ok {
		return 0, fmt.Errorf("%w: bitcoin/%s", ErrMissingQuote, currency)
	}

	return price, nil
}
