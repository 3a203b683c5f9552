// Package esplora fetches address activity from an Esplora REST API such as
// blockstream.info or mempool.space.
package esplora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/pkg/resilience/retry"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("esplora: unexpected status")

// maxErrorBody bounds how much of an error response is echoed.
const maxErrorBody = 512

var defaultBaseURLs = map[string]string{
	"mainnet": "https://blockstream.info/api",
	"testnet": "https://blockstream.info/testnet/api",
	"signet":  "https://mempool.space/signet/api",
	"regtest": "http://127.0.0.1:3002",
}

// DefaultBaseURL returns the public endpoint for a network name, falling
// back to mainnet.
func DefaultBaseURL(network string) string {
	if u, ok := defaultBaseURLs[network]; ok {
		return u
	}
	return defaultBaseURLs["mainnet"]
}

type client struct {
	baseURL string
	http    *retryablehttp.Client
}

var (
	_ txwatch.TransactionFetcher = (*client)(nil)
	_ addrinfo.StatsFetcher      = (*client)(nil)
)

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *retryablehttp.Client) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchTransactions implements txwatch.TransactionFetcher using
// GET /address/{address}/txs, which lists mempool transactions followed by
// the most recent confirmed ones.
func (c *client) FetchTransactions(ctx context.Context, address string) ([]txwatch.Transaction, error) {
	var raw []transaction
	if err := c.get(ctx, "/address/"+url.PathEscape(address)+"/txs", &raw); err != nil {
		return nil, err
	}

	txs := make([]txwatch.Transaction, len(raw))
	for i, tx := range raw {
		txs[i] = tx.toDomain()
	}

	return txs, nil
}

// FetchAddressStats implements addrinfo.StatsFetcher using GET /address/{address}.
func (c *client) FetchAddressStats(ctx context.Context, address string) (addrinfo.AddressStats, error) {
	var raw addressResponse
	if err := c.get(ctx, "/address/"+url.PathEscape(address), &raw); err != nil {
		return addrinfo.AddressStats{}, err
	}

	return raw.toDomain(), nil
}

// get decodes the JSON body of a GET request into out. Client errors other
// than 429 are marked unrecoverable, another attempt cannot fix them.
func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := fmt.Errorf("%w: %s %d: %s", ErrUnexpectedStatus, path, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return retry.Unrecoverable(err)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("esplora: decode %s: %w", path, err)
	}

	return nil
}
