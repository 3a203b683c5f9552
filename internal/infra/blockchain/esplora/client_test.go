package esplora

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabapcia/btcmonitor/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/btcmonitor/internal/pkg/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const address = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"

const txsResponse = `[
  {
    "txid": "mempool-tx",
    "fee": 141,
    "vin": [{"prevout": {"scriptpubkey_address": "bc1qother", "value": 100000}, "is_coinbase": false}],
    "vout": [
      {"scriptpubkey_address": "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", "value": 60000},
      {"scriptpubkey_address": "bc1qother", "value": 39859}
    ],
    "status": {"confirmed": false}
  },
  {
    "txid": "confirmed-tx",
    "fee": 0,
    "vin": [{"is_coinbase": true}],
    "vout": [
      {"scriptpubkey_address": "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", "value": 625000000},
      {"scriptpubkey_type": "op_return", "value": 0}
    ],
    "status": {"confirmed": true, "block_height": 840000, "block_time": 1713571767}
  }
]`

const addressResponseBody = `{
  "address": "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
  "chain_stats": {"funded_txo_count": 2, "funded_txo_sum": 625060000, "spent_txo_count": 0, "spent_txo_sum": 0, "tx_count": 1},
  "mempool_stats": {"funded_txo_count": 1, "funded_txo_sum": 60000, "spent_txo_count": 0, "spent_txo_sum": 0, "tx_count": 1}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", transporthttp.NewClient(
		transporthttp.WithRetryMax(0),
		transporthttp.WithTimeout(2*time.Second),
	))
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://blockstream.info/api", DefaultBaseURL("mainnet"))
	assert.Equal(t, "https://blockstream.info/testnet/api", DefaultBaseURL("testnet"))
	assert.Equal(t, "https://mempool.space/signet/api", DefaultBaseURL("signet"))
	assert.Equal(t, "https://blockstream.info/api", DefaultBaseURL("unknown"))
}

func TestClient_FetchTransactions(t *testing.T) {
	t.Run("maps the provider response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/address/"+address+"/txs", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(txsResponse))
		})

		txs, err := c.FetchTransactions(t.Context(), address)
		require.NoError(t, err)
		require.Len(t, txs, 2)

		pending := txs[0]
		assert.Equal(t, "mempool-tx", pending.ID)
		assert.False(t, pending.Confirmed)
		assert.True(t, pending.BlockTime.IsZero())
		assert.Equal(t, int64(141), pending.Fee)
		assert.Equal(t, int64(60000), pending.NetValue(address))

		confirmed := txs[1]
		assert.True(t, confirmed.Confirmed)
		assert.Equal(t, int64(840000), confirmed.BlockHeight)
		assert.Equal(t, time.Unix(1713571767, 0).UTC(), confirmed.BlockTime)
		require.Len(t, confirmed.Inputs, 1)
		assert.Empty(t, confirmed.Inputs[0].Address, "coinbase inputs have no address")
		require.Len(t, confirmed.Outputs, 2)
		assert.Empty(t, confirmed.Outputs[1].Address)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		calls := 0
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			http.Error(w, "Invalid Bitcoin address", http.StatusBadRequest)
		})

		err := retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond)).Execute(t.Context(), func() error {
			_, err := c.FetchTransactions(t.Context(), address)
			return err
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "Invalid Bitcoin address")
		assert.Equal(t, 1, calls)
	})

	t.Run("rate limiting stays retryable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		calls := 0
		err := retry.New(retry.WithAttempts(2), retry.WithDelay(time.Millisecond)).Execute(t.Context(), func() error {
			calls++
			_, err := c.FetchTransactions(t.Context(), address)
			return err
		})

		require.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("malformed bodies are reported", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "a list"}`))
		})

		_, err := c.FetchTransactions(t.Context(), address)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrUnexpectedStatus))
	})
}

func TestClient_FetchAddressStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/"+address, r.URL.Path)
		_, _ = w.Write([]byte(addressResponseBody))
	})

	stats, err := c.FetchAddressStats(t.Context(), address)
	require.NoError(t, err)

	assert.Equal(t, int64(625060000), stats.ConfirmedFunded)
	assert.Zero(t, stats.ConfirmedSpent)
	assert.Equal(t, 1, stats.ConfirmedTxCount)
	assert.Equal(t, int64(60000), stats.MempoolFunded)
	assert.Equal(t, 1, stats.MempoolTxCount)
	assert.Equal(t, int64(625120000), int64(stats.Balance().Total()))
}
