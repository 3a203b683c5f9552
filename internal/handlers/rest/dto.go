package rest

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/notify"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
)

const redacted = "***"

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Monitoring           bool             `json:"is_monitoring"`
	AddressesCount       int              `json:"addresses_count"`
	Addresses            []string         `json:"addresses"`
	CheckIntervalSeconds int64            `json:"check_interval_seconds"`
	NotifyChannels       []notify.Channel `json:"notify_channels"`
	EmailConfigured      bool             `json:"email_notifications_configured"`
	LastCycle            *cycleResponse   `json:"last_cycle,omitempty"`
}

type cycleResponse struct {
	ID              string            `json:"id"`
	StartedAt       time.Time         `json:"started_at"`
	FinishedAt      time.Time         `json:"finished_at"`
	DurationSeconds float64           `json:"duration_seconds"`
	Checked         int               `json:"checked"`
	NewTransactions int               `json:"new_transactions"`
	Failures        []failureResponse `json:"failures"`
	Error           string            `json:"error,omitempty"`
}

type failureResponse struct {
	Address string `json:"address"`
	Error   string `json:"error"`
}

func newCycleResponse(r txwatch.CycleReport) *cycleResponse {
	resp := &cycleResponse{
		ID:              r.ID,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
		DurationSeconds: r.Duration().Seconds(),
		Checked:         r.Checked,
		NewTransactions: r.NewTransactions,
		Failures:        make([]failureResponse, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, failureResponse{Address: f.Address, Error: f.Err.Error()})
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}

type addAddressRequest struct {
	Address string `json:"address"`
}

type addressResponse struct {
	Address           string     `json:"address"`
	Kind              string     `json:"kind"`
	KnownTransactions int        `json:"known_transactions"`
	AddedAt           time.Time  `json:"added_at"`
	LastChecked       *time.Time `json:"last_checked"`
}

func newAddressResponse(m addrregistry.MonitoredAddress) addressResponse {
	resp := addressResponse{
		Address:           m.Address,
		Kind:              m.Kind.String(),
		KnownTransactions: m.KnownTxIDs.Len(),
		AddedAt:           m.AddedAt,
	}
	if m.Checked() {
		lastChecked := m.LastChecked
		resp.LastChecked = &lastChecked
	}
	return resp
}

type balanceResponse struct {
	Confirmed   float64 `json:"confirmed_btc"`
	Unconfirmed float64 `json:"unconfirmed_btc"`
	Total       float64 `json:"total_btc"`
}

type transactionResponse struct {
	ID          string     `json:"txid"`
	Confirmed   bool       `json:"confirmed"`
	BlockHeight int64      `json:"block_height,omitempty"`
	BlockTime   *time.Time `json:"block_time,omitempty"`
	FeeBTC      float64    `json:"fee_btc"`
	NetValueBTC float64    `json:"net_value_btc"`
}

type infoResponse struct {
	Address            string                `json:"address"`
	Kind               string                `json:"kind"`
	Monitored          bool                  `json:"is_monitored"`
	Balance            balanceResponse       `json:"balance"`
	FiatValue          *float64              `json:"fiat_value,omitempty"`
	FiatCurrency       string                `json:"fiat_currency,omitempty"`
	TxCount            int                   `json:"tx_count"`
	RecentTransactions []transactionResponse `json:"recent_transactions"`
}

func newInfoResponse(info addrinfo.Info) infoResponse {
	resp := infoResponse{
		Address:   info.Address,
		Kind:      info.Kind.String(),
		Monitored: info.Monitored,
		Balance: balanceResponse{
			Confirmed:   info.Balance.Confirmed.ToBTC(),
			Unconfirmed: info.Balance.Unconfirmed.ToBTC(),
			Total:       info.Balance.Total().ToBTC(),
		},
		TxCount:            info.TxCount,
		RecentTransactions: make([]transactionResponse, 0, len(info.RecentTransactions)),
	}
	if info.FiatValue != nil {
		resp.FiatValue = info.FiatValue
		resp.FiatCurrency = info.FiatCurrency
	}

	for _, tx := range info.RecentTransactions {
		txResp := transactionResponse{
			ID:          tx.ID,
			Confirmed:   tx.Confirmed,
			BlockHeight: tx.BlockHeight,
			FeeBTC:      btcutil.Amount(tx.Fee).ToBTC(),
			NetValueBTC: btcutil.Amount(tx.NetValue(info.Address)).ToBTC(),
		}
		if !tx.BlockTime.IsZero() {
			blockTime := tx.BlockTime
			txResp.BlockTime = &blockTime
		}
		resp.RecentTransactions = append(resp.RecentTransactions, txResp)
	}

	return resp
}

// emailConfig mirrors notify.SMTPSettings on the wire.
type emailConfig struct {
	SMTPServer     string `json:"smtp_server"`
	SMTPPort       int    `json:"smtp_port"`
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
	RecipientEmail string `json:"recipient_email"`
	StartTLS       bool   `json:"starttls"`
}

func newEmailConfig(s notify.SMTPSettings) *emailConfig {
	if !s.Configured() {
		return nil
	}

	cfg := &emailConfig{
		SMTPServer:     s.Host,
		SMTPPort:       s.Port,
		SenderEmail:    s.From,
		RecipientEmail: s.To,
		StartTLS:       s.StartTLS,
	}
	if s.Password != "" {
		cfg.SenderPassword = redacted
	}
	return cfg
}

func (c emailConfig) settings() notify.SMTPSettings {
	return notify.SMTPSettings{
		Host:     c.SMTPServer,
		Port:     c.SMTPPort,
		From:     c.SenderEmail,
		Password: c.SenderPassword,
		To:       c.RecipientEmail,
		StartTLS: c.StartTLS,
	}
}

// configRequest replaces the runtime configuration. Omitted fields keep their
// current value; an empty addresses array removes every address.
type configRequest struct {
	Addresses            []string     `json:"addresses"`
	CheckIntervalSeconds *int64       `json:"check_interval_seconds"`
	NotifyChannels       []string     `json:"notify_channels"`
	EmailConfig          *emailConfig `json:"email_config"`
}

type configResponse struct {
	Addresses            []string         `json:"addresses"`
	CheckIntervalSeconds int64            `json:"check_interval_seconds"`
	NotifyChannels       []notify.Channel `json:"notify_channels"`
	EmailConfig          *emailConfig     `json:"email_config"`
}
