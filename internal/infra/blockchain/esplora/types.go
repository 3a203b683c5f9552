package esplora

import (
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrinfo"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
)

type txStatus struct {
	Confirmed   bool  `json:"confirmed"`
	BlockHeight int64 `json:"block_height,omitempty"`
	BlockTime   int64 `json:"block_time,omitempty"`
}

type txOutput struct {
	ScriptPubKeyAddr string `json:"scriptpubkey_address,omitempty"`
	Value            int64  `json:"value"`
}

type txInput struct {
	PrevOut    *txOutput `json:"prevout,omitempty"`
	IsCoinbase bool      `json:"is_coinbase"`
}

type transaction struct {
	TxID   string     `json:"txid"`
	Fee    int64      `json:"fee"`
	Vin    []txInput  `json:"vin"`
	Vout   []txOutput `json:"vout"`
	Status txStatus   `json:"status"`
}

func (t transaction) toDomain() txwatch.Transaction {
	tx := txwatch.Transaction{
		ID:          t.TxID,
		Confirmed:   t.Status.Confirmed,
		BlockHeight: t.Status.BlockHeight,
		Fee:         t.Fee,
		Inputs:      make([]txwatch.TxInput, 0, len(t.Vin)),
		Outputs:     make([]txwatch.TxOutput, 0, len(t.Vout)),
	}

	if t.Status.BlockTime > 0 {
		tx.BlockTime = time.Unix(t.Status.BlockTime, 0).UTC()
	}

	for _, in := range t.Vin {
		if in.PrevOut == nil {
			tx.Inputs = append(tx.Inputs, txwatch.TxInput{})
			continue
		}
		tx.Inputs = append(tx.Inputs, txwatch.TxInput{
			Address: in.PrevOut.ScriptPubKeyAddr,
			Value:   in.PrevOut.Value,
		})
	}

	for _, out := range t.Vout {
		tx.Outputs = append(tx.Outputs, txwatch.TxOutput{
			Address: out.ScriptPubKeyAddr,
			Value:   out.Value,
		})
	}

	return tx
}

type fundingStats struct {
	FundedTxoSum int64 `json:"funded_txo_sum"`
	SpentTxoSum  int64 `json:"spent_txo_sum"`
	TxCount      int   `json:"tx_count"`
}

type addressResponse struct {
	Address      string       `json:"address"`
	ChainStats   fundingStats `json:"chain_stats"`
	MempoolStats fundingStats `json:"mempool_stats"`
}

func (a addressResponse) toDomain() addrinfo.AddressStats {
	return addrinfo.AddressStats{
		ConfirmedFunded:  a.ChainStats.FundedTxoSum,
		ConfirmedSpent:   a.ChainStats.SpentTxoSum,
		ConfirmedTxCount: a.ChainStats.TxCount,
		MempoolFunded:    a.MempoolStats.FundedTxoSum,
		MempoolSpent:     a.MempoolStats.SpentTxoSum,
		MempoolTxCount:   a.MempoolStats.TxCount,
	}
}
