package core

import "time"

// Session is returned once a wallet proved control of its account.
type Session struct {
	Account string `json:"account"`
	Token   string `json:"token"`
}

// Balance holds the account balances and the network base gas price. Amounts
// are decimal strings in whole VET / VTHO.
type Balance struct {
	Account      string `json:"account"`
	VET          string `json:"vet"`
	VTHO         string `json:"vtho"`
	BaseGasPrice string `json:"baseGasPrice"`
}

// TraderConfig is the account's trader contract configuration rounded down to
// the configured display places.
type TraderConfig struct {
	Account        string `json:"account"`
	TriggerBalance string `json:"triggerBalance"`
	ReserveBalance string `json:"reserveBalance"`
	Registered     bool   `json:"registered"`
}

// TxResult is the outcome of a signed transaction.
type TxResult struct {
	TxID        string `json:"txId,omitempty"`
	State       string `json:"state"`
	Reverted    bool   `json:"reverted"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	GasUsed     uint64 `json:"gasUsed,omitempty"`
	Message     string `json:"message,omitempty"`
}

type TransactionRecord struct {
	TxID        string    `json:"txId"`
	Comment     string    `json:"comment"`
	State       string    `json:"state"`
	Reverted    bool      `json:"reverted"`
	BlockID     string    `json:"blockId,omitempty"`
	BlockNumber uint64    `json:"blockNumber,omitempty"`
	GasUsed     uint64    `json:"gasUsed,omitempty"`
	Paid        string    `json:"paid,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Options struct {
	VTHODecimals    int
	ReceiptAttempts int
	CertDomain      string
	CertMaxAge      time.Duration
	TokenTTL        time.Duration
}
