package thor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Block struct {
	ID        string `json:"id"`
	Number    uint64 `json:"number"`
	ParentID  string `json:"parentID"`
	Timestamp uint64 `json:"timestamp"`
	GasLimit  uint64 `json:"gasLimit"`
}

// Account holds balances in wei. Energy is the VTHO balance.
type Account struct {
	Balance *big.Int
	Energy  *big.Int
	HasCode bool
}

type CallResult struct {
	Data     string `json:"data"`
	Reverted bool   `json:"reverted"`
	VMError  string `json:"vmError"`
	GasUsed  uint64 `json:"gasUsed"`
}

type accountJSON struct {
	Balance *hexutil.Big `json:"balance"`
	Energy  *hexutil.Big `json:"energy"`
	HasCode bool         `json:"hasCode"`
}

type receiptJSON struct {
	GasUsed  uint64       `json:"gasUsed"`
	GasPayer string       `json:"gasPayer"`
	Paid     *hexutil.Big `json:"paid"`
	Reward   *hexutil.Big `json:"reward"`
	Reverted bool         `json:"reverted"`
	Meta     struct {
		BlockID        string `json:"blockID"`
		BlockNumber    uint64 `json:"blockNumber"`
		BlockTimestamp uint64 `json:"blockTimestamp"`
		TxID           string `json:"txID"`
		TxOrigin       string `json:"txOrigin"`
	} `json:"meta"`
}

type callRequest struct {
	Clauses []clauseJSON `json:"clauses"`
	Caller  string       `json:"caller,omitempty"`
}

type clauseJSON struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

type rawTxRequest struct {
	Raw string `json:"raw"`
}

type rawTxResponse struct {
	ID string `json:"id"`
}

func bigOrZero(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToInt()
}
