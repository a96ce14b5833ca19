package txn

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultComment is shown by the wallet when the caller gives none.
const DefaultComment = "Sign transaction"

var ErrNoClauses error = errors.New("signing request has no clauses")
var ErrInvalidSigner error = errors.New("invalid signer address")
var ErrInvalidClause error = errors.New("invalid clause")

// Clause is a single call within a transaction. To is a lowercase 0x address,
// Value a decimal integer string and Data 0x-prefixed call data.
type Clause struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// NewClause builds a clause in canonical form. A nil value means zero.
func NewClause(to common.Address, value *big.Int, data []byte) Clause {
	if value == nil {
		value = new(big.Int)
	}
	return Clause{
		To:    strings.ToLower(to.Hex()),
		Value: value.String(),
		Data:  hexutil.Encode(data),
	}
}

func (c Clause) normalize() (Clause, error) {
	if !common.IsHexAddress(c.To) {
		return Clause{}, fmt.Errorf("%w: bad address %q", ErrInvalidClause, c.To)
	}

	value := c.Value
	if value == "" {
		value = "0"
	}
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() < 0 {
		return Clause{}, fmt.Errorf("%w: bad value %q", ErrInvalidClause, c.Value)
	}

	data := c.Data
	if data == "" {
		data = "0x"
	}
	if _, err := hexutil.Decode(data); err != nil {
		return Clause{}, fmt.Errorf("%w: bad data: %w", ErrInvalidClause, err)
	}

	return Clause{
		To:    strings.ToLower(c.To),
		Value: v.String(),
		Data:  strings.ToLower(data),
	}, nil
}

// SigningRequest is what gets handed to a Signer. It cannot be changed once built.
type SigningRequest struct {
	clauses []Clause
	signer  string
	comment string
}

// NewSigningRequest validates clauses and signer and applies the default comment.
// Clause order is preserved.
func NewSigningRequest(clauses []Clause, signer, comment string) (SigningRequest, error) {
	if len(clauses) == 0 {
		return SigningRequest{}, ErrNoClauses
	}
	if !common.IsHexAddress(signer) {
		return SigningRequest{}, fmt.Errorf("%w: %q", ErrInvalidSigner, signer)
	}

	normalized := make([]Clause, len(clauses))
	for i, c := range clauses {
		n, err := c.normalize()
		if err != nil {
			return SigningRequest{}, fmt.Errorf("clause %d: %w", i, err)
		}
		normalized[i] = n
	}

	if comment == "" {
		comment = DefaultComment
	}

	return SigningRequest{
		clauses: normalized,
		signer:  strings.ToLower(signer),
		comment: comment,
	}, nil
}

// Clauses returns a copy of the ordered clause list.
func (r SigningRequest) Clauses() []Clause {
	out := make([]Clause, len(r.clauses))
	copy(out, r.clauses)
	return out
}

func (r SigningRequest) Signer() string {
	return r.signer
}

func (r SigningRequest) Comment() string {
	return r.comment
}

// Handle identifies a submitted transaction.
type Handle struct {
	TxID   string `json:"txid"`
	Signer string `json:"signer"`
}

// Receipt is the on-chain execution result of a transaction.
type Receipt struct {
	TxID           string `json:"txId"`
	Reverted       bool   `json:"reverted"`
	BlockID        string `json:"blockId"`
	BlockNumber    uint64 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
	GasUsed        uint64 `json:"gasUsed"`
	GasPayer       string `json:"gasPayer"`
	Paid           string `json:"paid"`
	Reward         string `json:"reward"`
	Origin         string `json:"origin"`
}
