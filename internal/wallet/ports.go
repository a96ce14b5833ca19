package wallet

import (
	"context"
	"vearn/internal/thor"
	"vearn/internal/txn"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ThorClient . ThorClient
type ThorClient interface {
	ChainTag(ctx context.Context) (byte, error)
	BestBlock(ctx context.Context) (*thor.Block, error)
	Call(ctx context.Context, caller string, clauses []txn.Clause) ([]thor.CallResult, error)
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)
}
