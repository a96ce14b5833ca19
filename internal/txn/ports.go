package txn

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Signer asks a wallet to sign and broadcast a request.
//
//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	SignTx(ctx context.Context, req SigningRequest) (Handle, error)
}

// ChainReader looks up receipts. Receipt returns nil, nil while the
// transaction is not yet in a block.
//
//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Receipt(ctx context.Context, txID string) (*Receipt, error)
	Ticker() Ticker
}

// Ticker resolves Next once per new block.
//
//counterfeiter:generate -o fake -fake-name Ticker . Ticker
type Ticker interface {
	Next(ctx context.Context) error
}
