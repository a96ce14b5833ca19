package handler

import (
	"context"
	"net/http"
	"vearn/internal/certificate"
	"vearn/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name VearnService . VearnService
type VearnService interface {
	Connect(ctx context.Context, cert certificate.Certificate, walletID string) (core.Session, error)
	ConnectWithSigner(ctx context.Context, walletID, signerHint string) (core.Session, error)
	Authorize(ctx context.Context, token string) (string, error)
	FetchBalance(ctx context.Context, account string) (core.Balance, error)
	FetchConfig(ctx context.Context, account string) (core.TraderConfig, error)
	SaveReserveBalance(ctx context.Context, account, amount string) (core.TxResult, error)
	SaveConfig(ctx context.Context, account, triggerBalance, reserveBalance string) (core.TxResult, error)
	TrackTransaction(ctx context.Context, account, txID, comment string) (core.TxResult, error)
	History(ctx context.Context, account string) ([]core.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
