package core

import (
	"context"
	"time"
	"vearn/internal/certificate"
	"vearn/internal/repository"
	"vearn/internal/thor"
	"vearn/internal/txn"
	tokenIssuer "vearn/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveAccount(ctx context.Context, account repository.Account) error
	GetAccount(ctx context.Context, address string) (repository.Account, error)
	SaveTransaction(ctx context.Context, record repository.TransactionRecord) error
	GetHistory(ctx context.Context, account string) ([]repository.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	Subject(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Account(ctx context.Context, address string) (*thor.Account, error)
	Call(ctx context.Context, caller string, clauses []txn.Clause) ([]thor.CallResult, error)
	Receipts(ctx context.Context, txIDs []string) (map[string]*txn.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name TxManager . TxManager
type TxManager interface {
	Execute(ctx context.Context, clauses []txn.Clause, signer, comment string, maxAttempts int, observe txn.Observer) (txn.Status, error)
	AwaitReceipt(ctx context.Context, handle txn.Handle, maxAttempts int) (*txn.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name CertSigner . CertSigner
type CertSigner interface {
	SignCert(ctx context.Context, cert certificate.Certificate) (certificate.Certificate, error)
}

//counterfeiter:generate -o fake -fake-name Metrics . Metrics
type Metrics interface {
	ObserveTransaction(state string)
	ObserveConfirmation(state string, elapsed time.Duration)
}
