package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"vearn/internal/certificate"
	"vearn/internal/contracts"
	"vearn/internal/repository"
	"vearn/internal/txn"
	tokenIssuer "vearn/pkg/jwt"
	"vearn/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var ErrWalletNotConnected error = errors.New("wallet is not connected")
var ErrInvalidCertificate error = errors.New("invalid certificate")
var ErrInvalidAccount error = errors.New("invalid account address")
var ErrCallReverted error = errors.New("contract call reverted")
var ErrInvalidTxID error = errors.New("invalid transaction id")

const (
	defaultCertMaxAge = 10 * time.Minute
	defaultTokenTTL   = 24 * time.Hour
)

// Vearn connects wallets and drives the trader contract flows on their behalf.
type Vearn struct {
	logs    *zap.SugaredLogger
	repo    Repository
	jwt     JWTIssuer
	chain   ChainService
	txs     TxManager
	signer  CertSigner
	metrics Metrics

	trader *contracts.Trader
	energy *contracts.Energy
	params *contracts.Params
	opts   Options
}

// NewVearn is a constructor function for the Vearn type.
func NewVearn(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	chain ChainService,
	txs TxManager,
	signer CertSigner,
	metrics Metrics,
	trader *contracts.Trader,
	energy *contracts.Energy,
	params *contracts.Params,
	opts Options,
) *Vearn {
	if opts.CertMaxAge <= 0 {
		opts.CertMaxAge = defaultCertMaxAge
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	if opts.ReceiptAttempts <= 0 {
		opts.ReceiptAttempts = txn.DefaultMaxAttempts
	}

	return &Vearn{
		logs:    logger,
		repo:    repo,
		jwt:     jwt,
		chain:   chain,
		txs:     txs,
		signer:  signer,
		metrics: metrics,
		trader:  trader,
		energy:  energy,
		params:  params,
		opts:    opts,
	}
}

// Connect verifies a signed identification certificate, remembers the account
// and returns a session token for it.
func (v *Vearn) Connect(ctx context.Context, cert certificate.Certificate, walletID string) (Session, error) {
	if err := v.checkCertificate(cert); err != nil {
		return Session{}, err
	}

	account := strings.ToLower(cert.Signer)
	err := v.repo.SaveAccount(ctx, repository.Account{
		Address:       account,
		WalletID:      walletID,
		CertTimestamp: cert.Timestamp,
	})
	if err != nil {
		return Session{}, fmt.Errorf("save account: %w", err)
	}

	token, err := v.jwt.Issue(tokenIssuer.TokenInfo{
		Subject:    account,
		WalletID:   walletID,
		Expiration: v.opts.TokenTTL,
	})
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	v.logs.Infow("wallet connected", "account", account, "wallet", walletID)
	return Session{Account: account, Token: token}, nil
}

// ConnectWithSigner asks the configured signer for the identification
// certificate and connects with it. signerHint may be empty.
func (v *Vearn) ConnectWithSigner(ctx context.Context, walletID, signerHint string) (Session, error) {
	unsigned := certificate.NewIdentification(v.opts.CertDomain, signerHint, 0)
	cert, err := v.signer.SignCert(ctx, unsigned)
	if err != nil {
		return Session{}, fmt.Errorf("sign certificate: %w", err)
	}
	return v.Connect(ctx, cert, walletID)
}

// Authorize resolves a session token to its account.
func (v *Vearn) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrWalletNotConnected
	}

	account, err := v.jwt.Subject(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWalletNotConnected, err)
	}

	if _, err := v.repo.GetAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrWalletNotConnected
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

func (v *Vearn) FetchBalance(ctx context.Context, account string) (Balance, error) {
	acc, err := v.chain.Account(ctx, account)
	if err != nil {
		return Balance{}, fmt.Errorf("get account balance: %w", err)
	}

	gasPrice, err := v.baseGasPrice(ctx)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Account:      strings.ToLower(account),
		VET:          units.Format(acc.Balance, units.Ether),
		VTHO:         units.Format(acc.Energy, units.Ether),
		BaseGasPrice: gasPrice.String(),
	}, nil
}

func (v *Vearn) FetchConfig(ctx context.Context, account string) (TraderConfig, error) {
	owner, err := toAddress(account)
	if err != nil {
		return TraderConfig{}, err
	}

	configClause, err := v.trader.AddressToConfig(owner)
	if err != nil {
		return TraderConfig{}, err
	}
	allowanceClause, err := v.energy.Allowance(owner, v.trader.Address())
	if err != nil {
		return TraderConfig{}, err
	}

	outputs, err := v.call(ctx, account, configClause, allowanceClause)
	if err != nil {
		return TraderConfig{}, err
	}

	config, err := v.trader.DecodeConfig(outputs[0])
	if err != nil {
		return TraderConfig{}, err
	}
	allowance, err := v.energy.DecodeAllowance(outputs[1])
	if err != nil {
		return TraderConfig{}, err
	}

	return TraderConfig{
		Account:        strings.ToLower(account),
		TriggerBalance: units.FormatUnits(config.TriggerBalance, units.Ether, v.opts.VTHODecimals),
		ReserveBalance: units.FormatUnits(config.ReserveBalance, units.Ether, v.opts.VTHODecimals),
		Registered:     allowance.Sign() > 0,
	}, nil
}

// SaveReserveBalance stores the reserve balance given in whole VTHO. Accounts
// that never approved the trader also get an unlimited VTHO approval in the
// same transaction.
func (v *Vearn) SaveReserveBalance(ctx context.Context, account, amount string) (TxResult, error) {
	reserve, err := units.ExpandTo18Decimals(amount)
	if err != nil {
		return TxResult{}, err
	}

	owner, err := toAddress(account)
	if err != nil {
		return TxResult{}, err
	}

	allowance, err := v.allowance(ctx, account, owner)
	if err != nil {
		return TxResult{}, err
	}

	save, err := v.trader.SaveReserveBalance(reserve)
	if err != nil {
		return TxResult{}, err
	}

	clauses := []txn.Clause{save}
	comment := contracts.SaveReserveComment
	if allowance.Sign() == 0 {
		approve, err := v.energy.Approve(v.trader.Address(), contracts.MaxUint256())
		if err != nil {
			return TxResult{}, err
		}
		clauses = append(clauses, approve)
		comment = contracts.RegisterComment()
	}

	v.logs.Infow("saving reserve balance",
		"account", account,
		"amount", amount,
		"register", allowance.Sign() == 0,
	)

	return v.execute(ctx, account, clauses, comment)
}

// SaveConfig stores both trader balances, given in whole VTHO.
func (v *Vearn) SaveConfig(ctx context.Context, account, triggerBalance, reserveBalance string) (TxResult, error) {
	trigger, err := units.ExpandTo18Decimals(triggerBalance)
	if err != nil {
		return TxResult{}, fmt.Errorf("trigger balance: %w", err)
	}
	reserve, err := units.ExpandTo18Decimals(reserveBalance)
	if err != nil {
		return TxResult{}, fmt.Errorf("reserve balance: %w", err)
	}

	clause, err := v.trader.SaveConfig(trigger, reserve)
	if err != nil {
		return TxResult{}, err
	}

	return v.execute(ctx, account, []txn.Clause{clause}, contracts.SaveConfigComment)
}

// TrackTransaction follows a transaction the wallet signed and broadcast
// without us, e.g. directly from the browser.
func (v *Vearn) TrackTransaction(ctx context.Context, account, txID, comment string) (TxResult, error) {
	if id, err := hexutil.Decode(txID); err != nil || len(id) != common.HashLength {
		return TxResult{}, fmt.Errorf("%w: %q", ErrInvalidTxID, txID)
	}

	handle := txn.Handle{TxID: strings.ToLower(txID), Signer: strings.ToLower(account)}
	status := txn.Status{State: txn.StatePending, Handle: handle}
	record := v.recorder(ctx, account, comment)
	record(status)

	receipt, err := v.txs.AwaitReceipt(ctx, handle, v.opts.ReceiptAttempts)
	status = status.Resolve(receipt, err)
	record(status)

	if err != nil {
		v.logs.Errorw("tracked transaction failed", "account", account, "tx_id", handle.TxID, "state", status.State.String(), "error", err)
	}
	return toResult(status), err
}

// History returns the account's transactions, newest first. Transactions still
// pending are refreshed from the chain before returning.
func (v *Vearn) History(ctx context.Context, account string) ([]TransactionRecord, error) {
	records, err := v.repo.GetHistory(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	pending := make([]string, 0)
	for _, r := range records {
		if r.Pending() {
			pending = append(pending, r.TxID)
		}
	}

	if len(pending) > 0 {
		receipts, err := v.chain.Receipts(ctx, pending)
		if err != nil {
			v.logs.Errorw("refreshing pending transactions", "error", err, "count", len(pending))
		}

		for i, r := range records {
			receipt, ok := receipts[r.TxID]
			if !ok {
				continue
			}
			r.State = txn.StateConfirmed.String()
			if receipt.Reverted {
				r.State = txn.StateReverted.String()
				r.Error = txn.RevertedMessage
			}
			r.Reverted = receipt.Reverted
			r.BlockID = receipt.BlockID
			r.BlockNumber = receipt.BlockNumber
			r.GasUsed = receipt.GasUsed
			r.Paid = receipt.Paid

			if err := v.repo.SaveTransaction(ctx, r); err != nil {
				v.logs.Errorw("failed to save refreshed transaction", "error", err, "tx_id", r.TxID)
			}
			records[i] = r
		}
	}

	return repoRecordsToRecords(records), nil
}

func (v *Vearn) execute(ctx context.Context, account string, clauses []txn.Clause, comment string) (TxResult, error) {
	status, err := v.txs.Execute(ctx, clauses, strings.ToLower(account), comment, v.opts.ReceiptAttempts, v.recorder(ctx, account, comment))
	if err != nil {
		v.logs.Errorw("transaction failed",
			"account", account,
			"state", status.State.String(),
			"tx_id", status.Handle.TxID,
			"error", err,
		)
		return toResult(status), err
	}

	v.logs.Infow("transaction confirmed",
		"account", account,
		"tx_id", status.Handle.TxID,
		"block", status.Receipt.BlockNumber,
	)
	return toResult(status), nil
}

// recorder persists every status that carries a transaction id and counts
// terminal states.
func (v *Vearn) recorder(ctx context.Context, account, comment string) txn.Observer {
	var acceptedAt time.Time

	return func(s txn.Status) {
		if s.State == txn.StatePending {
			acceptedAt = time.Now()
		}

		if record, ok := repository.NewTransactionRecord(account, s); ok {
			if record.Comment == "" {
				record.Comment = comment
			}
			if err := v.repo.SaveTransaction(ctx, record); err != nil {
				v.logs.Errorw("failed to save transaction", "error", err, "tx_id", record.TxID, "state", record.State)
			}
		}

		if !s.State.Terminal() {
			return
		}
		v.metrics.ObserveTransaction(s.State.String())
		if !acceptedAt.IsZero() {
			v.metrics.ObserveConfirmation(s.State.String(), time.Since(acceptedAt))
		}
	}
}

func (v *Vearn) allowance(ctx context.Context, account string, owner common.Address) (*big.Int, error) {
	clause, err := v.energy.Allowance(owner, v.trader.Address())
	if err != nil {
		return nil, err
	}
	outputs, err := v.call(ctx, account, clause)
	if err != nil {
		return nil, err
	}
	return v.energy.DecodeAllowance(outputs[0])
}

func (v *Vearn) baseGasPrice(ctx context.Context) (*big.Int, error) {
	clause, err := v.params.Get(contracts.BaseGasPriceKey)
	if err != nil {
		return nil, err
	}
	outputs, err := v.call(ctx, "", clause)
	if err != nil {
		return nil, fmt.Errorf("base gas price: %w", err)
	}
	return v.params.DecodeValue(outputs[0])
}

// call runs read-only clauses and returns their outputs in order.
func (v *Vearn) call(ctx context.Context, caller string, clauses ...txn.Clause) ([]string, error) {
	results, err := v.chain.Call(ctx, caller, clauses)
	if err != nil {
		return nil, fmt.Errorf("call contract: %w", err)
	}
	if len(results) != len(clauses) {
		return nil, fmt.Errorf("call contract: got %d results for %d clauses", len(results), len(clauses))
	}

	outputs := make([]string, len(results))
	for i, r := range results {
		if r.Reverted {
			return nil, fmt.Errorf("%w: clause %d: %s", ErrCallReverted, i, r.VMError)
		}
		outputs[i] = r.Data
	}
	return outputs, nil
}

func (v *Vearn) checkCertificate(cert certificate.Certificate) error {
	if cert.Purpose != certificate.PurposeIdentification {
		return fmt.Errorf("%w: purpose %q", ErrInvalidCertificate, cert.Purpose)
	}
	if v.opts.CertDomain != "" && cert.Domain != v.opts.CertDomain {
		return fmt.Errorf("%w: domain %q", ErrInvalidCertificate, cert.Domain)
	}

	age := time.Since(time.Unix(cert.Timestamp, 0))
	if age > v.opts.CertMaxAge || age < -v.opts.CertMaxAge {
		return fmt.Errorf("%w: timestamp %d out of range", ErrInvalidCertificate, cert.Timestamp)
	}

	if err := certificate.Verify(cert); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCertificate, err)
	}
	return nil
}

func toAddress(account string) (common.Address, error) {
	if !common.IsHexAddress(account) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAccount, account)
	}
	return common.HexToAddress(account), nil
}

func toResult(s txn.Status) TxResult {
	result := TxResult{
		TxID:    s.Handle.TxID,
		State:   s.State.String(),
		Message: txn.UserMessage(s.Err),
	}
	if s.Receipt != nil {
		result.Reverted = s.Receipt.Reverted
		result.BlockNumber = s.Receipt.BlockNumber
		result.GasUsed = s.Receipt.GasUsed
	}
	return result
}

func repoRecordsToRecords(records []repository.TransactionRecord) []TransactionRecord {
	out := make([]TransactionRecord, len(records))
	for i, r := range records {
		out[i] = TransactionRecord{
			TxID:        r.TxID,
			Comment:     r.Comment,
			State:       r.State,
			Reverted:    r.Reverted,
			BlockID:     r.BlockID,
			BlockNumber: r.BlockNumber,
			GasUsed:     r.GasUsed,
			Paid:        r.Paid,
			Error:       r.Error,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return out
}
