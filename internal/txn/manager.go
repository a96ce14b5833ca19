package txn

import (
	"context"
	"fmt"
)

// DefaultMaxAttempts is the number of blocks AwaitReceipt waits when the
// caller passes a non-positive budget.
const DefaultMaxAttempts = 5

// Observer receives every status transition of Execute.
type Observer func(Status)

// Manager submits signing requests and follows them until a final receipt.
// It holds no per-transaction state, so one Manager serves concurrent callers.
type Manager struct {
	signer Signer
	reader ChainReader
}

// NewManager is a constructor function for the Manager type.
func NewManager(signer Signer, reader ChainReader) *Manager {
	return &Manager{
		signer: signer,
		reader: reader,
	}
}

// Submit builds a signing request and delegates it to the signer exactly once.
func (m *Manager) Submit(ctx context.Context, clauses []Clause, signer, comment string) (Handle, error) {
	req, err := NewSigningRequest(clauses, signer, comment)
	if err != nil {
		return Handle{}, fmt.Errorf("build signing request: %w", err)
	}
	return m.SubmitRequest(ctx, req)
}

// SubmitRequest hands an already built request to the signer.
func (m *Manager) SubmitRequest(ctx context.Context, req SigningRequest) (Handle, error) {
	handle, err := m.signer.SignTx(ctx, req)
	if err != nil {
		return Handle{}, fmt.Errorf("sign tx: %w", err)
	}
	if handle.TxID == "" {
		return Handle{}, ErrEmptyTxID
	}
	return handle, nil
}

// AwaitReceipt waits for the next block before each receipt lookup and gives
// up after maxAttempts lookups. A reverted receipt ends the wait immediately.
func (m *Manager) AwaitReceipt(ctx context.Context, handle Handle, maxAttempts int) (*Receipt, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	ticker := m.reader.Ticker()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ticker.Next(ctx); err != nil {
			return nil, fmt.Errorf("wait for next block: %w", err)
		}

		receipt, err := m.reader.Receipt(ctx, handle.TxID)
		if err != nil {
			return nil, fmt.Errorf("get receipt %s: %w", handle.TxID, err)
		}
		if receipt == nil {
			continue
		}
		if receipt.Reverted {
			return nil, &RevertedError{TxID: handle.TxID, Receipt: receipt}
		}
		return receipt, nil
	}

	return nil, &NotFoundError{TxID: handle.TxID, Attempts: maxAttempts}
}

// Execute runs Submit and AwaitReceipt in sequence and reports each status to
// observe. The returned status is always terminal.
func (m *Manager) Execute(ctx context.Context, clauses []Clause, signer, comment string, maxAttempts int, observe Observer) (Status, error) {
	if observe == nil {
		observe = func(Status) {}
	}

	req, err := NewSigningRequest(clauses, signer, comment)
	if err != nil {
		return Status{State: StateFailed, Err: err}, fmt.Errorf("build signing request: %w", err)
	}

	status := Built(req)
	observe(status)

	status = status.Submit()
	observe(status)

	handle, err := m.SubmitRequest(ctx, req)
	if err != nil {
		status = status.Fail(err)
		observe(status)
		return status, err
	}

	status = status.Accept(handle)
	observe(status)

	receipt, err := m.AwaitReceipt(ctx, handle, maxAttempts)
	status = status.Resolve(receipt, err)
	observe(status)

	return status, err
}
