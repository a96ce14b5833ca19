package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"vearn/internal/db"
)

var ErrAccountNotFound error = errors.New("account not found")

type TransactionRepository struct {
	db Database
}

func NewTransactionRepository(db Database) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

func (r *TransactionRepository) Migrate() error {
	err := r.db.MigrateTable(&Account{}, &TransactionRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TransactionRepository) SaveAccount(ctx context.Context, account Account) error {
	account.Address = strings.ToLower(account.Address)
	err := r.db.Upsert(ctx, "address", &account)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetAccount(ctx context.Context, address string) (Account, error) {
	var account Account

	err := r.db.GetOneBy(ctx, "address", strings.ToLower(address), &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by address: %w", err)
	}

	return account, nil
}

// SaveTransaction stores record, replacing any earlier state of the same
// transaction.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, record TransactionRecord) error {
	record.TxID = strings.ToLower(record.TxID)
	record.Account = strings.ToLower(record.Account)
	err := r.db.Upsert(ctx, "tx_id", &record)
	if err != nil {
		return fmt.Errorf("save transaction %s: %w", record.TxID, err)
	}

	return nil
}

// GetHistory returns the transactions of account, newest first.
func (r *TransactionRepository) GetHistory(ctx context.Context, account string) ([]TransactionRecord, error) {
	records := []TransactionRecord{}

	err := r.db.GetAllBy(ctx, "account", strings.ToLower(account), "created_at desc", &records)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return records, nil
}

func (r *TransactionRepository) GetTransactionsByID(ctx context.Context, txIDs []string) ([]TransactionRecord, error) {
	records := []TransactionRecord{}
	if len(txIDs) == 0 {
		return records, nil
	}

	ids := make([]string, len(txIDs))
	for i, id := range txIDs {
		ids[i] = strings.ToLower(id)
	}

	err := r.db.GetAllBy(ctx, "tx_id", ids, "", &records)
	if err != nil {
		return records, fmt.Errorf("get transactions by id: %w", err)
	}

	return records, nil
}
