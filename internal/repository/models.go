package repository

import (
	"time"
	"vearn/internal/txn"
)

// Account is a wallet that authenticated with a signed certificate.
type Account struct {
	Address       string `gorm:"size:42;primaryKey"` // lowercase 0x address
	WalletID      string `gorm:"size:32;not null;default:''"`
	CertTimestamp int64  `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionRecord is the last known lifecycle state of one transaction.
type TransactionRecord struct {
	TxID        string `gorm:"size:66;primaryKey"` // 0x + 64 hex chars
	Account     string `gorm:"size:42;index;not null"`
	Comment     string `gorm:"type:text;not null;default:''"`
	State       string `gorm:"size:16;index;not null"`
	Reverted    bool   `gorm:"not null;default:false"`
	BlockID     string `gorm:"size:66"`
	BlockNumber uint64
	GasUsed     uint64
	Paid        string `gorm:"size:100"` // wei, string to handle large numbers
	Error       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Pending reports whether the chain outcome is still unknown.
func (r TransactionRecord) Pending() bool {
	return r.State == txn.StatePending.String()
}

// NewTransactionRecord snapshots s for account. Statuses without a
// transaction id have nothing to key on and yield ok == false.
func NewTransactionRecord(account string, s txn.Status) (TransactionRecord, bool) {
	if s.Handle.TxID == "" {
		return TransactionRecord{}, false
	}

	record := TransactionRecord{
		TxID:    s.Handle.TxID,
		Account: account,
		Comment: s.Request.Comment(),
		State:   s.State.String(),
	}
	if s.Receipt != nil {
		record.Reverted = s.Receipt.Reverted
		record.BlockID = s.Receipt.BlockID
		record.BlockNumber = s.Receipt.BlockNumber
		record.GasUsed = s.Receipt.GasUsed
		record.Paid = s.Receipt.Paid
	}
	if s.Err != nil {
		record.Error = txn.UserMessage(s.Err)
		if record.Error == "" {
			record.Error = s.Err.Error()
		}
	}
	return record, true
}
