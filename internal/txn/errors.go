package txn

import (
	"errors"
	"fmt"
)

var ErrSignerDeclined error = errors.New("signer declined the request")
var ErrReverted error = errors.New("transaction reverted")
var ErrNotFound error = errors.New("transaction not found")
var ErrEmptyTxID error = errors.New("signer returned an empty transaction id")

const (
	RevertedMessage = "The transaction has been reverted."
	NotFoundMessage = "Transaction not found."
	DeclinedMessage = "The signing request was declined."
)

// RevertedError carries the receipt of a transaction the chain reverted.
type RevertedError struct {
	TxID    string
	Receipt *Receipt
}

func (e *RevertedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrReverted.Error(), e.TxID)
}

func (e *RevertedError) Is(target error) bool {
	return target == ErrReverted
}

// NotFoundError is returned when no receipt showed up within Attempts ticks.
type NotFoundError struct {
	TxID     string
	Attempts int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s after %d blocks", ErrNotFound.Error(), e.TxID, e.Attempts)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UserMessage maps lifecycle errors to the text shown to wallet users.
// Other errors yield an empty string.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrReverted):
		return RevertedMessage
	case errors.Is(err, ErrNotFound):
		return NotFoundMessage
	case errors.Is(err, ErrSignerDeclined):
		return DeclinedMessage
	}
	return ""
}
