package handler

import (
	"context"
	"errors"
	"net/http"
	"vearn/internal/contracts"
	"vearn/internal/core"
	"vearn/internal/txn"
	"vearn/internal/wallet"
	"vearn/pkg/units"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// errorResponse maps a service error to the status code and the error text
// the client is allowed to see.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrWalletNotConnected),
		errors.Is(err, core.ErrInvalidCertificate):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, units.ErrFormat),
		errors.Is(err, contracts.ErrAmountOutOfRange),
		errors.Is(err, core.ErrInvalidAccount),
		errors.Is(err, core.ErrInvalidTxID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, txn.ErrSignerDeclined):
		return http.StatusConflict, txn.UserMessage(err)
	case errors.Is(err, txn.ErrReverted),
		errors.Is(err, txn.ErrNotFound),
		errors.Is(err, core.ErrCallReverted):
		msg := txn.UserMessage(err)
		if msg == "" {
			msg = err.Error()
		}
		return http.StatusUnprocessableEntity, msg
	case errors.Is(err, wallet.ErrRelayTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, err.Error()
	}
	return http.StatusInternalServerError, "unexpected error occurred"
}
