package txn

import "errors"

type State int

const (
	StateBuilt State = iota
	StateSubmitted
	StatePending
	StateConfirmed
	StateReverted
	StateNotFound
	StateFailed
)

var stateNames = [...]string{
	StateBuilt:     "built",
	StateSubmitted: "submitted",
	StatePending:   "pending",
	StateConfirmed: "confirmed",
	StateReverted:  "reverted",
	StateNotFound:  "not_found",
	StateFailed:    "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s >= StateConfirmed
}

// Status is a snapshot of one transaction's lifecycle. Transitions return a
// new value and leave the receiver untouched.
type Status struct {
	State   State
	Request SigningRequest
	Handle  Handle
	Receipt *Receipt
	Err     error
}

// Built is the first status of every request.
func Built(req SigningRequest) Status {
	return Status{State: StateBuilt, Request: req}
}

// Submit marks the request as handed to the signer.
func (s Status) Submit() Status {
	s.State = StateSubmitted
	return s
}

// Accept records the handle returned by the signer.
func (s Status) Accept(h Handle) Status {
	s.State = StatePending
	s.Handle = h
	return s
}

// Resolve derives the terminal state from the outcome of AwaitReceipt.
func (s Status) Resolve(receipt *Receipt, err error) Status {
	s.Receipt = receipt
	s.Err = err

	var reverted *RevertedError
	switch {
	case err == nil:
		s.State = StateConfirmed
	case errors.As(err, &reverted):
		s.State = StateReverted
		s.Receipt = reverted.Receipt
	case errors.Is(err, ErrNotFound):
		s.State = StateNotFound
	default:
		s.State = StateFailed
	}
	return s
}

// Fail ends the lifecycle with err, e.g. when the signer declines.
func (s Status) Fail(err error) Status {
	s.State = StateFailed
	s.Err = err
	return s
}
