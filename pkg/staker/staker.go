// Package staker defines the stake coordinator: the single component allowed to submit
// stake transactions, serialized by a single-flight guard.
package staker

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// ErrReplacement indicates that a stuck transaction couldn't be replaced.
var ErrReplacement = errors.New("replacing stuck transaction")

// State is the state of a stake attempt.
type State int

// Stake attempt states.
const (
	Idle State = iota
	Submitting
	AwaitingConfirmation
	Confirmed
	TimedOut
	Failed
)

var stateNames = map[State]string{
	Idle:                 "idle",
	Submitting:           "submitting",
	AwaitingConfirmation: "awaiting_confirmation",
	Confirmed:            "confirmed",
	TimedOut:             "timed_out",
	Failed:               "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether s ends an attempt.
func (s State) Terminal() bool {
	return s == Confirmed || s == TimedOut || s == Failed
}

// Replacement is the outcome of replacing a stuck transaction with a zero value
// self-transfer that reuses its nonce.
type Replacement struct {
	StuckTxHash common.Hash
	// TxHash is the replacement transaction. It's empty when nothing was submitted.
	TxHash   common.Hash
	Nonce    uint64
	GasPrice *big.Int
	// Skipped is set when the stuck transaction was already mined or dropped.
	Skipped bool
	Err     error
}

// StakeAttempt is the record of one submission cycle. It's never persisted.
type StakeAttempt struct {
	ID          uuid.UUID
	State       State
	Amount      *big.Int
	GasPrice    *big.Int
	Nonce       uint64
	SubmittedAt time.Time
	TxHash      common.Hash
	Replacement *Replacement
	Err         error
}

// AttemptSummary is the JSON view of a finished StakeAttempt.
type AttemptSummary struct {
	ID          string     `json:"id"`
	State       State      `json:"state"`
	Amount      string     `json:"amount,omitempty"`
	GasPrice    string     `json:"gas_price,omitempty"`
	Nonce       *uint64    `json:"nonce,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	TxHash      string     `json:"tx_hash,omitempty"`
	Replacement string     `json:"replacement_tx_hash,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Summary returns the JSON view of the attempt.
func (a *StakeAttempt) Summary() AttemptSummary {
	s := AttemptSummary{
		ID:    a.ID.String(),
		State: a.State,
	}
	if a.Amount != nil {
		s.Amount = a.Amount.String()
	}
	if a.GasPrice != nil {
		s.GasPrice = a.GasPrice.String()
	}
	if !a.SubmittedAt.IsZero() {
		nonce, submittedAt := a.Nonce, a.SubmittedAt
		s.Nonce = &nonce
		s.SubmittedAt = &submittedAt
		s.TxHash = a.TxHash.Hex()
	}
	if a.Replacement != nil && a.Replacement.TxHash != (common.Hash{}) {
		s.Replacement = a.Replacement.TxHash.Hex()
	}
	if a.Err != nil {
		s.Error = a.Err.Error()
	}
	return s
}

// Status is a point in time view of the coordinator.
type Status struct {
	State        State           `json:"state"`
	Busy         bool            `json:"busy"`
	Attempts     uint64          `json:"attempts"`
	Confirmed    uint64          `json:"confirmed"`
	TimedOut     uint64          `json:"timed_out"`
	Failed       uint64          `json:"failed"`
	Skipped      uint64          `json:"skipped"`
	Dropped      uint64          `json:"dropped"`
	Replacements uint64          `json:"replacements"`
	LastAttempt  *AttemptSummary `json:"last_attempt,omitempty"`
}

// Coordinator drives stake attempts.
type Coordinator interface {
	// Attempt runs one stake attempt to a terminal state. It returns nil without doing
	// anything when another attempt is in flight.
	Attempt(context.Context) *StakeAttempt
	// Busy reports whether an attempt is in flight.
	Busy() bool
	// Status returns a snapshot of the coordinator.
	Status() Status
}

// Sink receives operator notifications. Delivery is best-effort.
type Sink interface {
	Send(ctx context.Context, text string)
}
