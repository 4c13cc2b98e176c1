package txtracker

import (
	"fmt"
	"math/big"

	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// State is the lifecycle position of a tracked transaction.
type State int

const (
	StateSubmitted State = iota + 1
	StateHashed
	StateReceipted
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	case StateHashed:
		return "hashed"
	case StateReceipted:
		return "receipted"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, error) {
	for st := StateSubmitted; st <= StateFailed; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction state %q", s)
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Request holds the caller-supplied fields of eth_sendTransaction. Nil fields
// are filled in by the tracker.
type Request struct {
	From     *common.Address
	To       *common.Address
	Gas      *uint64
	GasPrice *big.Int
	Value    *big.Int
	Data     []byte
}

// PendingTransaction is the tracker's record of one eth_sendTransaction call.
// Published copies are never mutated.
type PendingTransaction struct {
	ID            string
	ChainID       uint64
	Request       Request
	State         State
	Nonce         uint64
	Hash          common.Hash
	Receipt       *types.Receipt
	Confirmations uint64
	Err           error
}

// transition applies ev to p. done reports that tracking must stop: the
// transaction failed or gained more than threshold confirmations. Events that
// do not fit the current state leave p unchanged.
func transition(p PendingTransaction, ev walletctx.SendEvent, threshold uint64) (next PendingTransaction, done bool) {
	if p.State == StateFailed {
		return p, true
	}

	if ev.Kind == walletctx.SendEventError {
		p.State = StateFailed
		p.Err = ev.Err
		if ev.Hash != (common.Hash{}) {
			p.Hash = ev.Hash
		}
		return p, true
	}

	switch {
	case ev.Kind == walletctx.SendEventHash && p.State == StateSubmitted:
		p.State = StateHashed
		p.Hash = ev.Hash

	case ev.Kind == walletctx.SendEventReceipt && (p.State == StateSubmitted || p.State == StateHashed):
		p.State = StateReceipted
		p.Receipt = ev.Receipt
		if p.Hash == (common.Hash{}) {
			p.Hash = ev.Hash
		}

	case ev.Kind == walletctx.SendEventConfirmation && (p.State == StateReceipted || p.State == StateConfirmed):
		if ev.Confirmations <= p.Confirmations {
			return p, false
		}
		p.State = StateConfirmed
		p.Confirmations = ev.Confirmations
		if ev.Receipt != nil {
			p.Receipt = ev.Receipt
		}
		return p, p.Confirmations > threshold
	}

	return p, false
}
