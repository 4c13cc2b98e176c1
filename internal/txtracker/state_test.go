package txtracker

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	hash := common.HexToHash("0xabc")
	receipt := &types.Receipt{TxHash: hash, BlockNumber: big.NewInt(10), Status: types.ReceiptStatusSuccessful}
	boom := errors.New("boom")

	tests := []struct {
		name      string
		from      PendingTransaction
		event     walletctx.SendEvent
		wantState State
		wantConfs uint64
		wantDone  bool
	}{
		{
			name:      "hash moves a submitted transaction forward",
			from:      PendingTransaction{State: StateSubmitted},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventHash, Hash: hash},
			wantState: StateHashed,
		},
		{
			name:      "receipt can arrive before the hash",
			from:      PendingTransaction{State: StateSubmitted},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventReceipt, Hash: hash, Receipt: receipt},
			wantState: StateReceipted,
		},
		{
			name:      "confirmation before any receipt is ignored",
			from:      PendingTransaction{State: StateHashed, Hash: hash},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: 1},
			wantState: StateHashed,
		},
		{
			name:      "first confirmation",
			from:      PendingTransaction{State: StateReceipted, Hash: hash, Receipt: receipt},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: 1},
			wantState: StateConfirmed,
			wantConfs: 1,
		},
		{
			name:      "reaching the threshold keeps tracking",
			from:      PendingTransaction{State: StateConfirmed, Hash: hash, Confirmations: 4},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: 5},
			wantState: StateConfirmed,
			wantConfs: 5,
		},
		{
			name:      "passing the threshold ends tracking",
			from:      PendingTransaction{State: StateConfirmed, Hash: hash, Confirmations: 5},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: 6},
			wantState: StateConfirmed,
			wantConfs: 6,
			wantDone:  true,
		},
		{
			name:      "stale confirmation count is ignored",
			from:      PendingTransaction{State: StateConfirmed, Hash: hash, Confirmations: 3},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: 2},
			wantState: StateConfirmed,
			wantConfs: 3,
		},
		{
			name:      "second hash is ignored",
			from:      PendingTransaction{State: StateReceipted, Hash: hash},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventHash, Hash: common.HexToHash("0xdef")},
			wantState: StateReceipted,
		},
		{
			name:      "error fails from any live state",
			from:      PendingTransaction{State: StateConfirmed, Hash: hash, Confirmations: 2},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventError, Err: boom},
			wantState: StateFailed,
			wantConfs: 2,
			wantDone:  true,
		},
		{
			name:      "failed is terminal",
			from:      PendingTransaction{State: StateFailed, Err: boom},
			event:     walletctx.SendEvent{Kind: walletctx.SendEventHash, Hash: hash},
			wantState: StateFailed,
			wantDone:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, done := transition(tt.from, tt.event, defaultConfirmationThreshold)

			assert.Equal(t, tt.wantState, next.State)
			assert.Equal(t, tt.wantConfs, next.Confirmations)
			assert.Equal(t, tt.wantDone, done)
		})
	}

	t.Run("error keeps its cause and hash", func(t *testing.T) {
		next, _ := transition(
			PendingTransaction{State: StateReceipted, Hash: hash},
			walletctx.SendEvent{Kind: walletctx.SendEventError, Err: boom},
			defaultConfirmationThreshold,
		)

		assert.ErrorIs(t, next.Err, boom)
		assert.Equal(t, hash, next.Hash)
	})

	t.Run("confirmations past the threshold change nothing once done", func(t *testing.T) {
		p := PendingTransaction{State: StateReceipted, Hash: hash, Receipt: receipt}

		var done bool
		for n := uint64(1); !done; n++ {
			p, done = transition(p, walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: n}, defaultConfirmationThreshold)
		}
		assert.Equal(t, uint64(defaultConfirmationThreshold+1), p.Confirmations)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "hashed", StateHashed.String())
	assert.Equal(t, "receipted", StateReceipted.String())
	assert.Equal(t, "confirmed", StateConfirmed.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(0).String())
}

func TestParseState(t *testing.T) {
	for st := StateSubmitted; st <= StateFailed; st++ {
		parsed, err := ParseState(st.String())
		assert.NoError(t, err)
		assert.Equal(t, st, parsed)
	}

	_, err := ParseState("mined")
	assert.Error(t, err)
}
