package txtracker

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/walletctx"
	walletctxtest "github.com/gabapcia/walletbridge/internal/walletctx/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

// fakeHandle forwards scripted events until it is released or the submit
// context ends, then closes its events channel like the real adapter does.
type fakeHandle struct {
	in       chan walletctx.SendEvent
	events   chan walletctx.SendEvent
	released chan struct{}
	once     sync.Once
}

func newFakeHandle(ctx context.Context) *fakeHandle {
	h := &fakeHandle{
		in:       make(chan walletctx.SendEvent, 16),
		events:   make(chan walletctx.SendEvent),
		released: make(chan struct{}),
	}

	go func() {
		defer close(h.events)
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.released:
				return
			case ev := <-h.in:
				select {
				case h.events <- ev:
				case <-ctx.Done():
					return
				case <-h.released:
					return
				}
			}
		}
	}()

	return h
}

func (h *fakeHandle) Events() <-chan walletctx.SendEvent { return h.events }

func (h *fakeHandle) Release() { h.once.Do(func() { close(h.released) }) }

func (h *fakeHandle) emit(evs ...walletctx.SendEvent) {
	for _, ev := range evs {
		h.in <- ev
	}
}

type fixture struct {
	client  *walletctxtest.ChainClient
	snap    *walletctx.Snapshot
	nonces  *NonceManager
	tracker *Tracker
	updates chan PendingTransaction

	mu     sync.Mutex
	handle *fakeHandle
	sent   *types.Transaction
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	account, err := walletctx.NewAccount(testKey)
	require.NoError(t, err)

	f := &fixture{
		client:  walletctxtest.NewChainClient(t),
		nonces:  NewNonceManager(),
		updates: make(chan PendingTransaction, 32),
	}
	f.snap = &walletctx.Snapshot{
		Network: networkregistry.Network{ChainID: 11155111, Name: "Sepolia"},
		Client:  f.client,
		Account: account,
		ChainID: big.NewInt(11155111),
	}

	f.tracker = New(append([]Option{WithNonceManager(f.nonces)}, opts...)...)
	sub := f.tracker.Subscribe(f.updates)
	t.Cleanup(func() {
		f.tracker.Close()
		sub.Unsubscribe()
	})

	return f
}

// expectSend primes the client for one send and scripts the handle's events.
func (f *fixture) expectSend(pending uint64, script ...walletctx.SendEvent) {
	f.client.EXPECT().PendingNonceAt(mock.Anything, f.snap.Account.Address()).Return(pending, nil).Once()
	f.client.EXPECT().SuggestGasPrice(mock.Anything).Return(big.NewInt(1_000_000_000), nil).Once()
	f.client.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	f.client.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, tx *types.Transaction) walletctx.SendHandle {
		h := newFakeHandle(ctx)
		h.emit(script...)

		f.mu.Lock()
		f.handle, f.sent = h, tx
		f.mu.Unlock()
		return h
	}).Once()
}

func (f *fixture) lastHandle() *fakeHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handle
}

func (f *fixture) sentTx() *types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent
}

func (f *fixture) next(t *testing.T) PendingTransaction {
	t.Helper()

	select {
	case p := <-f.updates:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("no transaction update published")
		return PendingTransaction{}
	}
}

func (f *fixture) waitIdle(t *testing.T) {
	t.Helper()
	assert.Eventually(t, func() bool { return len(f.tracker.Active()) == 0 }, 5*time.Second, 5*time.Millisecond)
}

func hashEvent(h common.Hash) walletctx.SendEvent {
	return walletctx.SendEvent{Kind: walletctx.SendEventHash, Hash: h}
}

func receiptEvent(h common.Hash) walletctx.SendEvent {
	return walletctx.SendEvent{
		Kind:    walletctx.SendEventReceipt,
		Hash:    h,
		Receipt: &types.Receipt{TxHash: h, BlockNumber: big.NewInt(100), Status: types.ReceiptStatusSuccessful},
	}
}

func confirmationEvent(n uint64) walletctx.SendEvent {
	return walletctx.SendEvent{Kind: walletctx.SendEventConfirmation, Confirmations: n}
}

func TestTracker_Send(t *testing.T) {
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	hash := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")

	t.Run("returns the hash and follows the transaction past the threshold", func(t *testing.T) {
		f := newFixture(t)
		f.expectSend(7, hashEvent(hash))

		got, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to, Value: big.NewInt(42)})
		require.NoError(t, err)
		assert.Equal(t, hash, got)

		sent := f.sentTx()
		assert.Equal(t, uint64(7), sent.Nonce())
		assert.Equal(t, uint64(21000), sent.Gas())
		assert.Equal(t, int64(1_000_000_000), sent.GasPrice().Int64())
		assert.Equal(t, int64(42), sent.Value().Int64())
		from, err := types.Sender(types.LatestSignerForChainID(f.snap.ChainID), sent)
		require.NoError(t, err)
		assert.Equal(t, f.snap.Account.Address(), from)

		hashed := f.next(t)
		assert.Equal(t, StateHashed, hashed.State)
		assert.Equal(t, hash, hashed.Hash)
		assert.Equal(t, uint64(11155111), hashed.ChainID)

		stored, ok := f.tracker.Get(hashed.ID)
		require.True(t, ok)
		assert.Equal(t, hash, stored.Hash)

		f.lastHandle().emit(receiptEvent(hash))
		assert.Equal(t, StateReceipted, f.next(t).State)

		for n := uint64(1); n <= defaultConfirmationThreshold+1; n++ {
			f.lastHandle().emit(confirmationEvent(n))

			p := f.next(t)
			assert.Equal(t, StateConfirmed, p.State)
			assert.Equal(t, n, p.Confirmations)
		}

		f.waitIdle(t)
		_, ok = f.tracker.Get(hashed.ID)
		assert.False(t, ok)

		// Nothing follows once the record is dropped.
		f.lastHandle().emit(confirmationEvent(defaultConfirmationThreshold + 2))
		select {
		case p := <-f.updates:
			t.Fatalf("unexpected update after tracking ended: %+v", p)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("keeps the client open across a network switch until settled", func(t *testing.T) {
		f := newFixture(t, WithConfirmationThreshold(1))
		holesky := walletctxtest.NewChainClient(t)

		dialer := walletctxtest.NewDialer(t)
		dialer.EXPECT().Dial(mock.Anything, "https://sepolia.example/rpc").Return(f.client, nil).Once()
		dialer.EXPECT().Dial(mock.Anything, "https://holesky.example/rpc").Return(holesky, nil).Once()
		f.client.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil).Once()
		holesky.EXPECT().ChainID(mock.Anything).Return(big.NewInt(17000), nil).Once()
		holesky.EXPECT().Close().Return().Maybe()

		h, err := walletctx.New(t.Context(), dialer, networkregistry.Network{ChainID: 11155111, Name: "Sepolia", RPCURL: "https://sepolia.example/rpc"}, testKey)
		require.NoError(t, err)
		defer h.Close()

		f.expectSend(0, hashEvent(hash))
		snap, release := h.Acquire()
		_, err = f.tracker.Send(t.Context(), snap, Request{To: &to})
		require.NoError(t, err)
		release()
		assert.Equal(t, StateHashed, f.next(t).State)

		_, err = h.Switch(t.Context(), networkregistry.Network{ChainID: 17000, Name: "Holesky", RPCURL: "https://holesky.example/rpc"})
		require.NoError(t, err)
		f.client.AssertNotCalled(t, "Close")

		closed := make(chan struct{})
		f.client.EXPECT().Close().Run(func() { close(closed) }).Return().Once()

		f.lastHandle().emit(receiptEvent(hash), confirmationEvent(1), confirmationEvent(2))
		select {
		case <-closed:
		case <-time.After(5 * time.Second):
			t.Fatal("retired client not closed after the transaction settled")
		}
	})

	t.Run("fills nothing the caller already set", func(t *testing.T) {
		f := newFixture(t)
		gas := uint64(50_000)

		f.client.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(0), nil).Once()
		f.client.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, tx *types.Transaction) walletctx.SendHandle {
			assert.Equal(t, gas, tx.Gas())
			assert.Equal(t, int64(9), tx.GasPrice().Int64())
			assert.Equal(t, []byte{0xca, 0xfe}, tx.Data())

			h := newFakeHandle(ctx)
			h.emit(hashEvent(hash))
			return h
		}).Once()

		from := f.snap.Account.Address()
		_, err := f.tracker.Send(t.Context(), f.snap, Request{
			From:     &from,
			To:       &to,
			Gas:      &gas,
			GasPrice: big.NewInt(9),
			Data:     []byte{0xca, 0xfe},
		})
		require.NoError(t, err)
	})

	t.Run("two quick sends use consecutive nonces", func(t *testing.T) {
		f := newFixture(t)
		f.expectSend(3, hashEvent(hash))
		f.expectSend(3, hashEvent(common.HexToHash("0x22")))

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		require.NoError(t, err)
		first := f.sentTx().Nonce()

		_, err = f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		require.NoError(t, err)
		second := f.sentTx().Nonce()

		assert.Equal(t, uint64(3), first)
		assert.Equal(t, uint64(4), second)
	})

	t.Run("times out when no hash arrives", func(t *testing.T) {
		f := newFixture(t, WithSubmissionTimeout(20*time.Millisecond))
		f.expectSend(0)

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.ErrorIs(t, err, ErrSubmissionTimeout)

		failed := f.next(t)
		assert.Equal(t, StateFailed, failed.State)
		assert.ErrorIs(t, failed.Err, ErrSubmissionTimeout)

		f.waitIdle(t)
		assert.Empty(t, f.nonces.Reserved(11155111, f.snap.Account.Address()))
	})

	t.Run("broadcast failure frees the nonce", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("insufficient funds for gas * price + value")
		f.expectSend(4, walletctx.SendEvent{Kind: walletctx.SendEventError, Err: boom})

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.ErrorIs(t, err, boom)

		failed := f.next(t)
		assert.Equal(t, StateFailed, failed.State)

		f.waitIdle(t)
		assert.Empty(t, f.nonces.Reserved(11155111, f.snap.Account.Address()))
	})

	t.Run("failure after the hash is published but not returned", func(t *testing.T) {
		f := newFixture(t)
		f.expectSend(0, hashEvent(hash), receiptEvent(hash), walletctx.SendEvent{
			Kind: walletctx.SendEventError,
			Hash: hash,
			Err:  errors.New("execution reverted"),
		})

		got, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		require.NoError(t, err)
		assert.Equal(t, hash, got)

		var last PendingTransaction
		for last.State != StateFailed {
			last = f.next(t)
		}
		assert.ErrorContains(t, last.Err, "execution reverted")
		assert.Equal(t, hash, last.Hash)
	})

	t.Run("rejected while the toggle is on", func(t *testing.T) {
		f := newFixture(t)
		f.tracker.SetRejectTransactions(true)

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.ErrorIs(t, err, ErrUserRejected)
		assert.Empty(t, f.tracker.Active())

		f.tracker.SetRejectTransactions(false)
		f.expectSend(0, hashEvent(hash))

		_, err = f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.NoError(t, err)
	})

	t.Run("rejection reported by the handle is never published", func(t *testing.T) {
		f := newFixture(t)
		f.expectSend(0, walletctx.SendEvent{Kind: walletctx.SendEventError, Err: fmt.Errorf("signer: %w", ErrUserRejected)})

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.ErrorIs(t, err, ErrUserRejected)

		f.waitIdle(t)
		select {
		case p := <-f.updates:
			t.Fatalf("rejected transaction was published: %+v", p)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("refuses a from address the wallet does not hold", func(t *testing.T) {
		f := newFixture(t)
		other := common.HexToAddress("0x00000000000000000000000000000000000000bb")

		_, err := f.tracker.Send(t.Context(), f.snap, Request{From: &other, To: &to})
		assert.ErrorIs(t, err, walletctx.ErrAccountMismatch)
	})

	t.Run("gas estimation errors free the nonce", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("execution reverted")

		f.client.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(2), nil).Once()
		f.client.EXPECT().SuggestGasPrice(mock.Anything).Return(big.NewInt(1), nil).Once()
		f.client.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(0), boom).Once()

		_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, f.nonces.Reserved(11155111, f.snap.Account.Address()))
	})

	t.Run("close fails sends still waiting for a hash", func(t *testing.T) {
		f := newFixture(t)
		f.expectSend(0)

		errCh := make(chan error, 1)
		go func() {
			_, err := f.tracker.Send(t.Context(), f.snap, Request{To: &to})
			errCh <- err
		}()

		assert.Eventually(t, func() bool { return len(f.tracker.Active()) == 1 }, 5*time.Second, 5*time.Millisecond)
		f.tracker.Close()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrClosed)
		case <-time.After(5 * time.Second):
			t.Fatal("send did not return after close")
		}
		assert.Empty(t, f.tracker.Active())
	})
}
