package bridge

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/gabapcia/walletbridge/internal/dispatcher"
	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/txtracker"
	walletctxtest "github.com/gabapcia/walletbridge/internal/walletctx/mocks"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	descriptors = `{
		"11155111": {"chainId": 11155111, "name": "Sepolia", "rpcUrl": "https://sepolia.example/rpc"},
		"17000": {"chainId": 17000, "name": "Holesky", "rpcUrl": "https://holesky.example/rpc"}
	}`
)

type fixture struct {
	bridge *Bridge
	dialer *walletctxtest.Dialer
	client *walletctxtest.ChainClient
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	registry, err := networkregistry.New(networkregistry.WithDescriptors(strings.NewReader(descriptors)))
	require.NoError(t, err)

	f := &fixture{
		dialer: walletctxtest.NewDialer(t),
		client: walletctxtest.NewChainClient(t),
	}
	f.dialer.EXPECT().Dial(mock.Anything, "https://sepolia.example/rpc").Return(f.client, nil).Once()
	f.client.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil)
	f.client.EXPECT().Close().Return().Maybe()

	f.bridge, err = New(t.Context(), f.dialer, registry, 11155111, testKey, opts...)
	require.NoError(t, err)
	t.Cleanup(f.bridge.Close)

	return f
}

func TestNew(t *testing.T) {
	t.Run("unknown default chain", func(t *testing.T) {
		registry, err := networkregistry.New(networkregistry.WithDescriptors(strings.NewReader(descriptors)))
		require.NoError(t, err)

		_, err = New(t.Context(), walletctxtest.NewDialer(t), registry, 1, testKey)
		assert.ErrorIs(t, err, networkregistry.ErrUnknownNetwork)
	})

	t.Run("connects to the requested network", func(t *testing.T) {
		f := newFixture(t)

		assert.Equal(t, uint64(11155111), f.bridge.Network().ChainID)
		assert.NotEqual(t, "", f.bridge.Address().Hex())
	})
}

func TestBridge_Request(t *testing.T) {
	t.Run("direct return", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.bridge.Request(t.Context(), RequestArguments{Method: "eth_accounts"})
		require.NoError(t, err)
		assert.Equal(t, []string{strings.ToLower(f.bridge.Address().Hex())}, got)

		got, err = f.bridge.Send(t.Context(), "eth_chainId")
		require.NoError(t, err)
		assert.Equal(t, "0xaa36a7", got)
	})

	t.Run("callback form", func(t *testing.T) {
		f := newFixture(t)

		type outcome struct {
			err error
			res *Response
		}
		done := make(chan outcome, 2)
		callback := func(err error, res *Response) { done <- outcome{err, res} }

		f.bridge.SendAsync(t.Context(), RequestArguments{Method: "eth_chainId"}, callback)
		first := <-done
		require.NoError(t, first.err)
		assert.Equal(t, "0xaa36a7", first.res.Result)

		f.bridge.SendAsync(t.Context(), RequestArguments{Method: "eth_getLogs", Params: []any{map[string]any{}}}, callback)
		second := <-done
		assert.Error(t, second.err)
		assert.Nil(t, second.res)
	})

	t.Run("rejection toggle", func(t *testing.T) {
		f := newFixture(t)
		f.bridge.SetRejectTransactions(true)

		_, err := f.bridge.Send(t.Context(), "eth_sendTransaction", map[string]any{"to": "0x00000000000000000000000000000000000000aa"})
		assert.ErrorIs(t, err, txtracker.ErrUserRejected)
		assert.Empty(t, f.bridge.ActiveTransactions())
	})
}

func TestBridge_SwitchEmitsChainChanged(t *testing.T) {
	f := newFixture(t)

	events := make(chan Event, 4)
	sub := f.bridge.Subscribe(events)
	defer sub.Unsubscribe()

	holesky := walletctxtest.NewChainClient(t)
	f.dialer.EXPECT().Dial(mock.Anything, "https://holesky.example/rpc").Return(holesky, nil).Once()
	holesky.EXPECT().ChainID(mock.Anything).Return(big.NewInt(17000), nil)
	holesky.EXPECT().Close().Return().Maybe()

	got, err := f.bridge.Send(t.Context(), "wallet_switchEthereumChain", map[string]string{"chainId": "0x4268"})
	require.NoError(t, err)
	assert.Equal(t, "0x4268", got)
	assert.Equal(t, uint64(17000), f.bridge.Network().ChainID)

	select {
	case ev := <-events:
		assert.Equal(t, EventChainChanged, ev.Name)
		assert.Equal(t, "0x4268", ev.Data)
	case <-time.After(5 * time.Second):
		t.Fatal("chainChanged not emitted")
	}
}

func TestBridge_SlowSubscriber(t *testing.T) {
	f := newFixture(t, WithSubscriptionOptions(subscription.WithResubscribeBackoff(10*time.Millisecond)))

	stuck := f.bridge.Subscribe(make(chan Event))
	defer stuck.Unsubscribe()

	events := make(chan Event, 4)
	sub := f.bridge.Subscribe(events)
	defer sub.Unsubscribe()

	holesky := walletctxtest.NewChainClient(t)
	f.dialer.EXPECT().Dial(mock.Anything, "https://holesky.example/rpc").Return(holesky, nil).Once()
	holesky.EXPECT().ChainID(mock.Anything).Return(big.NewInt(17000), nil)
	holesky.EXPECT().Close().Return().Maybe()

	_, err := f.bridge.Send(t.Context(), "wallet_switchEthereumChain", map[string]string{"chainId": "0x4268"})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, EventChainChanged, ev.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("chainChanged held back by a subscriber that never reads")
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		f.bridge.Close()
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked on a subscriber that never reads")
	}
}

func TestBridge_CloseCancelsInFlightRequests(t *testing.T) {
	f := newFixture(t, WithDispatcherOptions(
		dispatcher.WithLookupAttempts(100),
		dispatcher.WithLookupInterval(time.Second),
	))

	asked := make(chan struct{}, 100)
	f.client.EXPECT().TransactionByHash(mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ common.Hash) { asked <- struct{}{} }).
		Return(nil, false, ethereum.NotFound)

	done := make(chan error, 1)
	f.bridge.SendAsync(t.Context(), RequestArguments{
		Method: "eth_getTransactionByHash",
		Params: []any{common.HexToHash("0x03").Hex()},
	}, func(err error, _ *Response) { done <- err })

	select {
	case <-asked:
	case <-time.After(5 * time.Second):
		t.Fatal("lookup never started")
	}

	start := time.Now()
	f.bridge.Close()
	assert.Less(t, time.Since(start), 2*time.Second)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked")
	}
}

func TestBridge_AccountHelpers(t *testing.T) {
	t.Run("transaction count", func(t *testing.T) {
		f := newFixture(t)
		f.client.EXPECT().PendingNonceAt(mock.Anything, f.bridge.Address()).Return(uint64(3), nil)

		got, err := f.bridge.TransactionCount(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "0x3", got)
	})

	t.Run("balance in ether", func(t *testing.T) {
		f := newFixture(t)
		wei, _ := new(big.Int).SetString("1500000000000000000", 10)
		f.client.EXPECT().BalanceAt(mock.Anything, f.bridge.Address(), (*big.Int)(nil)).Return(wei, nil)

		got, err := f.bridge.Balance(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "1.5", got)
	})

	t.Run("balance errors", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("boom")
		f.client.EXPECT().BalanceAt(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

		_, err := f.bridge.Balance(t.Context())
		assert.ErrorIs(t, err, boom)
	})
}

func TestFormatEther(t *testing.T) {
	tests := map[string]string{
		"0":                    "0",
		"1000000000000000000":  "1",
		"1":                    "0.000000000000000001",
		"123450000000000000":   "0.12345",
		"42000000000000000000": "42",
	}

	for wei, want := range tests {
		n, ok := new(big.Int).SetString(wei, 10)
		require.True(t, ok)
		assert.Equal(t, want, formatEther(n), wei)
	}
}
