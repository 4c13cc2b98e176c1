package walletctx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/walletctx"
	walletctxtest "github.com/gabapcia/walletbridge/internal/walletctx/mocks"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var (
	sepolia = networkregistry.Network{ChainID: 11155111, Name: "Sepolia", RPCURL: "https://sepolia.example/rpc"}
	holesky = networkregistry.Network{ChainID: 17000, Name: "Holesky", RPCURL: "https://holesky.example/rpc"}
)

func expectedAddress(t *testing.T) common.Address {
	t.Helper()

	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	return crypto.PubkeyToAddress(key.PublicKey)
}

func TestNewAccount(t *testing.T) {
	t.Run("derives the address from the key", func(t *testing.T) {
		account, err := walletctx.NewAccount(testKey)
		require.NoError(t, err)

		assert.True(t, account.Valid())
		assert.Equal(t, expectedAddress(t), account.Address())
	})

	t.Run("accepts a 0x prefix and surrounding space", func(t *testing.T) {
		account, err := walletctx.NewAccount("  0x" + testKey + "\n")
		require.NoError(t, err)
		assert.Equal(t, expectedAddress(t), account.Address())
	})

	t.Run("rejects unusable keys", func(t *testing.T) {
		for _, key := range []string{"", "0x", "zz", "0x1234", strings.Repeat("0", 64)} {
			_, err := walletctx.NewAccount(key)
			assert.ErrorIs(t, err, walletctx.ErrInvalidWallet, "key %q", key)
		}
	})

	t.Run("never prints the key", func(t *testing.T) {
		account, err := walletctx.NewAccount(testKey)
		require.NoError(t, err)

		raw, err := json.Marshal(account)
		require.NoError(t, err)

		for _, s := range []string{
			account.String(),
			fmt.Sprintf("%v", account),
			fmt.Sprintf("%+v", account),
			fmt.Sprintf("%#v", account),
			string(raw),
		} {
			assert.NotContains(t, strings.ToLower(s), testKey)
			assert.Contains(t, strings.ToLower(s), strings.ToLower(account.Address().Hex()))
		}
	})
}

func TestAccount_SignText(t *testing.T) {
	account, err := walletctx.NewAccount(testKey)
	require.NoError(t, err)

	msg := []byte("hello bridge")
	sig, err := account.SignText(msg)
	require.NoError(t, err)
	require.Len(t, sig, crypto.SignatureLength)
	assert.Contains(t, []byte{27, 28}, sig[crypto.RecoveryIDOffset])

	recoverable := append([]byte(nil), sig...)
	recoverable[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash(msg), recoverable)
	require.NoError(t, err)
	assert.Equal(t, account.Address(), crypto.PubkeyToAddress(*pub))
}

func TestAccount_SignTx(t *testing.T) {
	account, err := walletctx.NewAccount(testKey)
	require.NoError(t, err)

	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tx := types.NewTx(&types.LegacyTx{Nonce: 3, GasPrice: big.NewInt(1), Gas: 21000, To: &to, Value: big.NewInt(5)})

	signed, err := account.SignTx(tx, big.NewInt(11155111))
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), signed)
	require.NoError(t, err)
	assert.Equal(t, account.Address(), from)

	_, err = walletctx.Account{}.SignTx(tx, big.NewInt(1))
	assert.ErrorIs(t, err, walletctx.ErrInvalidWallet)
}

func TestNew(t *testing.T) {
	t.Run("builds a snapshot bound to the network", func(t *testing.T) {
		dialer := walletctxtest.NewDialer(t)
		client := walletctxtest.NewChainClient(t)

		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(client, nil)
		client.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil)

		h, err := walletctx.New(t.Context(), dialer, sepolia, testKey)
		require.NoError(t, err)

		snap := h.Current()
		assert.Equal(t, sepolia, snap.Network)
		assert.Equal(t, client, snap.Client)
		assert.Equal(t, expectedAddress(t), snap.Account.Address())
		assert.Equal(t, int64(11155111), snap.ChainID.Int64())
	})

	t.Run("rejects an invalid key before dialing", func(t *testing.T) {
		dialer := walletctxtest.NewDialer(t)

		_, err := walletctx.New(t.Context(), dialer, sepolia, "not-a-key")
		assert.ErrorIs(t, err, walletctx.ErrInvalidWallet)
	})

	t.Run("closes the client when the chain id cannot be read", func(t *testing.T) {
		dialer := walletctxtest.NewDialer(t)
		client := walletctxtest.NewChainClient(t)
		boom := errors.New("boom")

		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(client, nil)
		client.EXPECT().ChainID(mock.Anything).Return(nil, boom)
		client.EXPECT().Close().Return()

		_, err := walletctx.New(t.Context(), dialer, sepolia, testKey)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("surfaces dial errors", func(t *testing.T) {
		dialer := walletctxtest.NewDialer(t)
		boom := errors.New("refused")

		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(nil, boom)

		_, err := walletctx.New(t.Context(), dialer, sepolia, testKey)
		assert.ErrorIs(t, err, boom)
	})
}

func TestHolder_Switch(t *testing.T) {
	setup := func(t *testing.T) (*walletctx.Holder, *walletctxtest.Dialer, *walletctxtest.ChainClient) {
		dialer := walletctxtest.NewDialer(t)
		client := walletctxtest.NewChainClient(t)

		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(client, nil).Once()
		client.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil).Once()

		h, err := walletctx.New(t.Context(), dialer, sepolia, testKey)
		require.NoError(t, err)
		return h, dialer, client
	}

	t.Run("keeps the address and rebinds the client", func(t *testing.T) {
		h, dialer, first := setup(t)
		second := walletctxtest.NewChainClient(t)

		dialer.EXPECT().Dial(mock.Anything, holesky.RPCURL).Return(second, nil).Once()
		second.EXPECT().ChainID(mock.Anything).Return(big.NewInt(17000), nil).Once()

		// Nothing holds the old client, so the switch closes it.
		first.EXPECT().Close().Return().Once()

		before := h.Current()
		snap, err := h.Switch(t.Context(), holesky)
		require.NoError(t, err)

		assert.Same(t, snap, h.Current())
		assert.Equal(t, before.Account.Address(), snap.Account.Address())
		assert.Equal(t, holesky, snap.Network)
		assert.Equal(t, second, snap.Client)
		assert.Equal(t, int64(17000), snap.ChainID.Int64())

		// Old snapshot is untouched for readers still holding it.
		assert.Equal(t, sepolia, before.Network)
		assert.Equal(t, first, before.Client)

		second.EXPECT().Close().Return().Once()
		h.Close()
	})

	t.Run("failure leaves the previous context intact", func(t *testing.T) {
		h, dialer, first := setup(t)
		boom := errors.New("unreachable")

		dialer.EXPECT().Dial(mock.Anything, holesky.RPCURL).Return(nil, boom).Once()

		before := h.Current()
		snap, err := h.Switch(t.Context(), holesky)

		assert.ErrorIs(t, err, boom)
		assert.Same(t, before, snap)
		assert.Same(t, before, h.Current())

		first.EXPECT().Close().Return().Once()
		h.Close()
	})

	t.Run("refuses to switch after close", func(t *testing.T) {
		h, _, first := setup(t)

		first.EXPECT().Close().Return().Once()
		h.Close()
		h.Close()

		_, err := h.Switch(t.Context(), holesky)
		assert.ErrorIs(t, err, walletctx.ErrClosed)
	})
}

func TestHolder_ClientLifetime(t *testing.T) {
	setup := func(t *testing.T) (*walletctx.Holder, *walletctxtest.ChainClient, *walletctxtest.ChainClient) {
		dialer := walletctxtest.NewDialer(t)
		first := walletctxtest.NewChainClient(t)
		second := walletctxtest.NewChainClient(t)

		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(first, nil).Once()
		first.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil).Once()
		dialer.EXPECT().Dial(mock.Anything, holesky.RPCURL).Return(second, nil).Once()
		second.EXPECT().ChainID(mock.Anything).Return(big.NewInt(17000), nil).Once()

		h, err := walletctx.New(t.Context(), dialer, sepolia, testKey)
		require.NoError(t, err)
		return h, first, second
	}

	t.Run("acquired client outlives the switch until released", func(t *testing.T) {
		h, first, second := setup(t)

		snap, release := h.Acquire()
		assert.Equal(t, first, snap.Client)

		_, err := h.Switch(t.Context(), holesky)
		require.NoError(t, err)
		first.AssertNotCalled(t, "Close")

		first.EXPECT().Close().Return().Once()
		release()
		release()

		next, releaseNext := h.Acquire()
		assert.Equal(t, second, next.Client)
		releaseNext()

		second.EXPECT().Close().Return().Once()
		h.Close()
	})

	t.Run("retain keeps the client open past the request", func(t *testing.T) {
		h, first, second := setup(t)

		snap, release := h.Acquire()
		keep := snap.Retain()
		release()

		_, err := h.Switch(t.Context(), holesky)
		require.NoError(t, err)
		first.AssertNotCalled(t, "Close")

		first.EXPECT().Close().Return().Once()
		keep()

		second.EXPECT().Close().Return().Once()
		h.Close()
	})

	t.Run("close releases clients still in use", func(t *testing.T) {
		h, first, second := setup(t)

		_, release := h.Acquire()
		_, err := h.Switch(t.Context(), holesky)
		require.NoError(t, err)

		first.EXPECT().Close().Return().Once()
		second.EXPECT().Close().Return().Once()
		h.Close()

		release()

		snap, releaseAfter := h.Acquire()
		assert.Equal(t, second, snap.Client)
		releaseAfter()
	})

	t.Run("repeated switches do not pile up clients", func(t *testing.T) {
		dialer := walletctxtest.NewDialer(t)
		clients := make([]*walletctxtest.ChainClient, 4)
		networks := []networkregistry.Network{sepolia, holesky, sepolia, holesky}
		for i := range clients {
			clients[i] = walletctxtest.NewChainClient(t)
			id := int64(networks[i].ChainID)
			clients[i].EXPECT().ChainID(mock.Anything).Return(big.NewInt(id), nil).Once()
			clients[i].EXPECT().Close().Return().Once()
		}
		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(clients[0], nil).Once()
		dialer.EXPECT().Dial(mock.Anything, holesky.RPCURL).Return(clients[1], nil).Once()
		dialer.EXPECT().Dial(mock.Anything, sepolia.RPCURL).Return(clients[2], nil).Once()
		dialer.EXPECT().Dial(mock.Anything, holesky.RPCURL).Return(clients[3], nil).Once()

		h, err := walletctx.New(t.Context(), dialer, networks[0], testKey)
		require.NoError(t, err)

		for i, n := range networks[1:] {
			_, err := h.Switch(t.Context(), n)
			require.NoError(t, err)
			clients[i].AssertCalled(t, "Close")
		}

		h.Close()
	})
}

func TestAccount_Owns(t *testing.T) {
	account, err := walletctx.NewAccount(testKey)
	require.NoError(t, err)

	assert.NoError(t, account.Owns(expectedAddress(t)))

	err = account.Owns(common.HexToAddress("0x00000000000000000000000000000000000000bb"))
	assert.ErrorIs(t, err, walletctx.ErrAccountMismatch)
	assert.Contains(t, strings.ToLower(err.Error()), "0x00000000000000000000000000000000000000bb")
}
