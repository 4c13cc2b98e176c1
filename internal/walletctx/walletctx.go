// Package walletctx owns the bridge's signing context: which network it talks
// to, the client bound to that network and the account that signs for it.
//
// A context is an immutable Snapshot. Switching networks builds a complete new
// snapshot first and only then publishes it, so readers either see the old
// context or the new one and a failed switch leaves the old one in place.
package walletctx

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/pkg/logger"
)

// ErrClosed is returned by Switch after Close.
var ErrClosed = errors.New("wallet context closed")

// Snapshot is one fully built signing context.
type Snapshot struct {
	Network networkregistry.Network
	Client  ChainClient
	Account Account

	// ChainID is the id reported by the connected node.
	ChainID *big.Int

	ref *clientRef
}

// Retain keeps the snapshot's client open until release is called. The
// caller must already hold the snapshot through Holder.Acquire.
func (s *Snapshot) Retain() (release func()) {
	if s.ref == nil || !s.ref.acquire() {
		return func() {}
	}
	return sync.OnceFunc(s.ref.release)
}

// clientRef counts the users of a snapshot's client. A retired client is
// closed as soon as its last user lets go.
type clientRef struct {
	mu      sync.Mutex
	client  ChainClient
	users   int
	retired bool
	closed  bool
}

func (r *clientRef) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	r.users++
	return true
}

func (r *clientRef) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users--
	if r.users == 0 && r.retired {
		r.closeLocked()
	}
}

func (r *clientRef) retire() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.retired = true
	if r.users == 0 {
		r.closeLocked()
	}
}

// forceClose closes the client even while it is in use.
func (r *clientRef) forceClose() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closeLocked()
}

func (r *clientRef) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closed
}

func (r *clientRef) closeLocked() {
	if !r.closed {
		r.closed = true
		r.client.Close()
	}
}

// Holder publishes the live Snapshot. Readers never lock; switches are
// serialized.
type Holder struct {
	dialer  Dialer
	current atomic.Pointer[Snapshot]

	mu      sync.Mutex
	retired []*clientRef
	closed  bool
}

// New dials network, derives the signing account from privateKeyHex and
// returns a Holder publishing the result. Key problems surface as
// ErrInvalidWallet.
func New(ctx context.Context, dialer Dialer, network networkregistry.Network, privateKeyHex string) (*Holder, error) {
	account, err := NewAccount(privateKeyHex)
	if err != nil {
		return nil, err
	}

	snap, err := build(ctx, dialer, network, account)
	if err != nil {
		return nil, err
	}

	h := &Holder{dialer: dialer}
	h.current.Store(snap)

	logger.Info(ctx, "wallet context ready",
		"chain.id", snap.ChainID.String(),
		"network.name", network.Name,
		"wallet.address", account.Address().Hex(),
	)

	return h, nil
}

func build(ctx context.Context, dialer Dialer, network networkregistry.Network, account Account) (*Snapshot, error) {
	if !account.Valid() {
		return nil, ErrInvalidWallet
	}

	client, err := dialer.Dial(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", network.Name, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("read chain id from %s: %w", network.Name, err)
	}

	if chainID.Uint64() != network.ChainID {
		logger.Warn(ctx, "node chain id differs from network descriptor",
			"chain.id", chainID.String(),
			"network.chain_id", network.ChainID,
			"network.name", network.Name,
		)
	}

	return &Snapshot{
		Network: network,
		Client:  client,
		Account: account,
		ChainID: chainID,
		ref:     &clientRef{client: client},
	}, nil
}

// Current returns the live snapshot. Its client may be closed by a later
// Switch; use Acquire when the client is going to be called.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Acquire returns the live snapshot and keeps its client open until release
// is called, even if a Switch retires it meanwhile.
func (h *Holder) Acquire() (snap *Snapshot, release func()) {
	for {
		snap = h.current.Load()
		if snap.ref == nil {
			return snap, func() {}
		}
		if snap.ref.acquire() {
			return snap, sync.OnceFunc(snap.ref.release)
		}

		// A closed client is either retired, so a newer snapshot is already
		// published, or the holder itself is closed.
		if h.current.Load() == snap {
			return snap, func() {}
		}
	}
}

// Switch rebuilds the context for network with the same account and publishes
// it. On error the previous snapshot stays live and is returned unchanged.
func (h *Holder) Switch(ctx context.Context, network networkregistry.Network) (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.current.Load()
	if h.closed {
		return prev, ErrClosed
	}

	next, err := build(ctx, h.dialer, network, prev.Account)
	if err != nil {
		return prev, err
	}

	h.current.Store(next)

	// prev's client stays open for the requests and transactions that still
	// hold it and is closed once the last of them releases it.
	h.retired = slices.DeleteFunc(h.retired, (*clientRef).isClosed)
	if prev.ref != nil {
		prev.ref.retire()
		if !prev.ref.isClosed() {
			h.retired = append(h.retired, prev.ref)
		}
	}

	logger.Info(ctx, "switched network",
		"chain.id", next.ChainID.String(),
		"network.name", network.Name,
		"previous.chain_id", prev.ChainID.String(),
	)

	return next, nil
}

// Close closes the live client and every retired client still in use.
func (h *Holder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for _, r := range h.retired {
		r.forceClose()
	}
	h.retired = nil

	if snap := h.current.Load(); snap != nil && snap.ref != nil {
		snap.ref.forceClose()
	}
}
