// Package txtracker sends transactions on behalf of the held account and
// follows each one from broadcast to confirmation.
//
// Every eth_sendTransaction call becomes a PendingTransaction driven by the
// events of the chain client's send handle:
//
//	Submitted -> Hashed -> Receipted -> Confirmed(n)
//	any state -> Failed
//
// The caller gets the hash as soon as the node accepts the transaction; the
// record keeps being followed in the background until it fails or passes the
// confirmation threshold.
package txtracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/x/chflow"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
)

const (
	defaultSubmissionTimeout     = 60 * time.Second
	defaultConfirmationThreshold = 5
)

var (
	// ErrSubmissionTimeout is returned when the node does not hand back a hash
	// within the submission timeout.
	ErrSubmissionTimeout = errors.New("transaction timeout exceeded")

	// ErrUserRejected is returned when the send was refused on the user's
	// behalf.
	ErrUserRejected = errors.New("user rejected the transaction")

	// ErrClosed is returned for sends that were still waiting when the
	// tracker closed.
	ErrClosed = errors.New("transaction tracker closed")
)

type config struct {
	journal               Journal
	nonces                *NonceManager
	submissionTimeout     time.Duration
	confirmationThreshold uint64
}

// Option configures a Tracker.
type Option func(*config)

// WithJournal persists in-flight transactions to j.
func WithJournal(j Journal) Option {
	return func(c *config) {
		c.journal = j
	}
}

// WithNonceManager shares nonce reservations with other trackers.
func WithNonceManager(m *NonceManager) Option {
	return func(c *config) {
		c.nonces = m
	}
}

// WithSubmissionTimeout bounds the wait between broadcast and hash.
// Default: 60s.
func WithSubmissionTimeout(d time.Duration) Option {
	return func(c *config) {
		c.submissionTimeout = d
	}
}

// WithConfirmationThreshold sets how many confirmations a transaction must
// exceed before tracking stops. Default: 5.
func WithConfirmationThreshold(n uint64) Option {
	return func(c *config) {
		c.confirmationThreshold = n
	}
}

// Tracker signs, submits and follows transactions.
type Tracker struct {
	cfg config

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reject atomic.Bool
	feed   event.Feed

	mu     sync.Mutex
	active map[string]PendingTransaction
	closed bool
}

// New returns a Tracker. Close it to stop following transactions.
func New(opts ...Option) *Tracker {
	cfg := config{
		journal:               nopJournal{},
		submissionTimeout:     defaultSubmissionTimeout,
		confirmationThreshold: defaultConfirmationThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nonces == nil {
		cfg.nonces = NewNonceManager()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Tracker{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
		active: make(map[string]PendingTransaction),
	}
}

// SetRejectTransactions makes every following Send fail with ErrUserRejected
// until it is turned off again.
func (t *Tracker) SetRejectTransactions(reject bool) {
	t.reject.Store(reject)
}

// Subscribe delivers a copy of each record after every state change.
// User-rejected transactions are never published. Records that find ch full
// are dropped.
func (t *Tracker) Subscribe(ch chan<- PendingTransaction) event.Subscription {
	return chflow.SubscribeFeed(&t.feed, ch, "transaction")
}

// Active returns the records still being followed.
func (t *Tracker) Active() []PendingTransaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	list := make([]PendingTransaction, 0, len(t.active))
	for _, p := range t.active {
		list = append(list, p)
	}
	return list
}

// Get returns the active record with id.
func (t *Tracker) Get(id string) (PendingTransaction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.active[id]
	return p, ok
}

type sendResult struct {
	hash common.Hash
	err  error
}

// Send builds a legacy transaction from req, signs it with the snapshot's
// account and submits it. It returns once the node accepted the transaction
// or the submission failed; following continues in the background.
func (t *Tracker) Send(ctx context.Context, snap *walletctx.Snapshot, req Request) (common.Hash, error) {
	if t.reject.Load() {
		logger.Info(ctx, "user rejected the transaction", "wallet.address", snap.Account.Address().Hex())
		return common.Hash{}, ErrUserRejected
	}

	from := snap.Account.Address()
	if req.From != nil {
		if err := snap.Account.Owns(*req.From); err != nil {
			return common.Hash{}, err
		}
	}

	chainID := snap.ChainID.Uint64()
	nonce, err := t.cfg.nonces.Reserve(ctx, snap.Client, chainID, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("reserve nonce: %w", err)
	}

	signed, err := t.sign(ctx, snap, req, nonce)
	if err != nil {
		t.cfg.nonces.Release(chainID, from, nonce)
		return common.Hash{}, err
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		t.cfg.nonces.Release(chainID, from, nonce)
		return common.Hash{}, ErrClosed
	}
	t.wg.Add(1)
	t.mu.Unlock()

	record := PendingTransaction{
		ID:      uuid.NewString(),
		ChainID: chainID,
		Request: req,
		State:   StateSubmitted,
		Nonce:   nonce,
	}
	t.store(record)

	// The client has to outlive a network switch until the transaction
	// settles.
	keep := snap.Retain()

	result := make(chan sendResult, 1)
	handle := snap.Client.Submit(t.ctx, signed)
	go t.follow(record, handle, from, result, keep)

	select {
	case res := <-result:
		return res.hash, res.err
	case <-ctx.Done():
		return common.Hash{}, ctx.Err()
	}
}

// sign fills the missing gas fields and signs the transaction.
func (t *Tracker) sign(ctx context.Context, snap *walletctx.Snapshot, req Request, nonce uint64) (*types.Transaction, error) {
	gasPrice := req.GasPrice
	if gasPrice == nil {
		suggested, err := snap.Client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}
		gasPrice = suggested
	}

	var gas uint64
	if req.Gas != nil {
		gas = *req.Gas
	} else {
		estimated, err := snap.Client.EstimateGas(ctx, ethereum.CallMsg{
			From:     snap.Account.Address(),
			To:       req.To,
			GasPrice: gasPrice,
			Value:    req.Value,
			Data:     req.Data,
		})
		if err != nil {
			return nil, fmt.Errorf("estimate gas: %w", err)
		}
		gas = estimated
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       req.To,
		Value:    req.Value,
		Data:     req.Data,
	})

	return snap.Account.SignTx(tx, snap.ChainID)
}

// follow runs the state machine for one record until it is done. It owns the
// handle and the record from here on.
func (t *Tracker) follow(p PendingTransaction, handle walletctx.SendHandle, from common.Address, result chan<- sendResult, release func()) {
	defer t.wg.Done()
	defer release()
	defer handle.Release()

	timer := time.NewTimer(t.cfg.submissionTimeout)
	defer timer.Stop()

	var (
		timeout   = timer.C
		events    = handle.Events()
		delivered bool
	)

	deliver := func(res sendResult) {
		if !delivered {
			delivered = true
			result <- res
		}
	}

	for {
		var ev walletctx.SendEvent
		select {
		case e, ok := <-events:
			if !ok {
				// The handle stopped on its own or the tracker is closing.
				ev = walletctx.SendEvent{Kind: walletctx.SendEventError, Err: ErrClosed}
				if p.State != StateSubmitted {
					t.finish(p, false)
					deliver(sendResult{hash: p.Hash})
					return
				}
			} else {
				ev = e
			}
		case <-timeout:
			ev = walletctx.SendEvent{Kind: walletctx.SendEventError, Err: ErrSubmissionTimeout}
		}

		prev := p.State
		next, done := transition(p, ev, t.cfg.confirmationThreshold)
		if next.State == prev && next.Confirmations == p.Confirmations && !done {
			continue
		}
		p = next

		if prev == StateSubmitted && p.State != StateSubmitted {
			timeout = nil

			if p.State == StateFailed {
				// Never broadcast, so the nonce is free again.
				t.cfg.nonces.Release(p.ChainID, from, p.Nonce)
			}
		}

		if p.State == StateFailed {
			deliver(sendResult{err: p.Err})
		} else if p.Hash != (common.Hash{}) {
			deliver(sendResult{hash: p.Hash})
		}

		if done {
			t.finish(p, true)
			return
		}

		t.store(p)
		t.feed.Send(p)
	}
}

// finish drops p from tracking. Failures are logged and published unless the
// user rejected the transaction, which is discarded silently.
func (t *Tracker) finish(p PendingTransaction, publish bool) {
	t.mu.Lock()
	delete(t.active, p.ID)
	t.mu.Unlock()

	if err := t.cfg.journal.Delete(t.ctx, p.ID); err != nil && t.ctx.Err() == nil {
		logger.Warn(t.ctx, "failed to drop transaction from journal", "tx.id", p.ID, "error", err)
	}

	if p.State == StateFailed {
		if errors.Is(p.Err, ErrUserRejected) {
			return
		}
		logger.Warn(t.ctx, "transaction failed",
			"tx.id", p.ID,
			"tx.hash", p.Hash.Hex(),
			"tx.nonce", p.Nonce,
			"error", p.Err,
		)
	} else {
		logger.Info(t.ctx, "transaction no longer tracked",
			"tx.id", p.ID,
			"tx.hash", p.Hash.Hex(),
			"tx.state", p.State.String(),
			"tx.confirmations", p.Confirmations,
		)
	}

	if publish {
		t.feed.Send(p)
	}
}

func (t *Tracker) store(p PendingTransaction) {
	t.mu.Lock()
	t.active[p.ID] = p
	t.mu.Unlock()

	if err := t.cfg.journal.Save(t.ctx, p); err != nil {
		logger.Warn(t.ctx, "failed to journal transaction", "tx.id", p.ID, "error", err)
	}
}

// Close stops following every transaction and waits for the followers to
// exit. Sends still waiting for a hash fail with ErrClosed.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	t.cancel()
	t.wg.Wait()
}
