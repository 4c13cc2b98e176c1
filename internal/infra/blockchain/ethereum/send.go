package ethereum

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/x/chflow"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrTransactionReverted is reported when a receipt carries a failed status.
var ErrTransactionReverted = errors.New("transaction reverted")

// sendHandle follows one submitted transaction from broadcast to its
// confirmation limit.
type sendHandle struct {
	events chan walletctx.SendEvent
	cancel context.CancelFunc
}

var _ walletctx.SendHandle = (*sendHandle)(nil)

func (h *sendHandle) Events() <-chan walletctx.SendEvent {
	return h.events
}

func (h *sendHandle) Release() {
	h.cancel()
}

// Submit broadcasts tx and follows it in the background. Releasing the
// handle, or canceling ctx, stops the follower and closes the event channel.
func (c *client) Submit(ctx context.Context, tx *types.Transaction) walletctx.SendHandle {
	ctx, cancel := context.WithCancel(ctx)

	h := &sendHandle{
		events: make(chan walletctx.SendEvent, 4),
		cancel: cancel,
	}

	go func() {
		defer close(h.events)
		c.follow(ctx, tx, h.events)
	}()

	return h
}

func (c *client) follow(ctx context.Context, tx *types.Transaction, events chan<- walletctx.SendEvent) {
	if err := c.SendTransaction(ctx, tx); err != nil {
		chflow.Send(ctx, events, walletctx.SendEvent{Kind: walletctx.SendEventError, Err: err})
		return
	}

	hash := tx.Hash()
	if !chflow.Send(ctx, events, walletctx.SendEvent{Kind: walletctx.SendEventHash, Hash: hash}) {
		return
	}

	ticker := time.NewTicker(c.cfg.receiptInterval)
	defer ticker.Stop()

	var receipt *types.Receipt
	for receipt == nil {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}

		r, err := c.TransactionReceipt(ctx, hash)
		switch {
		case errors.Is(err, ethereum.NotFound):
			continue
		case err != nil:
			logger.Debug(ctx, "receipt lookup failed", "tx.hash", hash.Hex(), "error", err)
			continue
		}

		receipt = r
	}

	if !chflow.Send(ctx, events, walletctx.SendEvent{Kind: walletctx.SendEventReceipt, Hash: hash, Receipt: receipt}) {
		return
	}

	if receipt.Status == types.ReceiptStatusFailed {
		chflow.Send(ctx, events, walletctx.SendEvent{Kind: walletctx.SendEventError, Hash: hash, Err: ErrTransactionReverted})
		return
	}

	c.followConfirmations(ctx, hash, receipt, ticker.C, events)
}

// followConfirmations reports one event per new confirmation, counting the
// receipt's own block as the first.
func (c *client) followConfirmations(ctx context.Context, hash common.Hash, receipt *types.Receipt, tick <-chan time.Time, events chan<- walletctx.SendEvent) {
	mined := receipt.BlockNumber.Uint64()

	var reported uint64
	for reported < c.cfg.confirmationLimit {
		head, err := c.BlockNumber(ctx)
		if err != nil {
			logger.Debug(ctx, "block number lookup failed", "tx.hash", hash.Hex(), "error", err)
		}

		for err == nil && head >= mined && reported < head-mined+1 && reported < c.cfg.confirmationLimit {
			reported++
			ev := walletctx.SendEvent{
				Kind:          walletctx.SendEventConfirmation,
				Hash:          hash,
				Receipt:       receipt,
				Confirmations: reported,
			}
			if !chflow.Send(ctx, events, ev) {
				return
			}
		}

		if reported >= c.cfg.confirmationLimit {
			return
		}

		if _, ok := chflow.Receive(ctx, tick); !ok {
			return
		}
	}
}
