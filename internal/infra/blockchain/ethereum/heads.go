package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// pollHeads emulates a new-heads subscription by polling the latest header.
// Every block between two polls is emitted in order, so a slow interval does
// not skip heads.
func (c *client) pollHeads(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	latest, err := c.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	next := new(big.Int).Add(latest.Number, big.NewInt(1))

	return event.NewSubscription(func(quit <-chan struct{}) error {
		pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		defer cancel()
		go func() {
			select {
			case <-quit:
				cancel()
			case <-pollCtx.Done():
			}
		}()

		ticker := time.NewTicker(c.cfg.headInterval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return nil
			case <-ticker.C:
				var ok bool
				next, ok = c.pollNewHeads(pollCtx, next, ch, quit)
				if !ok {
					return nil
				}
			}
		}
	}), nil
}

// pollNewHeads emits every header from next up to the current head and returns
// the number to start from on the following tick. ok is false once quit is
// closed.
func (c *client) pollNewHeads(ctx context.Context, next *big.Int, ch chan<- *types.Header, quit <-chan struct{}) (*big.Int, bool) {
	head, err := c.BlockNumber(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to poll latest block number", "error", err)
		return next, ctx.Err() == nil
	}

	for next.Uint64() <= head {
		header, err := c.HeaderByNumber(ctx, next)
		if err != nil {
			logger.Warn(ctx, "failed to fetch header", "block.number", next.String(), "error", err)
			return next, ctx.Err() == nil
		}

		select {
		case ch <- header:
		case <-quit:
			return next, false
		}

		next = new(big.Int).Add(next, big.NewInt(1))
	}

	return next, true
}
