package chflow

import (
	"context"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/event"
)

// SubscribeFeed subscribes ch to feed without letting a slow reader stall
// feed.Send. Values that find ch full are dropped with a warning, so ch should
// be buffered. name labels the drop warnings.
func SubscribeFeed[T any](feed *event.Feed, ch chan<- T, name string) event.Subscription {
	relay := make(chan T)
	inner := feed.Subscribe(relay)

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer inner.Unsubscribe()

		for {
			select {
			case v := <-relay:
				if !TrySend(ch, v) {
					logger.Warn(context.Background(), "subscriber is not keeping up, event dropped", "feed", name)
				}
			case err := <-inner.Err():
				return err
			case <-quit:
				return nil
			}
		}
	})
}
