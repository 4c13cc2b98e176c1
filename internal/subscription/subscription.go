// Package subscription keeps the bridge's eth_subscribe subscriptions alive
// across dropped connections and network switches.
package subscription

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
)

// KindNewHeads is the only subscription kind served.
const KindNewHeads = "newHeads"

const (
	defaultResubscribeBackoff = 10 * time.Second
	headBuffer                = 16
)

var (
	// ErrUnsupported is returned for subscription kinds other than newHeads.
	ErrUnsupported = errors.New("unsupported subscription kind")

	// ErrClosed is returned by Subscribe after Close.
	ErrClosed = errors.New("subscription manager closed")
)

// HeadSource opens new-head subscriptions.
type HeadSource interface {
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// Event is one header delivered to a live subscription.
type Event struct {
	Subscription string
	Header       *types.Header
}

type config struct {
	resubscribeBackoff time.Duration
}

// Option configures a Manager.
type Option func(*config)

// WithResubscribeBackoff caps the wait between attempts to re-establish a
// dropped subscription. Default: 10s.
func WithResubscribeBackoff(d time.Duration) Option {
	return func(c *config) {
		c.resubscribeBackoff = d
	}
}

type entry struct {
	id   string
	kind string
	sub  event.Subscription
	done chan struct{}
}

// Manager tracks live subscriptions by id and fans their headers out on a
// single feed.
type Manager struct {
	cfg  config
	feed event.Feed

	mu      sync.Mutex
	source  HeadSource
	entries map[string]*entry
	closed  bool
}

// New returns a Manager reading heads from source until Rebind replaces it.
func New(source HeadSource, opts ...Option) *Manager {
	cfg := config{resubscribeBackoff: defaultResubscribeBackoff}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Manager{
		cfg:     cfg,
		source:  source,
		entries: make(map[string]*entry),
	}
}

// Events delivers the headers of every live subscription to ch. A full ch
// drops headers rather than stalling the subscriptions.
func (m *Manager) Events(ch chan<- Event) event.Subscription {
	return chflow.SubscribeFeed(&m.feed, ch, "newHeads")
}

// Subscribe opens a subscription of kind and returns its id. The first
// attempt is made synchronously so an unusable endpoint fails the call.
func (m *Manager) Subscribe(ctx context.Context, kind string) (string, error) {
	if kind != KindNewHeads {
		return "", ErrUnsupported
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return "", ErrClosed
	}

	id := newID()
	e, err := m.start(ctx, id, kind, m.source)
	if err != nil {
		return "", err
	}
	m.entries[id] = e

	logger.Info(ctx, "subscription opened", "subscription.id", id, "subscription.kind", kind)
	return id, nil
}

// Unsubscribe cancels the subscription with id. It reports whether the id was
// live.
func (m *Manager) Unsubscribe(id string) bool {
	m.mu.Lock()
	e, ok := m.entries[id]
	delete(m.entries, id)
	m.mu.Unlock()

	if !ok {
		return false
	}

	e.stop()
	return true
}

// IDs returns the ids of the live subscriptions.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	return ids
}

// Rebind moves every live subscription to source, keeping its id. A
// subscription that cannot be reopened on source keeps retrying in the
// background.
func (m *Manager) Rebind(ctx context.Context, source HeadSource) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.source = source
	for id, old := range m.entries {
		old.stop()

		e, err := m.start(ctx, id, old.kind, source)
		if err != nil {
			logger.Warn(ctx, "failed to reopen subscription on new network, retrying", "subscription.id", id, "error", err)
			e = m.forward(id, old.kind, make(chan *types.Header, headBuffer), source, nil)
		}
		m.entries[id] = e
	}
}

// Close cancels every subscription.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.closed = true
	m.mu.Unlock()

	for _, e := range entries {
		e.stop()
	}
}

func (m *Manager) start(ctx context.Context, id, kind string, source HeadSource) (*entry, error) {
	heads := make(chan *types.Header, headBuffer)

	first, err := source.SubscribeNewHead(ctx, heads)
	if err != nil {
		return nil, err
	}

	return m.forward(id, kind, heads, source, first), nil
}

// forward keeps a subscription on source alive and publishes its headers.
// first, when set, is used as the initial subscription.
func (m *Manager) forward(id, kind string, heads chan *types.Header, source HeadSource, first ethereum.Subscription) *entry {
	sub := event.ResubscribeErr(m.cfg.resubscribeBackoff, func(ctx context.Context, lastErr error) (event.Subscription, error) {
		if first != nil {
			s := first
			first = nil
			return s, nil
		}
		if lastErr != nil {
			logger.Warn(ctx, "subscription dropped, resubscribing", "subscription.id", id, "error", lastErr)
		}
		return source.SubscribeNewHead(ctx, heads)
	})

	e := &entry{id: id, kind: kind, sub: sub, done: make(chan struct{})}

	go func() {
		defer close(e.done)
		for {
			select {
			case h := <-heads:
				m.feed.Send(Event{Subscription: id, Header: h})
			case _, ok := <-sub.Err():
				if !ok {
					return
				}
			}
		}
	}()

	return e
}

// stop cancels the subscription and waits for its forwarder to exit, so no
// header is published for it afterwards.
func (e *entry) stop() {
	e.sub.Unsubscribe()
	<-e.done
}

func newID() string {
	u := uuid.New()
	return hexutil.Encode(u[:])
}
