// Package dispatcher maps EIP-1193 requests onto the wallet context, the
// transaction tracker and the subscription manager.
package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletbridge/internal/pkg/x/chflow"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/txtracker"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/gabapcia/walletbridge/internal/dispatcher"

	defaultLookupAttempts = 10
	defaultLookupInterval = time.Second
)

// WalletContext is the live signing context. Acquire pins the snapshot's
// client until release is called.
type WalletContext interface {
	Acquire() (snap *walletctx.Snapshot, release func())
	Switch(ctx context.Context, network networkregistry.Network) (*walletctx.Snapshot, error)
}

// TransactionSender signs and submits eth_sendTransaction requests.
type TransactionSender interface {
	Send(ctx context.Context, snap *walletctx.Snapshot, req txtracker.Request) (common.Hash, error)
}

// Subscriptions manages eth_subscribe subscriptions.
type Subscriptions interface {
	Subscribe(ctx context.Context, kind string) (string, error)
	Unsubscribe(id string) bool
	Rebind(ctx context.Context, source subscription.HeadSource)
}

// ChainChanged is emitted after a successful wallet_switchEthereumChain.
type ChainChanged struct {
	// ChainID is the new chain id as a 0x-prefixed hex quantity.
	ChainID string
}

type config struct {
	lookupAttempts uint
	lookupInterval time.Duration
}

// Option configures a Dispatcher.
type Option func(*config)

// WithLookupAttempts sets how many times eth_getTransactionByHash asks for an
// unknown transaction. Zero is treated as one. Default: 10.
func WithLookupAttempts(n uint) Option {
	return func(c *config) {
		c.lookupAttempts = n
	}
}

// WithLookupInterval sets the pause between eth_getTransactionByHash
// attempts. Default: 1s.
func WithLookupInterval(d time.Duration) Option {
	return func(c *config) {
		c.lookupInterval = d
	}
}

type handlerFunc func(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error)

// Dispatcher serves EIP-1193 requests.
type Dispatcher struct {
	wallet   WalletContext
	registry networkregistry.Registry
	sender   TransactionSender
	subs     Subscriptions

	lookup   retry.Retry
	handlers [methodCount]handlerFunc

	chainFeed event.Feed

	// switchMu serializes wallet_switchEthereumChain from the wallet switch
	// through the chainChanged announcement.
	switchMu sync.Mutex

	tracer   trace.Tracer
	requests metric.Int64Counter
}

// New returns a Dispatcher.
func New(wallet WalletContext, registry networkregistry.Registry, sender TransactionSender, subs Subscriptions, opts ...Option) *Dispatcher {
	cfg := config{
		lookupAttempts: defaultLookupAttempts,
		lookupInterval: defaultLookupInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lookupAttempts == 0 {
		cfg.lookupAttempts = 1
	}

	d := &Dispatcher{
		wallet:   wallet,
		registry: registry,
		sender:   sender,
		subs:     subs,
		lookup: retry.New(
			retry.WithAttempts(cfg.lookupAttempts),
			retry.WithFixedDelay(cfg.lookupInterval),
			retry.WithRetryIf(func(err error) bool { return errors.Is(err, ethereum.NotFound) }),
		),
		tracer: otel.Tracer(instrumentationName),
	}

	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"walletbridge.dispatcher.requests",
		metric.WithDescription("EIP-1193 requests served, by method and outcome."),
	)
	if err != nil {
		logger.Warn(context.Background(), "failed to create request counter", "error", err)
	}
	d.requests = requests

	d.register()
	return d
}

// SubscribeChainChanged delivers an event after every successful network
// switch.
func (d *Dispatcher) SubscribeChainChanged(ch chan<- ChainChanged) event.Subscription {
	return chflow.SubscribeFeed(&d.chainFeed, ch, "chainChanged")
}

// Dispatch serves one request. params is the positional params array as
// received; an empty or null value means no params.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, params json.RawMessage) (result any, err error) {
	c, err := newCall(method, params)

	ctx, span := d.tracer.Start(ctx, "dispatch "+c.method.String(),
		trace.WithAttributes(attribute.String("rpc.method", method)),
	)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if d.requests != nil {
			d.requests.Add(ctx, 1, metric.WithAttributes(
				attribute.String("rpc.method", c.method.String()),
				attribute.String("outcome", outcome),
			))
		}
		span.End()
	}()

	if err != nil {
		return nil, err
	}

	snap, release := d.wallet.Acquire()
	defer release()

	result, err = d.handlers[c.method](ctx, snap, c)
	if err != nil {
		logger.Debug(ctx, "request failed", "rpc.method", method, "error", err)
	}
	return result, err
}
