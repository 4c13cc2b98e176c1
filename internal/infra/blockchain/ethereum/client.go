// Package ethereum adapts go-ethereum's ethclient to the walletctx.ChainClient
// port. HTTP endpoints go through the retrying transport; endpoints without
// push notifications fall back to polling for new heads.
package ethereum

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// averageBlockTime is the head polling interval when the endpoint cannot
	// push new heads.
	averageBlockTime = 12 * time.Second

	defaultReceiptInterval   = 2 * time.Second
	defaultConfirmationLimit = 12
)

type config struct {
	httpClient        *http.Client
	headInterval      time.Duration
	receiptInterval   time.Duration
	confirmationLimit uint64
}

// Option configures the dialer and the clients it returns.
type Option func(*config)

// WithHTTPClient sets the HTTP client used for http and https endpoints.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithHeadInterval sets the polling interval used when the endpoint cannot
// push new heads. Default: 12s.
func WithHeadInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.headInterval = d
	}
}

// WithReceiptInterval sets how often a submitted transaction is checked for a
// receipt and new confirmations. Default: 2s.
func WithReceiptInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.receiptInterval = d
	}
}

// WithConfirmationLimit sets the confirmation count after which a send handle
// stops following its transaction on its own. Default: 12.
func WithConfirmationLimit(n uint64) Option {
	return func(cfg *config) {
		cfg.confirmationLimit = n
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		headInterval:      averageBlockTime,
		receiptInterval:   defaultReceiptInterval,
		confirmationLimit: defaultConfirmationLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type dialer struct {
	cfg config
}

var _ walletctx.Dialer = (*dialer)(nil)

// NewDialer returns a walletctx.Dialer backed by ethclient.
func NewDialer(opts ...Option) *dialer {
	return &dialer{cfg: newConfig(opts)}
}

// Dial connects to rpcURL. For http and https URLs the configured HTTP client
// is used; websocket and IPC endpoints use go-ethereum's own transports.
func (d *dialer) Dial(ctx context.Context, rpcURL string) (walletctx.ChainClient, error) {
	var dialOpts []rpc.ClientOption
	if d.cfg.httpClient != nil {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(d.cfg.httpClient))
	}

	conn, err := rpc.DialOptions(ctx, rpcURL, dialOpts...)
	if err != nil {
		return nil, err
	}

	return newClient(ethclient.NewClient(conn), d.cfg), nil
}

// client is an ethclient.Client with the bridge-specific extensions.
type client struct {
	*ethclient.Client
	cfg config
}

var _ walletctx.ChainClient = (*client)(nil)

func newClient(c *ethclient.Client, cfg config) *client {
	return &client{Client: c, cfg: cfg}
}

// NewClient wraps an existing ethclient.Client.
func NewClient(c *ethclient.Client, opts ...Option) *client {
	return newClient(c, newConfig(opts))
}

// SubscribeNewHead subscribes to new heads, polling the node when it cannot
// push notifications.
func (c *client) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	sub, err := c.Client.SubscribeNewHead(ctx, ch)
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		logger.Debug(ctx, "endpoint cannot push heads, polling instead", "poll.interval", c.cfg.headInterval.String())
		return c.pollHeads(ctx, ch)
	}

	return sub, err
}
