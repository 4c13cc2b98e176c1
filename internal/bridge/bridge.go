// Package bridge is the EIP-1193 provider facade: a single object that holds
// the signing context and answers request calls the way a browser wallet
// would, in both direct-return and callback form.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/gabapcia/walletbridge/internal/dispatcher"
	"github.com/gabapcia/walletbridge/internal/networkregistry"
	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/pkg/x/chflow"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/txtracker"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/params"
)

// Provider event names.
const (
	EventChainChanged   = "chainChanged"
	EventNewBlockHeader = "newBlockHeader"
	EventTransaction    = "transaction"
)

const eventBuffer = 64

// Event is a provider event. Data is a hex chain id for chainChanged, a
// subscription.Event for newBlockHeader and a txtracker.PendingTransaction
// for transaction.
type Event struct {
	Name string
	Data any
}

// RequestArguments is the argument of an EIP-1193 request call.
type RequestArguments struct {
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
}

// Response is what SendAsync callbacks receive on success.
type Response struct {
	Result any `json:"result"`
}

type config struct {
	trackerOpts      []txtracker.Option
	dispatcherOpts   []dispatcher.Option
	subscriptionOpts []subscription.Option
}

// Option configures a Bridge.
type Option func(*config)

// WithTrackerOptions forwards options to the transaction tracker.
func WithTrackerOptions(opts ...txtracker.Option) Option {
	return func(c *config) {
		c.trackerOpts = append(c.trackerOpts, opts...)
	}
}

// WithDispatcherOptions forwards options to the method dispatcher.
func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(c *config) {
		c.dispatcherOpts = append(c.dispatcherOpts, opts...)
	}
}

// WithSubscriptionOptions forwards options to the subscription manager.
func WithSubscriptionOptions(opts ...subscription.Option) Option {
	return func(c *config) {
		c.subscriptionOpts = append(c.subscriptionOpts, opts...)
	}
}

// Bridge answers EIP-1193 requests for one private key.
type Bridge struct {
	holder     *walletctx.Holder
	tracker    *txtracker.Tracker
	subs       *subscription.Manager
	dispatcher *dispatcher.Dispatcher

	feed event.Feed

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New connects to the network registered for chainID and returns a Bridge
// signing with privateKeyHex.
func New(ctx context.Context, dialer walletctx.Dialer, registry networkregistry.Registry, chainID uint64, privateKeyHex string, opts ...Option) (*Bridge, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	network, err := registry.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	holder, err := walletctx.New(ctx, dialer, network, privateKeyHex)
	if err != nil {
		return nil, err
	}

	tracker := txtracker.New(cfg.trackerOpts...)
	subs := subscription.New(holder.Current().Client, cfg.subscriptionOpts...)

	bctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b := &Bridge{
		holder:     holder,
		tracker:    tracker,
		subs:       subs,
		dispatcher: dispatcher.New(holder, registry, tracker, subs, cfg.dispatcherOpts...),
		ctx:        bctx,
		cancel:     cancel,
	}

	b.wg.Add(1)
	go b.relay()

	return b, nil
}

// relay republishes the components' events as provider events.
func (b *Bridge) relay() {
	defer b.wg.Done()

	var (
		chains = make(chan dispatcher.ChainChanged, eventBuffer)
		heads  = make(chan subscription.Event, eventBuffer)
		txs    = make(chan txtracker.PendingTransaction, eventBuffer)
	)

	subs := event.JoinSubscriptions(
		b.dispatcher.SubscribeChainChanged(chains),
		b.subs.Events(heads),
		b.tracker.Subscribe(txs),
	)
	defer subs.Unsubscribe()

	for {
		var ev Event
		select {
		case <-b.ctx.Done():
			return
		case c := <-chains:
			ev = Event{Name: EventChainChanged, Data: c.ChainID}
		case h := <-heads:
			ev = Event{Name: EventNewBlockHeader, Data: h}
		case tx := <-txs:
			ev = Event{Name: EventTransaction, Data: tx}
		}

		b.feed.Send(ev)
	}
}

// Subscribe delivers provider events to ch. Events that find ch full are
// dropped, so ch should be buffered.
func (b *Bridge) Subscribe(ch chan<- Event) event.Subscription {
	return chflow.SubscribeFeed(&b.feed, ch, "provider")
}

// Request serves one EIP-1193 request.
func (b *Bridge) Request(ctx context.Context, args RequestArguments) (any, error) {
	raw, err := json.Marshal(args.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dispatcher.ErrInvalidParams, err)
	}
	if args.Params == nil {
		raw = nil
	}

	return b.Dispatch(ctx, args.Method, raw)
}

// Dispatch serves a request whose params are already JSON encoded. Closing
// the bridge cancels requests still in flight.
func (b *Bridge) Dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(b.ctx, cancel)
	defer stop()

	return b.dispatcher.Dispatch(ctx, method, params)
}

// Send is the legacy send(method, params) form of Request.
func (b *Bridge) Send(ctx context.Context, method string, params ...any) (any, error) {
	return b.Request(ctx, RequestArguments{Method: method, Params: params})
}

// SendAsync is the callback form of Request. The callback runs on its own
// goroutine with either an error or the response.
func (b *Bridge) SendAsync(ctx context.Context, args RequestArguments, callback func(err error, res *Response)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		result, err := b.Request(ctx, args)
		if err != nil {
			callback(err, nil)
			return
		}
		callback(nil, &Response{Result: result})
	}()
}

// SetRejectTransactions makes eth_sendTransaction fail as if the user declined
// every transaction until it is turned off.
func (b *Bridge) SetRejectTransactions(reject bool) {
	b.tracker.SetRejectTransactions(reject)
}

// Address returns the signing address.
func (b *Bridge) Address() common.Address {
	return b.holder.Current().Account.Address()
}

// Network returns the network the bridge is connected to.
func (b *Bridge) Network() networkregistry.Network {
	return b.holder.Current().Network
}

// ActiveTransactions returns the transactions still being followed.
func (b *Bridge) ActiveTransactions() []txtracker.PendingTransaction {
	return b.tracker.Active()
}

// TransactionCount returns the signer's pending nonce as a hex quantity.
func (b *Bridge) TransactionCount(ctx context.Context) (string, error) {
	snap, release := b.holder.Acquire()
	defer release()

	nonce, err := snap.Client.PendingNonceAt(ctx, snap.Account.Address())
	if err != nil {
		return "", err
	}
	return hexutil.EncodeUint64(nonce), nil
}

// Balance returns the signer's latest balance in ether as a decimal string.
func (b *Bridge) Balance(ctx context.Context) (string, error) {
	snap, release := b.holder.Acquire()
	defer release()

	wei, err := snap.Client.BalanceAt(ctx, snap.Account.Address(), nil)
	if err != nil {
		return "", err
	}
	return formatEther(wei), nil
}

// formatEther renders wei as ether without trailing zeros.
func formatEther(wei *big.Int) string {
	s := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether)).FloatString(18)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// Close stops following transactions, cancels subscriptions and closes every
// client the bridge opened.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		b.cancel()
		b.tracker.Close()
		b.subs.Close()
		b.wg.Wait()
		b.holder.Close()

		logger.Info(context.Background(), "bridge closed")
	})
}
