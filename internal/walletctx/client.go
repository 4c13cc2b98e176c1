package walletctx

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainClient is the chain-access surface the bridge relies on. Its read and
// write methods mirror ethclient.Client so the infra adapter can embed one.
// A nil block number always means the latest block.
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	NetworkID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)

	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	BlockByHash(ctx context.Context, hash common.Hash) (*types.Block, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	TransactionCount(ctx context.Context, blockHash common.Hash) (uint, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// SubscribeNewHead streams new chain heads into ch until the returned
	// subscription is unsubscribed or fails.
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)

	// Submit broadcasts a signed transaction and follows it until the handle
	// is released. Progress is reported through the handle's events.
	Submit(ctx context.Context, tx *types.Transaction) SendHandle

	Close()
}

// Dialer opens a ChainClient for an RPC endpoint.
type Dialer interface {
	Dial(ctx context.Context, rpcURL string) (ChainClient, error)
}

// SendEventKind tells which field of a SendEvent is meaningful.
type SendEventKind int

const (
	// SendEventHash reports the transaction hash once the node accepted it.
	SendEventHash SendEventKind = iota + 1

	// SendEventReceipt reports the first receipt seen for the transaction.
	SendEventReceipt

	// SendEventConfirmation reports how many blocks include the transaction,
	// counting the receipt's own block as confirmation 1.
	SendEventConfirmation

	// SendEventError reports a failure. No event follows an error.
	SendEventError
)

func (k SendEventKind) String() string {
	switch k {
	case SendEventHash:
		return "hash"
	case SendEventReceipt:
		return "receipt"
	case SendEventConfirmation:
		return "confirmation"
	case SendEventError:
		return "error"
	default:
		return "unknown"
	}
}

// SendEvent is one step of a submitted transaction's lifecycle.
type SendEvent struct {
	Kind          SendEventKind
	Hash          common.Hash
	Receipt       *types.Receipt
	Confirmations uint64
	Err           error
}

// SendHandle follows a submitted transaction.
type SendHandle interface {
	// Events is closed once the handle stops following the transaction.
	Events() <-chan SendEvent

	// Release stops following the transaction. It is safe to call more than
	// once.
	Release()
}
