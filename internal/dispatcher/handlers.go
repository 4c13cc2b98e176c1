package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/walletbridge/internal/pkg/logger"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/walletctx"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

func (d *Dispatcher) register() {
	d.handlers = [methodCount]handlerFunc{
		MethodUnknown: declined("The method is not supported"),

		MethodChainID:                          d.chainID,
		MethodNetVersion:                       d.netVersion,
		MethodAccounts:                         d.accounts,
		MethodRequestAccounts:                  d.accounts,
		MethodGasPrice:                         d.gasPrice,
		MethodBlockNumber:                      d.blockNumber,
		MethodGetBalance:                       d.getBalance,
		MethodGetStorageAt:                     d.getStorageAt,
		MethodGetTransactionCount:              d.getTransactionCount,
		MethodGetBlockTransactionCountByHash:   d.getBlockTransactionCountByHash,
		MethodGetBlockTransactionCountByNumber: d.getBlockTransactionCountByNumber,
		MethodGetCode:                          d.getCode,
		MethodCall:                             d.ethCall,
		MethodEstimateGas:                      d.estimateGas,
		MethodEstimateGasLegacy:                d.estimateGas,
		MethodGetBlockByHash:                   d.getBlockByHash,
		MethodGetBlockByNumber:                 d.getBlockByNumber,
		MethodSendTransaction:                  d.sendTransaction,
		MethodSendRawTransaction:               d.sendRawTransaction,
		MethodGetTransactionByHash:             d.getTransactionByHash,
		MethodGetTransactionReceipt:            d.getTransactionReceipt,
		MethodSign:                             d.sign,
		MethodSubscribe:                        d.subscribe,
		MethodUnsubscribe:                      d.unsubscribe,
		MethodSwitchEthereumChain:              d.switchEthereumChain,

		MethodGetUncleCountByBlockHash:            declined("Uncle queries are not supported"),
		MethodGetUncleCountByBlockNumber:          declined("Uncle queries are not supported"),
		MethodGetUncleByBlockHashAndIndex:         declined("Uncle queries are not supported"),
		MethodGetUncleByBlockNumberAndIndex:       declined("Uncle queries are not supported"),
		MethodGetTransactionByBlockHashAndIndex:   declined("Transaction by index is not supported"),
		MethodGetTransactionByBlockNumberAndIndex: declined("Transaction by index is not supported"),
		MethodNewFilter:                           declined("Filters are not supported"),
		MethodNewBlockFilter:                      declined("Filters are not supported"),
		MethodNewPendingTransactionFilter:         declined("Filters are not supported"),
		MethodUninstallFilter:                     declined("Filters are not supported"),
		MethodGetFilterChanges:                    declined("Filters are not supported"),
		MethodGetFilterLogs:                       declined("Filters are not supported"),
		MethodGetLogs:                             declined("Log queries are not supported"),
	}
}

func declined(reason string) handlerFunc {
	return func(_ context.Context, _ *walletctx.Snapshot, c *call) (any, error) {
		return nil, c.unsupported(reason, nil)
	}
}

func (d *Dispatcher) chainID(ctx context.Context, snap *walletctx.Snapshot, _ *call) (any, error) {
	id, err := snap.Client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeBig(id), nil
}

func (d *Dispatcher) netVersion(ctx context.Context, snap *walletctx.Snapshot, _ *call) (any, error) {
	id, err := snap.Client.NetworkID(ctx)
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeBig(id), nil
}

func (d *Dispatcher) accounts(_ context.Context, snap *walletctx.Snapshot, _ *call) (any, error) {
	return []string{strings.ToLower(snap.Account.Address().Hex())}, nil
}

func (d *Dispatcher) gasPrice(ctx context.Context, snap *walletctx.Snapshot, _ *call) (any, error) {
	price, err := snap.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeBig(price), nil
}

func (d *Dispatcher) blockNumber(ctx context.Context, snap *walletctx.Snapshot, _ *call) (any, error) {
	n, err := snap.Client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeUint64(n), nil
}

func (d *Dispatcher) getBalance(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var addr common.Address
	if err := c.arg(0, &addr); err != nil {
		return nil, err
	}
	tag, err := c.blockTag(1)
	if err != nil {
		return nil, err
	}

	balance, err := snap.Client.BalanceAt(ctx, addr, blockArg(tag))
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeBig(balance), nil
}

func (d *Dispatcher) getStorageAt(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var (
		addr common.Address
		slot hexutil.Big
	)
	if err := c.arg(0, &addr); err != nil {
		return nil, err
	}
	if err := c.arg(1, &slot); err != nil {
		return nil, err
	}
	tag, err := c.blockTag(2)
	if err != nil {
		return nil, err
	}

	word, err := snap.Client.StorageAt(ctx, addr, common.BigToHash(slot.ToInt()), blockArg(tag))
	if err != nil {
		return nil, err
	}
	return hexutil.Encode(common.BytesToHash(word).Bytes()), nil
}

func (d *Dispatcher) getTransactionCount(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var addr common.Address
	if err := c.arg(0, &addr); err != nil {
		return nil, err
	}
	tag, err := c.blockTag(1)
	if err != nil {
		return nil, err
	}

	var nonce uint64
	if tag != nil && *tag == rpc.PendingBlockNumber {
		nonce, err = snap.Client.PendingNonceAt(ctx, addr)
	} else {
		nonce, err = snap.Client.NonceAt(ctx, addr, blockArg(tag))
	}
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeUint64(nonce), nil
}

func (d *Dispatcher) getBlockTransactionCountByHash(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var hash common.Hash
	if err := c.arg(0, &hash); err != nil {
		return nil, err
	}

	count, err := snap.Client.TransactionCount(ctx, hash)
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeUint64(uint64(count)), nil
}

func (d *Dispatcher) getBlockTransactionCountByNumber(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	tag, err := c.blockTag(0)
	if err != nil {
		return nil, err
	}

	block, err := snap.Client.BlockByNumber(ctx, blockArg(tag))
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeUint64(uint64(len(block.Transactions()))), nil
}

func (d *Dispatcher) getCode(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var addr common.Address
	if err := c.arg(0, &addr); err != nil {
		return nil, err
	}
	tag, err := c.blockTag(1)
	if err != nil {
		return nil, err
	}

	code, err := snap.Client.CodeAt(ctx, addr, blockArg(tag))
	if err != nil {
		return nil, err
	}
	return hexutil.Encode(code), nil
}

func (d *Dispatcher) ethCall(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var tx txParams
	if err := c.arg(0, &tx); err != nil {
		return nil, err
	}
	tag, err := c.blockTag(1)
	if err != nil {
		return nil, err
	}

	out, err := snap.Client.CallContract(ctx, tx.callMsg(snap.Account.Address()), blockArg(tag))
	if err != nil {
		return nil, err
	}
	return hexutil.Encode(out), nil
}

func (d *Dispatcher) estimateGas(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var tx txParams
	if err := c.arg(0, &tx); err != nil {
		return nil, err
	}

	// Estimation always runs against the latest state, so any other tag is
	// refused rather than silently ignored.
	var tag string
	if _, err := c.optional(1, &tag); err != nil {
		return nil, err
	}
	if tag != "" && tag != "latest" {
		return nil, c.unsupported("estimateGas does not support blockTag", nil)
	}

	gas, err := snap.Client.EstimateGas(ctx, tx.callMsg(snap.Account.Address()))
	if err != nil {
		return nil, err
	}
	return hexutil.EncodeUint64(gas), nil
}

func (d *Dispatcher) getBlockByHash(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var (
		hash   common.Hash
		fullTx bool
	)
	if err := c.arg(0, &hash); err != nil {
		return nil, err
	}
	if _, err := c.optional(1, &fullTx); err != nil {
		return nil, err
	}

	block, err := snap.Client.BlockByHash(ctx, hash)
	return renderBlock(block, err, fullTx, snap)
}

func (d *Dispatcher) getBlockByNumber(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	tag, err := c.blockTag(0)
	if err != nil {
		return nil, err
	}
	var fullTx bool
	if _, err := c.optional(1, &fullTx); err != nil {
		return nil, err
	}

	block, err := snap.Client.BlockByNumber(ctx, blockArg(tag))
	return renderBlock(block, err, fullTx, snap)
}

func renderBlock(block *types.Block, err error, fullTx bool, snap *walletctx.Snapshot) (any, error) {
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return marshalBlock(block, fullTx, snap.ChainID)
}

func (d *Dispatcher) sendTransaction(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var tx txParams
	if err := c.arg(0, &tx); err != nil {
		return nil, err
	}

	hash, err := d.sender.Send(ctx, snap, tx.request())
	if err != nil {
		return nil, err
	}
	return hash.Hex(), nil
}

func (d *Dispatcher) sendRawTransaction(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var raw hexutil.Bytes
	if err := c.arg(0, &raw); err != nil {
		return nil, err
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParams, c.name, err)
	}

	if err := snap.Client.SendTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx.Hash().Hex(), nil
}

func (d *Dispatcher) getTransactionByHash(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var hash common.Hash
	if err := c.arg(0, &hash); err != nil {
		return nil, err
	}

	var (
		tx      *types.Transaction
		pending bool
	)
	err := d.lookup.Execute(ctx, func() error {
		var err error
		tx, pending, err = snap.Client.TransactionByHash(ctx, hash)
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			logger.Warn(ctx, "transaction lookup failed", "tx.hash", hash.Hex(), "error", err)
		}
		return err
	})
	if errors.Is(err, ethereum.NotFound) {
		return nil, ErrReceiptTimeout
	}
	if err != nil {
		return nil, err
	}

	var at txInclusion
	if !pending {
		// The receipt is only used to place the transaction in its block.
		if receipt, err := snap.Client.TransactionReceipt(ctx, hash); err == nil {
			at = txInclusion{
				blockHash:   receipt.BlockHash,
				blockNumber: receipt.BlockNumber,
				index:       receipt.TransactionIndex,
			}
		}
	}

	return marshalTransaction(tx, snap.ChainID, at)
}

func (d *Dispatcher) getTransactionReceipt(ctx context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var hash common.Hash
	if err := c.arg(0, &hash); err != nil {
		return nil, err
	}

	receipt, err := snap.Client.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (d *Dispatcher) sign(_ context.Context, snap *walletctx.Snapshot, c *call) (any, error) {
	var (
		addr common.Address
		data hexutil.Bytes
	)
	if err := c.arg(0, &addr); err != nil {
		return nil, err
	}
	if err := c.arg(1, &data); err != nil {
		return nil, err
	}

	if err := snap.Account.Owns(addr); err != nil {
		return nil, err
	}

	sig, err := snap.Account.SignText(data)
	if err != nil {
		return nil, err
	}
	return hexutil.Encode(sig), nil
}

func (d *Dispatcher) subscribe(ctx context.Context, _ *walletctx.Snapshot, c *call) (any, error) {
	var kind string
	if err := c.arg(0, &kind); err != nil {
		return nil, err
	}

	id, err := d.subs.Subscribe(ctx, kind)
	if errors.Is(err, subscription.ErrUnsupported) {
		return nil, c.unsupported(fmt.Sprintf("Subscription type %s is not supported", kind), err)
	}
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (d *Dispatcher) unsubscribe(_ context.Context, _ *walletctx.Snapshot, c *call) (any, error) {
	var id string
	if err := c.arg(0, &id); err != nil {
		return nil, err
	}
	return d.subs.Unsubscribe(id), nil
}

// chainIDParam is a hex chain id. Wallets accept leading zeros ("0x01"),
// which hexutil rejects.
type chainIDParam uint64

func (id *chainIDParam) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("chainId must be a hex string")
	}

	digits, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || digits == "" {
		return fmt.Errorf("chainId %q is not 0x-prefixed hex", s)
	}

	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return fmt.Errorf("chainId %q: %w", s, err)
	}

	*id = chainIDParam(n)
	return nil
}

type switchChainParams struct {
	ChainID chainIDParam `json:"chainId"`
}

func (d *Dispatcher) switchEthereumChain(ctx context.Context, _ *walletctx.Snapshot, c *call) (any, error) {
	var p switchChainParams
	if err := c.arg(0, &p); err != nil {
		return nil, err
	}

	network, err := d.registry.Resolve(uint64(p.ChainID))
	if err != nil {
		return nil, c.unsupported(err.Error(), err)
	}

	d.switchMu.Lock()
	defer d.switchMu.Unlock()

	// Live subscriptions still read from the previous client until Rebind.
	_, release := d.wallet.Acquire()
	defer release()

	snap, err := d.wallet.Switch(ctx, network)
	if err != nil {
		return nil, c.unsupported(err.Error(), err)
	}

	d.subs.Rebind(ctx, snap.Client)

	result, err := d.chainID(ctx, snap, c)
	if err != nil {
		return nil, err
	}

	d.chainFeed.Send(ChainChanged{ChainID: result.(string)})
	return result, nil
}
