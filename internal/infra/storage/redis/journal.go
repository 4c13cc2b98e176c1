package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	"github.com/gabapcia/walletbridge/internal/txtracker"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/redis/go-redis/v9"
)

const (
	// txtrackerKeyPrefix is the namespace of every key written by the journal.
	txtrackerKeyPrefix = "txtracker"

	// pendingTTL bounds how long an entry survives a process that died
	// before dropping it.
	pendingTTL = 24 * time.Hour
)

// pendingIndexKey is the set holding the ids of journaled transactions.
//
//	"txtracker:pending"
func pendingIndexKey() string {
	return txtrackerKeyPrefix + ":pending"
}

// pendingKey is the key of one journaled transaction.
//
//	"txtracker:pending:<id>"
func pendingKey(id string) string {
	return fmt.Sprintf("%s:pending:%s", txtrackerKeyPrefix, id)
}

// pendingRecord is the JSON document stored per transaction.
type pendingRecord struct {
	ID            string          `json:"id"`
	ChainID       uint64          `json:"chainId"`
	State         txtracker.State `json:"state"`
	Nonce         hexutil.Uint64  `json:"nonce"`
	Hash          *common.Hash    `json:"hash,omitempty"`
	From          *common.Address `json:"from,omitempty"`
	To            *common.Address `json:"to,omitempty"`
	Value         *hexutil.Big    `json:"value,omitempty"`
	BlockNumber   *hexutil.Big    `json:"blockNumber,omitempty"`
	Confirmations uint64          `json:"confirmations"`
	Error         string          `json:"error,omitempty"`
}

func newPendingRecord(tx txtracker.PendingTransaction) pendingRecord {
	r := pendingRecord{
		ID:            tx.ID,
		ChainID:       tx.ChainID,
		State:         tx.State,
		Nonce:         hexutil.Uint64(tx.Nonce),
		From:          tx.Request.From,
		To:            tx.Request.To,
		Value:         (*hexutil.Big)(tx.Request.Value),
		Confirmations: tx.Confirmations,
	}
	if tx.Hash != (common.Hash{}) {
		r.Hash = &tx.Hash
	}
	if tx.Receipt != nil && tx.Receipt.BlockNumber != nil {
		r.BlockNumber = (*hexutil.Big)(tx.Receipt.BlockNumber)
	}
	if tx.Err != nil {
		r.Error = tx.Err.Error()
	}
	return r
}

func (r pendingRecord) transaction() txtracker.PendingTransaction {
	tx := txtracker.PendingTransaction{
		ID:      r.ID,
		ChainID: r.ChainID,
		Request: txtracker.Request{
			From:  r.From,
			To:    r.To,
			Value: (*big.Int)(r.Value),
		},
		State:         r.State,
		Nonce:         uint64(r.Nonce),
		Confirmations: r.Confirmations,
	}
	if r.Hash != nil {
		tx.Hash = *r.Hash
	}
	if r.Error != "" {
		tx.Err = errors.New(r.Error)
	}
	return tx
}

// Save writes the latest state of tx and indexes it.
func (c *client) Save(ctx context.Context, tx txtracker.PendingTransaction) error {
	data, err := json.Marshal(newPendingRecord(tx))
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, pendingKey(tx.ID), data, pendingTTL)
		pipe.SAdd(ctx, pendingIndexKey(), tx.ID)
		return nil
	})
	return err
}

// Delete drops the transaction and its index entry.
func (c *client) Delete(ctx context.Context, id string) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, pendingKey(id))
		pipe.SRem(ctx, pendingIndexKey(), id)
		return nil
	})
	return err
}

// ListPending returns every journaled transaction ordered by chain and nonce.
// Index entries whose document already expired are pruned on the way.
func (c *client) ListPending(ctx context.Context) ([]txtracker.PendingTransaction, error) {
	ids, err := c.conn.SMembers(ctx, pendingIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = pendingKey(id)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	var (
		list  = make([]txtracker.PendingTransaction, 0, len(values))
		stale []any
	)
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}

		var r pendingRecord
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		list = append(list, r.transaction())
	}

	if len(stale) > 0 {
		if err := c.conn.SRem(ctx, pendingIndexKey(), stale...).Err(); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(list, func(a, b txtracker.PendingTransaction) int {
		if a.ChainID != b.ChainID {
			return cmp.Compare(a.ChainID, b.ChainID)
		}
		return cmp.Compare(a.Nonce, b.Nonce)
	})

	return list, nil
}

// Compile-time assertion to ensure client implements txtracker.Journal.
var _ txtracker.Journal = new(client)
