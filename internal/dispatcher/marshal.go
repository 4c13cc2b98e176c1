package dispatcher

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// fields re-reads v's JSON encoding as an object so extra keys can be added.
func fields(v json.Marshaler) (map[string]any, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// txInclusion locates a mined transaction. The zero value means pending.
type txInclusion struct {
	blockHash   common.Hash
	blockNumber *big.Int
	index       uint
}

// marshalTransaction renders tx in the eth_getTransactionByHash format.
func marshalTransaction(tx *types.Transaction, chainID *big.Int, at txInclusion) (map[string]any, error) {
	out, err := fields(tx)
	if err != nil {
		return nil, err
	}

	if from, err := types.Sender(types.LatestSignerForChainID(chainID), tx); err == nil {
		out["from"] = from
	}

	if at.blockNumber != nil {
		out["blockHash"] = at.blockHash
		out["blockNumber"] = (*hexutil.Big)(at.blockNumber)
		out["transactionIndex"] = hexutil.Uint64(at.index)
	} else {
		out["blockHash"] = nil
		out["blockNumber"] = nil
		out["transactionIndex"] = nil
	}

	return out, nil
}

// marshalBlock renders block in the eth_getBlockBy* format. With fullTx the
// transactions are full objects, otherwise hashes.
func marshalBlock(block *types.Block, fullTx bool, chainID *big.Int) (map[string]any, error) {
	out, err := fields(block.Header())
	if err != nil {
		return nil, err
	}

	out["hash"] = block.Hash()
	out["size"] = hexutil.Uint64(block.Size())

	txs := block.Transactions()
	list := make([]any, len(txs))
	for i, tx := range txs {
		if !fullTx {
			list[i] = tx.Hash()
			continue
		}

		full, err := marshalTransaction(tx, chainID, txInclusion{
			blockHash:   block.Hash(),
			blockNumber: block.Number(),
			index:       uint(i),
		})
		if err != nil {
			return nil, err
		}
		list[i] = full
	}
	out["transactions"] = list

	uncles := make([]common.Hash, len(block.Uncles()))
	for i, u := range block.Uncles() {
		uncles[i] = u.Hash()
	}
	out["uncles"] = uncles

	return out, nil
}
