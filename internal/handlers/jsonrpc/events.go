package jsonrpc

import (
	"github.com/gabapcia/walletbridge/internal/bridge"
	"github.com/gabapcia/walletbridge/internal/subscription"
	"github.com/gabapcia/walletbridge/internal/txtracker"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

type headerEvent struct {
	Subscription string        `json:"subscription"`
	Result       *types.Header `json:"result"`
}

type transactionEvent struct {
	ID            string          `json:"id"`
	ChainID       hexutil.Uint64  `json:"chainId"`
	State         txtracker.State `json:"state"`
	Nonce         hexutil.Uint64  `json:"nonce"`
	Hash          *common.Hash    `json:"hash,omitempty"`
	Confirmations uint64          `json:"confirmations"`
	Error         string          `json:"error,omitempty"`
}

// renderEvent shapes event data for the wire.
func renderEvent(ev bridge.Event) any {
	switch data := ev.Data.(type) {
	case subscription.Event:
		return headerEvent{Subscription: data.Subscription, Result: data.Header}

	case txtracker.PendingTransaction:
		out := transactionEvent{
			ID:            data.ID,
			ChainID:       hexutil.Uint64(data.ChainID),
			State:         data.State,
			Nonce:         hexutil.Uint64(data.Nonce),
			Confirmations: data.Confirmations,
		}
		if data.Hash != (common.Hash{}) {
			out.Hash = &data.Hash
		}
		if data.Err != nil {
			out.Error = data.Err.Error()
		}
		return out

	default:
		return data
	}
}
