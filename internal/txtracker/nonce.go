package txtracker

import (
	"context"
	"sync"

	"github.com/gabapcia/walletbridge/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
)

// PendingNonceReader reads the pending transaction count of an account.
type PendingNonceReader interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}

type nonceKey struct {
	chainID uint64
	account common.Address
}

// NonceManager hands out nonces that account for both the node's pending
// count and the nonces this process reserved but the node has not yet seen.
type NonceManager struct {
	mu       sync.Mutex
	reserved types.DefaultMap[nonceKey, types.Set[uint64]]
}

// NewNonceManager returns an empty NonceManager.
func NewNonceManager() *NonceManager {
	return &NonceManager{
		reserved: types.NewDefaultMap[nonceKey](func() types.Set[uint64] {
			return types.NewSet[uint64]()
		}),
	}
}

// Reserve returns the lowest nonce not below the pending count that is not
// already reserved. Reservations are serialized, so concurrent callers always
// get distinct nonces.
func (m *NonceManager) Reserve(ctx context.Context, client PendingNonceReader, chainID uint64, account common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending, err := client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, err
	}

	reserved := m.reserved.Get(nonceKey{chainID, account})

	// The node already counts everything below pending.
	reserved.DeleteFunc(func(n uint64) bool { return n < pending })

	nonce := pending
	for reserved.Has(nonce) {
		nonce++
	}
	reserved.Add(nonce)

	return nonce, nil
}

// Release returns a nonce that was reserved but never broadcast.
func (m *NonceManager) Release(chainID uint64, account common.Address, nonce uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := nonceKey{chainID, account}
	if reserved, ok := m.reserved.Lookup(key); ok {
		reserved.Delete(nonce)
		if len(reserved) == 0 {
			m.reserved.Delete(key)
		}
	}
}

// Reserved returns the outstanding reservations for account in ascending
// order.
func (m *NonceManager) Reserved(chainID uint64, account common.Address) []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	reserved, ok := m.reserved.Lookup(nonceKey{chainID, account})
	if !ok {
		return nil
	}
	return types.Sorted(reserved)
}
