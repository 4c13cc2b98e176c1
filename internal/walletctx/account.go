package walletctx

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrInvalidWallet is returned when a private key cannot produce a usable
	// signer.
	ErrInvalidWallet = errors.New("wallet is invalid, verify private key")

	// ErrAccountMismatch is returned when a request names an account other
	// than the one held by the bridge.
	ErrAccountMismatch = errors.New("account mismatch or account not found")
)

// Account is the signing identity held by the bridge. The private key never
// leaves the value: every textual form prints the address only.
type Account struct {
	address common.Address
	key     *ecdsa.PrivateKey
}

// NewAccount derives an Account from a hex private key, with or without 0x.
func NewAccount(privateKeyHex string) (Account, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"), "0X")
	if raw == "" {
		return Account{}, fmt.Errorf("%w: empty key", ErrInvalidWallet)
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		// The parse error may quote key material, so it is dropped.
		return Account{}, ErrInvalidWallet
	}

	return Account{
		address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}, nil
}

// Address returns the account address.
func (a Account) Address() common.Address {
	return a.address
}

// Owns returns ErrAccountMismatch unless addr is the account address.
func (a Account) Owns(addr common.Address) error {
	if addr != a.address {
		return fmt.Errorf("%w: %s", ErrAccountMismatch, addr.Hex())
	}
	return nil
}

// Valid reports whether the account holds a key.
func (a Account) Valid() bool {
	return a.key != nil
}

// SignTx signs tx for chainID with the latest signer the chain supports.
func (a Account) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if !a.Valid() {
		return nil, ErrInvalidWallet
	}

	return types.SignTx(tx, types.LatestSignerForChainID(chainID), a.key)
}

// SignText produces an EIP-191 personal signature over data with V in
// {27, 28}.
func (a Account) SignText(data []byte) ([]byte, error) {
	if !a.Valid() {
		return nil, ErrInvalidWallet
	}

	sig, err := crypto.Sign(accounts.TextHash(data), a.key)
	if err != nil {
		return nil, err
	}

	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func (a Account) String() string {
	return "Account(" + a.address.Hex() + ")"
}

func (a Account) GoString() string {
	return a.String()
}

func (a Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Address common.Address `json:"address"`
	}{a.address})
}
