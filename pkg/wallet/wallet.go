package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrEmptyPrivateKey is returned when no signing secret was provided.
var ErrEmptyPrivateKey = errors.New("private key is empty")

// Wallet is the single account the staker controls. It's created once at startup
// and never mutated.
type Wallet struct {
	sk *ecdsa.PrivateKey
	pk *ecdsa.PublicKey
}

// NewWallet creates a new wallet from a hex encoded private key. A leading 0x is accepted.
func NewWallet(sk string) (*Wallet, error) {
	sk = strings.TrimPrefix(strings.TrimSpace(sk), "0x")
	if sk == "" {
		return nil, ErrEmptyPrivateKey
	}
	privateKey, err := crypto.HexToECDSA(sk)
	if err != nil {
		return nil, fmt.Errorf("converting private key to ECDSA: %s", err)
	}

	publicKey := privateKey.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("casting public key to ECDSA")
	}

	return &Wallet{
		sk: privateKey,
		pk: publicKeyECDSA,
	}, nil
}

// PrivateKey gets the private key.
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.sk
}

// Address returns the wallet address.
func (w *Wallet) Address() common.Address {
	return crypto.PubkeyToAddress(*w.pk)
}

// TransactOpts returns signing options bound to chainID. Nonce, gas price and gas limit
// are left for the caller to fill.
func (w *Wallet) TransactOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(w.sk, chainID)
	if err != nil {
		return nil, fmt.Errorf("creating keyed transactor: %s", err)
	}
	return opts, nil
}

// SignTx signs a transaction for chainID.
func (w *Wallet) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.NewLondonSigner(chainID), w.sk)
	if err != nil {
		return nil, fmt.Errorf("signing txn: %s", err)
	}
	return signed, nil
}
