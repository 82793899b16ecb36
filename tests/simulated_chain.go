package tests

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/textileio/go-autostaker/pkg/wallet"
)

// StubReturnValue is the uint256 word every call to the stub contract returns.
const StubReturnValue = 1

// Values of the Unstaked event the stub contract emits on every transaction.
const (
	StubUnstakedAmount            = 1
	StubUnstakedNewStake          = 2
	StubUnstakedNewTotalPrincipal = 3
)

// SimulatedChain is a simulated Ethereum backend with a funded staker account.
type SimulatedChain struct {
	ChainID *big.Int
	Backend *backends.SimulatedBackend
	Wallet  *wallet.Wallet
}

// NewSimulatedChain creates a new simulated chain with a funded staker wallet.
func NewSimulatedChain(t *testing.T) *SimulatedChain {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	w, err := wallet.NewWallet(hex.EncodeToString(crypto.FromECDSA(key)))
	require.NoError(t, err)

	oneEther := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	alloc := core.GenesisAlloc{
		w.Address(): {Balance: new(big.Int).Mul(big.NewInt(100), oneEther)},
	}
	backend := backends.NewSimulatedBackend(alloc, 30_000_000)
	t.Cleanup(func() { _ = backend.Close() })

	return &SimulatedChain{
		ChainID: big.NewInt(1337),
		Backend: backend,
		Wallet:  w,
	}
}

// DeployStub deploys a contract that answers every call with StubReturnValue and emits
// an Unstaked(caller, 1, 2, 3) event on every transaction. It stands in for both the
// token and the staking pool.
func (c *SimulatedChain) DeployStub(t *testing.T) common.Address {
	t.Helper()
	ctx := context.Background()

	eventID := crypto.Keccak256Hash([]byte("Unstaked(address,uint256,uint256,uint256)"))
	runtime := "600160005260026020526003604052" + // mstore the three data words
		"33" + // caller, indexed staker
		"7f" + hex.EncodeToString(eventID.Bytes()) +
		"60606000a2" + // log2(0, 0x60, eventID, caller)
		"600160005260206000f3" // return uint256(1)
	initCode := "6040600c60003960406000f3" + runtime

	nonce, err := c.Backend.PendingNonceAt(ctx, c.Wallet.Address())
	require.NoError(t, err)
	gasPrice, err := c.Backend.SuggestGasPrice(ctx)
	require.NoError(t, err)

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      500_000,
		Data:     common.FromHex(initCode),
	})
	signed, err := c.Wallet.SignTx(tx, c.ChainID)
	require.NoError(t, err)
	require.NoError(t, c.Backend.SendTransaction(ctx, signed))
	c.Backend.Commit()

	receipt, err := c.Backend.TransactionReceipt(ctx, signed.Hash())
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	require.NotEqual(t, common.Address{}, receipt.ContractAddress)

	return receipt.ContractAddress
}
