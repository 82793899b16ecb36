package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/ledger"
	"github.com/textileio/go-autostaker/pkg/wallet"
)

// selfTransferGas is the intrinsic gas of a plain value transfer.
const selfTransferGas = 21_000

// Backend is the chain API the client needs. Both *ethclient.Client and the simulated
// backend satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

// Client is the Ethereum implementation of ledger.Client.
type Client struct {
	log     zerolog.Logger
	backend Backend
	wallet  *wallet.Wallet
	chainID *big.Int
	config  *Config

	tokenAddr common.Address
	poolAddr  common.Address
	token     *bind.BoundContract
	pool      *bind.BoundContract
}

var _ ledger.Client = (*Client)(nil)

// NewClient returns a ledger client bound to the token and staking pool contracts.
func NewClient(
	backend Backend,
	w *wallet.Wallet,
	chainID *big.Int,
	tokenAddr common.Address,
	poolAddr common.Address,
	opts ...Option,
) (*Client, error) {
	config := DefaultConfig()
	for _, o := range opts {
		if err := o(config); err != nil {
			return nil, errors.Wrap(err, "applying provided option")
		}
	}
	tokenABI, err := TokenABI()
	if err != nil {
		return nil, errors.Wrap(err, "parsing token abi")
	}
	poolABI, err := PoolABI()
	if err != nil {
		return nil, errors.Wrap(err, "parsing pool abi")
	}

	log := logger.With().
		Str("component", "ledger").
		Int64("chain_id", chainID.Int64()).
		Logger()

	return &Client{
		log:       log,
		backend:   backend,
		wallet:    w,
		chainID:   new(big.Int).Set(chainID),
		config:    config,
		tokenAddr: tokenAddr,
		poolAddr:  poolAddr,
		token:     bind.NewBoundContract(tokenAddr, tokenABI, backend, backend, backend),
		pool:      bind.NewBoundContract(poolAddr, poolABI, backend, backend, backend),
	}, nil
}

// Address returns the controlled account.
func (c *Client) Address() common.Address {
	return c.wallet.Address()
}

// TokenBalance returns the token balance of account.
func (c *Client) TokenBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.callUint256(ctx, c.token, "balanceOf", account)
	if err != nil {
		return nil, errors.Wrap(err, "get token balance")
	}
	return balance, nil
}

// NativeBalance returns the native coin balance of account.
func (c *Client) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.backend.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, errors.Wrap(err, "get native balance")
	}
	return balance, nil
}

// MaxPoolSize returns the staking pool capacity.
func (c *Client) MaxPoolSize(ctx context.Context) (*big.Int, error) {
	size, err := c.callUint256(ctx, c.pool, "getMaxPoolSize")
	if err != nil {
		return nil, errors.Wrap(err, "get max pool size")
	}
	return size, nil
}

// TotalPrincipal returns the principal staked in the pool.
func (c *Client) TotalPrincipal(ctx context.Context) (*big.Int, error) {
	principal, err := c.callUint256(ctx, c.pool, "getTotalPrincipal")
	if err != nil {
		return nil, errors.Wrap(err, "get total principal")
	}
	return principal, nil
}

// SuggestGasPrice returns the current network gas price.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get suggested gas price")
	}
	return price, nil
}

// PendingNonceAt returns the pending transaction count of account.
func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, errors.Wrap(err, "get pending nonce")
	}
	return nonce, nil
}

// TransactionByHash returns a transaction and whether it's pending. Unknown hashes
// return a nil transaction without error.
func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	tx, isPending, err := c.backend.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get transaction %s", hash)
	}
	return tx, isPending, nil
}

// Stake submits transferAndCall(pool, amount, data) on the token contract.
func (c *Client) Stake(ctx context.Context, req ledger.StakeRequest) (*types.Transaction, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, errors.New("stake amount must be positive")
	}
	if req.GasPrice == nil || req.GasPrice.Sign() <= 0 {
		return nil, errors.New("gas price must be positive")
	}

	opts, err := c.wallet.TransactOpts(c.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "creating transact opts")
	}
	opts.Context = ctx
	opts.Nonce = new(big.Int).SetUint64(req.Nonce)
	opts.GasPrice = req.GasPrice
	opts.GasLimit = c.config.StakeGasLimit

	tx, err := c.token.Transact(opts, "transferAndCall", c.poolAddr, req.Amount, c.config.StakeData)
	if err != nil {
		return nil, errors.Wrap(err, "sending transferAndCall")
	}

	c.log.Debug().
		Str("hash", tx.Hash().Hex()).
		Uint64("nonce", tx.Nonce()).
		Str("gas_price", tx.GasPrice().String()).
		Str("amount", req.Amount.String()).
		Msg("stake transaction sent")

	return tx, nil
}

// SelfTransfer submits a zero value transfer to the controlled account.
func (c *Client) SelfTransfer(ctx context.Context, nonce uint64, gasPrice *big.Int) (*types.Transaction, error) {
	to := c.wallet.Address()
	ltxn := &types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      selfTransferGas,
		To:       &to,
		Value:    big.NewInt(0),
	}
	txn, err := c.wallet.SignTx(types.NewTx(ltxn), c.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "signing self transfer")
	}
	if err := c.backend.SendTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "sending self transfer")
	}
	return txn, nil
}

// WaitMined waits for tx to be mined for at most the configured confirmation timeout.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cls := context.WithTimeout(ctx, c.config.ConfirmationTimeout)
	defer cls()

	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		// Only our own deadline is a confirmation timeout. A cancelled parent is not.
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrapf(ledger.ErrConfirmationTimeout, "%s after %s", tx.Hash(), c.config.ConfirmationTimeout)
		}
		return nil, errors.Wrap(err, "waiting for receipt")
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, errors.Wrapf(ledger.ErrTxReverted, "%s in block %d", tx.Hash(), receipt.BlockNumber)
	}

	return receipt, nil
}

// IsPoolOpen reports whether the staking pool accepts stakes. The staker doesn't gate
// on it, the toolkit reports it.
func (c *Client) IsPoolOpen(ctx context.Context) (bool, error) {
	var out []interface{}
	if err := c.pool.Call(&bind.CallOpts{Context: ctx}, &out, "isOpen"); err != nil {
		return false, errors.Wrap(err, "calling isOpen")
	}
	if len(out) != 1 {
		return false, errors.Errorf("unexpected isOpen output length %d", len(out))
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Client) callUint256(
	ctx context.Context,
	contract *bind.BoundContract,
	method string,
	params ...interface{},
) (*big.Int, error) {
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, errors.Wrapf(err, "calling %s", method)
	}
	if len(out) != 1 {
		return nil, errors.Errorf("unexpected %s output length %d", method, len(out))
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
