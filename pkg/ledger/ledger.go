package ledger

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrConfirmationTimeout indicates that a submitted transaction wasn't mined within the
// confirmation timeout. The transaction may still be sitting in the mempool.
var ErrConfirmationTimeout = errors.New("transaction was not mined within the confirmation timeout")

// ErrTxReverted indicates that a transaction was mined but its execution failed.
var ErrTxReverted = errors.New("transaction reverted")

// Unstaked is the event emitted by the staking pool when a staker leaves. It's the
// trigger for a new stake attempt.
type Unstaked struct {
	Staker            common.Address
	Amount            *big.Int
	NewStake          *big.Int
	NewTotalPrincipal *big.Int

	BlockNumber uint64
	TxHash      common.Hash
}

// Message is a single item of an event stream. Exactly one of Event and Err is set.
type Message struct {
	Event *Unstaked
	Err   error
}

// Subscription is a stream of Unstaked events.
type Subscription interface {
	// Messages returns the stream. After a message carrying an error is delivered the
	// channel is closed and the subscription is dead.
	Messages() <-chan Message
	// Unsubscribe releases the subscription. It's safe to call more than once.
	Unsubscribe()
}

// StakeRequest describes a stake transaction.
type StakeRequest struct {
	Amount   *big.Int
	GasPrice *big.Int
	Nonce    uint64
}

// Client gives read and write access to the chain, the staked token and the staking pool.
type Client interface {
	// Address returns the controlled account.
	Address() common.Address

	// TokenBalance returns the staked token balance of account.
	TokenBalance(ctx context.Context, account common.Address) (*big.Int, error)
	// NativeBalance returns the native coin balance of account.
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	// MaxPoolSize returns the staking pool capacity.
	MaxPoolSize(ctx context.Context) (*big.Int, error)
	// TotalPrincipal returns the principal currently staked in the pool.
	TotalPrincipal(ctx context.Context) (*big.Int, error)

	// SuggestGasPrice returns the current network gas price.
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	// PendingNonceAt returns the transaction count of account including pending txs.
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	// TransactionByHash returns a transaction and whether it's still pending.
	// An unknown transaction is returned as a nil transaction and a nil error.
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)

	// Stake signs and submits a token transfer into the staking pool.
	Stake(ctx context.Context, req StakeRequest) (*types.Transaction, error)
	// SelfTransfer signs and submits a zero value transfer to the controlled account.
	SelfTransfer(ctx context.Context, nonce uint64, gasPrice *big.Int) (*types.Transaction, error)
	// WaitMined blocks until tx is mined, or returns ErrConfirmationTimeout.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// SubscribeUnstaked subscribes to Unstaked events from the latest block onward.
	SubscribeUnstaked(ctx context.Context) (Subscription, error)
}
