package impl

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textileio/go-autostaker/mocks"
	"github.com/textileio/go-autostaker/pkg/ledger"
	nonceimpl "github.com/textileio/go-autostaker/pkg/nonce/impl"
	"github.com/textileio/go-autostaker/pkg/notify"
	"github.com/textileio/go-autostaker/pkg/planner"
	"github.com/textileio/go-autostaker/pkg/staker"
)

var (
	account = common.HexToAddress("0x6fdc9b5ba3c8d8d0c49a0da2ea0fdd5d4fb7b3b1")
	pool    = common.HexToAddress("0xbc10f2e862ed4502144c7d632a3459f49dfcdb5e")
	gwei    = big.NewInt(1_000_000_000)
)

func TestAttemptConfirmed(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(5, nil).Once()

	tx := stakeTx(5, gweis(20))
	client.EXPECT().Stake(mock.Anything, ledger.StakeRequest{
		Amount:   units(t, "30"),
		GasPrice: gweis(20),
		Nonce:    5,
	}).Return(tx, nil).Once()
	client.EXPECT().WaitMined(mock.Anything, tx).Return(receipt(tx), nil).Once()

	exp := fmt.Sprintf("✅ Successfully staked 30.000000000000000000 LINK\nTx: https://etherscan.io/tx/%s", tx.Hash().Hex())
	notifier.EXPECT().Notify(mock.Anything, exp).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.NotNil(t, attempt)
	require.Equal(t, staker.Confirmed, attempt.State)
	require.NoError(t, attempt.Err)
	require.Equal(t, units(t, "30"), attempt.Amount)
	require.Equal(t, gweis(20), attempt.GasPrice)
	require.Equal(t, uint64(5), attempt.Nonce)
	require.Equal(t, tx.Hash(), attempt.TxHash)
	require.False(t, attempt.SubmittedAt.IsZero())
	require.Nil(t, attempt.Replacement)

	require.False(t, c.Busy())
	status := c.Status()
	require.Equal(t, staker.Idle, status.State)
	require.Equal(t, uint64(1), status.Attempts)
	require.Equal(t, uint64(1), status.Confirmed)
	require.Equal(t, tx.Hash().Hex(), status.LastAttempt.TxHash)

	// The nonce is kept for the next submission.
	curr, ok := seq.Current()
	require.True(t, ok)
	require.Equal(t, uint64(5), curr)
}

func TestAttemptTimedOutReplacesOnce(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(9, nil).Once()

	tx := stakeTx(9, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(tx, nil).Once()
	client.EXPECT().WaitMined(mock.Anything, tx).
		Return(nil, fmt.Errorf("%w: 750s", ledger.ErrConfirmationTimeout)).Once()
	client.EXPECT().TransactionByHash(mock.Anything, tx.Hash()).Return(tx, true, nil).Once()

	replacement := selfTransferTx(9, gweis(30))
	client.EXPECT().SelfTransfer(mock.Anything, uint64(9), gweis(30)).Return(replacement, nil).Once()

	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "❌ Staking failed: ") && strings.Contains(text, "not mined")
	})).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.TimedOut, attempt.State)
	require.ErrorIs(t, attempt.Err, ledger.ErrConfirmationTimeout)
	require.NotNil(t, attempt.Replacement)
	require.NoError(t, attempt.Replacement.Err)
	require.False(t, attempt.Replacement.Skipped)
	require.Equal(t, tx.Hash(), attempt.Replacement.StuckTxHash)
	require.Equal(t, replacement.Hash(), attempt.Replacement.TxHash)
	require.Equal(t, uint64(9), attempt.Replacement.Nonce)
	require.Equal(t, gweis(30), attempt.Replacement.GasPrice)

	_, ok := seq.Current()
	require.False(t, ok)
	require.False(t, c.Busy())

	status := c.Status()
	require.Equal(t, uint64(1), status.TimedOut)
	require.Equal(t, uint64(1), status.Replacements)
	require.Equal(t, replacement.Hash().Hex(), status.LastAttempt.Replacement)
}

func TestAttemptTimedOutAlreadyMined(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(1, nil).Once()

	tx := stakeTx(1, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(tx, nil).Once()
	client.EXPECT().WaitMined(mock.Anything, tx).Return(nil, ledger.ErrConfirmationTimeout).Once()
	client.EXPECT().TransactionByHash(mock.Anything, tx.Hash()).Return(tx, false, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.TimedOut, attempt.State)
	require.True(t, attempt.Replacement.Skipped)
	require.Equal(t, common.Hash{}, attempt.Replacement.TxHash)
	require.Equal(t, uint64(0), c.Status().Replacements)
}

func TestAttemptReplacementFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(1, nil).Once()

	tx := stakeTx(1, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(tx, nil).Once()
	client.EXPECT().WaitMined(mock.Anything, tx).Return(nil, ledger.ErrConfirmationTimeout).Once()
	client.EXPECT().TransactionByHash(mock.Anything, tx.Hash()).Return(tx, true, nil).Once()
	client.EXPECT().SelfTransfer(mock.Anything, uint64(1), gweis(30)).
		Return(nil, errors.New("replacement transaction underpriced")).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.TimedOut, attempt.State)
	require.ErrorIs(t, attempt.Replacement.Err, staker.ErrReplacement)
	require.False(t, c.Busy())
}

func TestAttemptInsufficientAmount(t *testing.T) {
	t.Parallel()

	// No notification and no submission are expected.
	client, notifier, seq := setup(t)
	expectReads(client, "0.5", "100", "10")

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.Failed, attempt.State)
	require.ErrorIs(t, attempt.Err, planner.ErrInsufficientAmount)
	require.Nil(t, attempt.Amount)
	require.False(t, c.Busy())

	status := c.Status()
	require.Equal(t, uint64(1), status.Skipped)
	require.Equal(t, uint64(0), status.Failed)
}

func TestAttemptProviderErrorInvalidatesNonce(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil)
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(3, nil).Twice()

	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(nil, errors.New("nonce too low")).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "❌ Staking failed: ") && strings.Contains(text, "nonce too low")
	})).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())
	require.Equal(t, staker.Failed, attempt.State)
	require.ErrorContains(t, attempt.Err, "nonce too low")
	_, ok := seq.Current()
	require.False(t, ok)

	// The next attempt re-queries the chain and reuses nonce 3.
	tx := stakeTx(3, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.MatchedBy(func(req ledger.StakeRequest) bool {
		return req.Nonce == 3
	})).Return(tx, nil).Once()
	client.EXPECT().WaitMined(mock.Anything, tx).Return(receipt(tx), nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "✅")
	})).Return(nil).Once()

	attempt = c.Attempt(context.Background())
	require.Equal(t, staker.Confirmed, attempt.State)
	require.Equal(t, uint64(2), c.Status().Attempts)
}

func TestAttemptRevertedIsFailure(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(12, nil).Once()

	tx := stakeTx(12, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(tx, nil).Once()
	reverted := receipt(tx)
	reverted.Status = types.ReceiptStatusFailed
	client.EXPECT().WaitMined(mock.Anything, tx).Return(reverted, fmt.Errorf("%w: out of gas", ledger.ErrTxReverted)).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "❌ Staking failed: ") && strings.Contains(text, "reverted")
	})).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.Failed, attempt.State)
	require.ErrorIs(t, attempt.Err, ledger.ErrTxReverted)
	require.Nil(t, attempt.Replacement)
	_, ok := seq.Current()
	require.False(t, ok)
	require.Equal(t, uint64(1), c.Status().Failed)
}

func TestAttemptReadErrorReleasesGuard(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	client.EXPECT().TokenBalance(mock.Anything, account).Return(nil, errors.New("429 too many requests")).Once()

	c := newCoordinator(t, client, notifier, seq, WithNotifyFailures(false))
	attempt := c.Attempt(context.Background())

	require.Equal(t, staker.Failed, attempt.State)
	require.ErrorContains(t, attempt.Err, "429")
	require.False(t, c.Busy())
	require.Equal(t, uint64(1), c.Status().Failed)
}

func TestAttemptSingleFlight(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	expectReads(client, "50", "100", "70")
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(gweis(10), nil).Once()
	client.EXPECT().PendingNonceAt(mock.Anything, account).Return(0, nil).Once()

	tx := stakeTx(0, gweis(20))
	client.EXPECT().Stake(mock.Anything, mock.Anything).Return(tx, nil).Once()

	release := make(chan struct{})
	client.EXPECT().WaitMined(mock.Anything, tx).
		RunAndReturn(func(context.Context, *types.Transaction) (*types.Receipt, error) {
			<-release
			return receipt(tx), nil
		}).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	c := newCoordinator(t, client, notifier, seq)

	const n = 20
	var (
		start   = make(chan struct{})
		results = make(chan *staker.StakeAttempt, n)
		wg      sync.WaitGroup
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			<-start
			results <- c.Attempt(context.Background())
		}()
	}
	close(start)

	// Every trigger but the one holding the guard returns right away.
	for i := 0; i < n-1; i++ {
		select {
		case a := <-results:
			require.Nil(t, a)
		case <-time.After(5 * time.Second):
			t.Fatal("trigger wasn't dropped")
		}
	}
	require.True(t, c.Busy())
	require.Equal(t, staker.AwaitingConfirmation, c.Status().State)

	close(release)
	wg.Wait()
	winner := <-results
	require.NotNil(t, winner)
	require.Equal(t, staker.Confirmed, winner.State)

	status := c.Status()
	require.False(t, status.Busy)
	require.Equal(t, uint64(1), status.Attempts)
	require.Equal(t, uint64(n-1), status.Dropped)
}

func TestCoordinatorOptions(t *testing.T) {
	t.Parallel()

	client, notifier, seq := setup(t)
	sink, err := notify.NewSink(notifier)
	require.NoError(t, err)

	_, err = NewCoordinator(client, seq, sink, WithGasMultipliers(0, 1.5))
	require.Error(t, err)
	_, err = NewCoordinator(client, seq, sink, WithExplorerURL(""))
	require.Error(t, err)
	_, err = NewCoordinator(client, seq, sink, WithToken("", 18))
	require.Error(t, err)

	c, err := NewCoordinator(client, seq, sink,
		WithGasMultipliers(3, 2),
		WithExplorerURL("https://sepolia.etherscan.io/"),
		WithToken("TST", 6),
		WithNotifyFailures(false),
	)
	require.NoError(t, err)
	require.Equal(t, 3.0, c.config.FreshGasMultiplier)
	require.Equal(t, 2.0, c.config.ReplacementGasMultiplier)
	require.Equal(t, "https://sepolia.etherscan.io", c.config.ExplorerURL)
	require.Equal(t, "TST", c.config.TokenSymbol)
	require.Equal(t, uint8(6), c.planner.Decimals())
	require.False(t, c.config.NotifyFailures)
}

func setup(t *testing.T) (*mocks.Client, *mocks.Notifier, *nonceimpl.LocalSequencer) {
	t.Helper()

	client := mocks.NewClient(t)
	client.EXPECT().Address().Return(account).Maybe()
	notifier := mocks.NewNotifier(t)

	seq, err := nonceimpl.NewLocalSequencer(1, account, client)
	require.NoError(t, err)

	return client, notifier, seq
}

func newCoordinator(
	t *testing.T,
	client *mocks.Client,
	notifier *mocks.Notifier,
	seq *nonceimpl.LocalSequencer,
	opts ...Option,
) *Coordinator {
	t.Helper()

	sink, err := notify.NewSink(notifier)
	require.NoError(t, err)
	c, err := NewCoordinator(client, seq, sink, opts...)
	require.NoError(t, err)
	return c
}

func expectReads(client *mocks.Client, balance, poolMax, principal string) {
	client.EXPECT().TokenBalance(mock.Anything, account).Return(mustUnits(balance), nil)
	client.EXPECT().MaxPoolSize(mock.Anything).Return(mustUnits(poolMax), nil)
	client.EXPECT().TotalPrincipal(mock.Anything).Return(mustUnits(principal), nil)
}

func stakeTx(nonce uint64, gasPrice *big.Int) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      600_000,
		To:       &pool,
		Value:    big.NewInt(0),
		Data:     []byte{0x40, 0x00, 0xae, 0xa0},
	})
}

func selfTransferTx(nonce uint64, gasPrice *big.Int) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      21_000,
		To:       &account,
		Value:    big.NewInt(0),
	})
}

func receipt(tx *types.Transaction) *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: big.NewInt(100),
		GasUsed:     120_000,
	}
}

func gweis(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), gwei)
}

func units(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := planner.ParseUnits(s, 18)
	require.NoError(t, err)
	return v
}

func mustUnits(s string) *big.Int {
	v, err := planner.ParseUnits(s, 18)
	if err != nil {
		panic(err)
	}
	return v
}
