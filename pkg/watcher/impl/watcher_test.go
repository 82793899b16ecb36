package impl

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textileio/go-autostaker/mocks"
	"github.com/textileio/go-autostaker/pkg/ledger"
	"github.com/textileio/go-autostaker/pkg/notify"
	"github.com/textileio/go-autostaker/pkg/staker"
	"github.com/textileio/go-autostaker/pkg/watcher"
	"go.uber.org/atomic"
)

var account = common.HexToAddress("0x6fdc9b5ba3c8d8d0c49a0da2ea0fdd5d4fb7b3b1")

func TestEventTriggersAttempt(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	msgs := make(chan ledger.Message, 1)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, msgs), nil).Once()
	client.EXPECT().TokenBalance(mock.Anything, account).Return(big.NewInt(1), nil).Once()
	coordinator.EXPECT().Busy().Return(false).Once()

	attempted := make(chan struct{})
	coordinator.EXPECT().Attempt(mock.Anything).RunAndReturn(func(context.Context) *staker.StakeAttempt {
		close(attempted)
		return &staker.StakeAttempt{ID: uuid.New(), State: staker.Confirmed}
	}).Once()

	cancel, done := run(t, client, coordinator, notifier)
	defer cancel()

	msgs <- ledger.Message{Event: event()}
	requireClosed(t, attempted)

	cancel()
	requireClosed(t, done)
}

func TestEventSkippedWhenBusy(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	msgs := make(chan ledger.Message, 1)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, msgs), nil).Once()

	checked := make(chan struct{})
	coordinator.EXPECT().Busy().RunAndReturn(func() bool {
		close(checked)
		return true
	}).Once()

	cancel, done := run(t, client, coordinator, notifier)
	msgs <- ledger.Message{Event: event()}
	requireClosed(t, checked)

	cancel()
	requireClosed(t, done)
}

func TestEventSkippedWithEmptyBalance(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	msgs := make(chan ledger.Message, 1)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, msgs), nil).Once()
	coordinator.EXPECT().Busy().Return(false).Once()

	checked := make(chan struct{})
	client.EXPECT().TokenBalance(mock.Anything, account).
		RunAndReturn(func(context.Context, common.Address) (*big.Int, error) {
			close(checked)
			return big.NewInt(0), nil
		}).Once()

	cancel, done := run(t, client, coordinator, notifier)
	msgs <- ledger.Message{Event: event()}
	requireClosed(t, checked)

	cancel()
	requireClosed(t, done)
}

func TestSetupFailureResubscribes(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	subscribed := make(chan struct{})
	msgs := make(chan ledger.Message)
	sub := subscription(t, msgs)
	client.EXPECT().SubscribeUnstaked(mock.Anything).
		RunAndReturn(func(context.Context) (ledger.Subscription, error) {
			close(subscribed)
			return sub, nil
		}).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "❌ Event setup failed: ") && strings.Contains(text, "connection refused")
	})).Return(nil).Once()

	cancel, done := run(t, client, coordinator, notifier)
	requireClosed(t, subscribed)

	cancel()
	requireClosed(t, done)
}

func TestStreamErrorResubscribes(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	first := make(chan ledger.Message, 1)
	first <- ledger.Message{Err: errors.New("websocket: close 1006")}
	close(first)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, first), nil).Once()

	second := make(chan ledger.Message, 1)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, second), nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "❌ Event stream error: ") && strings.Contains(text, "close 1006")
	})).Return(nil).Once()

	// The second subscription keeps delivering events.
	client.EXPECT().TokenBalance(mock.Anything, account).Return(big.NewInt(1), nil).Once()
	coordinator.EXPECT().Busy().Return(false).Once()
	attempted := make(chan struct{})
	coordinator.EXPECT().Attempt(mock.Anything).RunAndReturn(func(context.Context) *staker.StakeAttempt {
		close(attempted)
		return nil
	}).Once()

	cancel, done := run(t, client, coordinator, notifier)
	second <- ledger.Message{Event: event()}
	requireClosed(t, attempted)

	cancel()
	requireClosed(t, done)
}

func TestResubscribesForever(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	calls := atomic.NewInt64(0)
	client.EXPECT().SubscribeUnstaked(mock.Anything).
		RunAndReturn(func(context.Context) (ledger.Subscription, error) {
			calls.Inc()
			return nil, errors.New("provider down")
		})

	// Notifications are throttled, only the first failure goes out.
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	cancel, done := run(t, client, coordinator, notifier)
	require.Eventually(t, func() bool {
		return calls.Load() >= 10
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	requireClosed(t, done)
}

func TestRunWaitsForAttempt(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	msgs := make(chan ledger.Message, 1)
	client.EXPECT().SubscribeUnstaked(mock.Anything).Return(subscription(t, msgs), nil).Once()
	client.EXPECT().TokenBalance(mock.Anything, account).Return(big.NewInt(1), nil).Once()
	coordinator.EXPECT().Busy().Return(false).Once()

	started, release := make(chan struct{}), make(chan struct{})
	coordinator.EXPECT().Attempt(mock.Anything).RunAndReturn(func(context.Context) *staker.StakeAttempt {
		close(started)
		<-release
		return nil
	}).Once()

	cancel, done := run(t, client, coordinator, notifier)
	msgs <- ledger.Message{Event: event()}
	requireClosed(t, started)

	cancel()
	select {
	case <-done:
		t.Fatal("run returned with an attempt in flight")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	requireClosed(t, done)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	client, coordinator, notifier := setup(t)
	sink, err := notify.NewSink(notifier)
	require.NoError(t, err)

	_, err = New(client, coordinator, sink, watcher.WithResubscribeDelay(0))
	require.Error(t, err)

	w, err := New(client, coordinator, sink, watcher.WithResubscribeDelay(time.Second), watcher.WithTokenDecimals(6))
	require.NoError(t, err)
	require.Equal(t, time.Second, w.config.ResubscribeDelay)
	require.Equal(t, uint8(6), w.config.TokenDecimals)
}

func setup(t *testing.T) (*mocks.Client, *mocks.Coordinator, *mocks.Notifier) {
	t.Helper()

	client := mocks.NewClient(t)
	client.EXPECT().Address().Return(account).Maybe()

	return client, mocks.NewCoordinator(t), mocks.NewNotifier(t)
}

func run(
	t *testing.T,
	client *mocks.Client,
	coordinator *mocks.Coordinator,
	notifier *mocks.Notifier,
) (context.CancelFunc, chan struct{}) {
	t.Helper()

	sink, err := notify.NewSink(notifier)
	require.NoError(t, err)
	w, err := New(client, coordinator, sink, watcher.WithResubscribeDelay(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, w.Run(ctx))
	}()

	return cancel, done
}

func subscription(t *testing.T, msgs chan ledger.Message) *mocks.Subscription {
	t.Helper()

	sub := mocks.NewSubscription(t)
	sub.EXPECT().Messages().Return(msgs).Maybe()
	sub.EXPECT().Unsubscribe().Return().Maybe()
	return sub
}

func event() *ledger.Unstaked {
	return &ledger.Unstaked{
		Staker:            common.HexToAddress("0x01"),
		Amount:            big.NewInt(1_000_000_000_000_000_000),
		NewStake:          big.NewInt(0),
		NewTotalPrincipal: big.NewInt(5_000_000_000_000_000_000),
		BlockNumber:       17_000_000,
		TxHash:            common.HexToHash("0xabc"),
	}
}

func requireClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}
