package ethereum

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"
	"github.com/textileio/go-autostaker/pkg/ledger"
)

const unstakedEvent = "Unstaked"

// unstakedLog mirrors the Unstaked event arguments for abi unpacking.
type unstakedLog struct {
	Staker            common.Address
	Amount            *big.Int
	NewStake          *big.Int
	NewTotalPrincipal *big.Int
}

// SubscribeUnstaked subscribes to Unstaked events of the staking pool from the latest block.
func (c *Client) SubscribeUnstaked(ctx context.Context) (ledger.Subscription, error) {
	logs, sub, err := c.pool.WatchLogs(&bind.WatchOpts{Context: ctx}, unstakedEvent)
	if err != nil {
		return nil, errors.Wrap(err, "watching unstaked logs")
	}

	s := &subscription{
		msgs: make(chan ledger.Message),
		sub:  sub,
		quit: make(chan struct{}),
	}
	go s.relay(ctx, logs, c.parseUnstaked)

	return s, nil
}

func (c *Client) parseUnstaked(l types.Log) (*ledger.Unstaked, error) {
	var ev unstakedLog
	if err := c.pool.UnpackLog(&ev, unstakedEvent, l); err != nil {
		return nil, errors.Wrapf(err, "unpacking unstaked log of txn %s", l.TxHash)
	}
	return &ledger.Unstaked{
		Staker:            ev.Staker,
		Amount:            ev.Amount,
		NewStake:          ev.NewStake,
		NewTotalPrincipal: ev.NewTotalPrincipal,
		BlockNumber:       l.BlockNumber,
		TxHash:            l.TxHash,
	}, nil
}

// subscription relays decoded logs and the subscription error into a single stream.
type subscription struct {
	msgs chan ledger.Message
	sub  event.Subscription

	once sync.Once
	quit chan struct{}
}

// Messages returns the stream of events.
func (s *subscription) Messages() <-chan ledger.Message {
	return s.msgs
}

// Unsubscribe stops the relay and the underlying log subscription.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.quit)
		s.sub.Unsubscribe()
	})
}

func (s *subscription) relay(
	ctx context.Context,
	logs <-chan types.Log,
	parse func(types.Log) (*ledger.Unstaked, error),
) {
	defer close(s.msgs)
	defer s.sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.quit:
			return
		case err, ok := <-s.sub.Err():
			// A closed error channel without error means the subscription was unsubscribed.
			if !ok || err == nil {
				return
			}
			s.send(ctx, ledger.Message{Err: err})
			return
		case l := <-logs:
			if l.Removed {
				continue
			}
			ev, err := parse(l)
			if err != nil {
				s.send(ctx, ledger.Message{Err: err})
				return
			}
			if !s.send(ctx, ledger.Message{Event: ev}) {
				return
			}
		}
	}
}

func (s *subscription) send(ctx context.Context, msg ledger.Message) bool {
	select {
	case s.msgs <- msg:
		return true
	case <-ctx.Done():
		return false
	case <-s.quit:
		return false
	}
}
