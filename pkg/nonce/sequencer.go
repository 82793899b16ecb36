package nonce

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Sequencer hands out the nonce for the next transaction of a single account.
type Sequencer interface {
	// Next returns the nonce to use for the next submission. When no nonce is cached the
	// account's pending transaction count is fetched from the chain, otherwise the cached
	// value is incremented. On error the sequencer stays unset.
	Next(context.Context) (uint64, error)

	// Invalidate drops the cached nonce so the next call re-syncs with the chain.
	Invalidate()
}

// ChainClient provides the basic api a chain needs to provide for a Sequencer.
type ChainClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}
