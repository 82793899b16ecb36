package impl

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/nonce"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/instrument"
)

// unset marks that no nonce is cached.
const unset = -1

// LocalSequencer implements a nonce sequencer that keeps the last used nonce in memory.
type LocalSequencer struct {
	log         zerolog.Logger
	address     common.Address
	chainClient nonce.ChainClient

	mu        sync.Mutex
	currNonce int64

	// metrics
	mBaseLabels []attribute.KeyValue
	mResyncs    instrument.Int64Counter
}

var _ nonce.Sequencer = (*LocalSequencer)(nil)

// NewLocalSequencer creates a new sequencer for address. No chain call is made until
// the first Next.
func NewLocalSequencer(chainID int64, address common.Address, chainClient nonce.ChainClient) (*LocalSequencer, error) {
	s := &LocalSequencer{
		log: logger.With().
			Str("component", "nonce").
			Str("address", address.Hex()).
			Logger(),
		address:     address,
		chainClient: chainClient,
		currNonce:   unset,
	}
	if err := s.initMetrics(chainID); err != nil {
		return nil, fmt.Errorf("initializing metrics: %s", err)
	}
	return s, nil
}

// Next returns the nonce to be used in the next transaction.
func (s *LocalSequencer) Next(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currNonce != unset {
		s.currNonce++
		return uint64(s.currNonce), nil
	}

	n, err := s.chainClient.PendingNonceAt(ctx, s.address)
	if err != nil {
		return 0, fmt.Errorf("get pending nonce: %s", err)
	}
	s.mResyncs.Add(ctx, 1, s.mBaseLabels...)
	s.currNonce = int64(n)
	s.log.Debug().Uint64("nonce", n).Msg("nonce synced with the chain")

	return n, nil
}

// Invalidate forgets the cached nonce.
func (s *LocalSequencer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currNonce != unset {
		s.log.Debug().Int64("nonce", s.currNonce).Msg("nonce invalidated")
	}
	s.currNonce = unset
}

// Current returns the cached nonce and whether one is set.
func (s *LocalSequencer) Current() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currNonce == unset {
		return 0, false
	}
	return uint64(s.currNonce), true
}
