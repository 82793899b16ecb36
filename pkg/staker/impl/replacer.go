package impl

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/pkg/gas"
	"github.com/textileio/go-autostaker/pkg/ledger"
	"github.com/textileio/go-autostaker/pkg/staker"
)

// Replacer displaces a stuck transaction with a zero value self-transfer that reuses
// its nonce at an escalated gas price.
type Replacer struct {
	log        zerolog.Logger
	client     ledger.Client
	multiplier float64
}

// NewReplacer returns a new Replacer.
func NewReplacer(client ledger.Client, multiplier float64) *Replacer {
	return &Replacer{
		log:        logger.With().Str("component", "replacer").Logger(),
		client:     client,
		multiplier: multiplier,
	}
}

// Replace submits the replacement of hash priced at basePrice times the multiplier. A nil
// basePrice uses the gas price of the stuck transaction. The replacement is not awaited.
// If the stuck transaction is unknown or already mined the replacement is skipped.
func (r *Replacer) Replace(ctx context.Context, hash common.Hash, basePrice *big.Int) (*staker.Replacement, error) {
	rep := &staker.Replacement{StuckTxHash: hash}

	tx, isPending, err := r.client.TransactionByHash(ctx, hash)
	if err != nil {
		rep.Err = fmt.Errorf("%w: get stuck transaction: %s", staker.ErrReplacement, err)
		return rep, rep.Err
	}
	if tx == nil || !isPending {
		r.log.Info().
			Str("hash", hash.Hex()).
			Bool("known", tx != nil).
			Msg("stuck transaction is no longer pending, skipping replacement")
		rep.Skipped = true
		return rep, nil
	}

	if basePrice == nil {
		basePrice = tx.GasPrice()
	}
	gasPrice, err := gas.Scale(basePrice, r.multiplier)
	if err != nil {
		rep.Err = fmt.Errorf("%w: escalating gas price: %s", staker.ErrReplacement, err)
		return rep, rep.Err
	}
	rep.Nonce = tx.Nonce()
	rep.GasPrice = gasPrice

	rtx, err := r.client.SelfTransfer(ctx, tx.Nonce(), gasPrice)
	if err != nil {
		rep.Err = fmt.Errorf("%w: sending self transfer: %s", staker.ErrReplacement, err)
		return rep, rep.Err
	}
	rep.TxHash = rtx.Hash()

	r.log.Info().
		Str("stuck_hash", hash.Hex()).
		Str("hash", rtx.Hash().Hex()).
		Uint64("nonce", rtx.Nonce()).
		Str("gas_price", gasPrice.String()).
		Msg("replacement transaction sent")

	return rep, nil
}
