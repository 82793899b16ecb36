// Package planner computes how much of the wallet balance can be moved into the staking
// pool. All values are in the asset's smallest on-chain unit.
package planner

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInsufficientAmount indicates there is nothing worth staking: the balance is empty,
// the pool is full, or less than one whole token would be transferred.
var ErrInsufficientAmount = errors.New("insufficient amount to stake")

// Planner computes stake amounts for an asset with a fixed number of decimals.
type Planner struct {
	decimals uint8
	unit     *big.Int
}

// New returns a planner for an asset with the given decimals.
func New(decimals uint8) *Planner {
	return &Planner{
		decimals: decimals,
		unit:     new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil),
	}
}

// Decimals returns the asset decimals.
func (p *Planner) Decimals() uint8 {
	return p.decimals
}

// Plan returns min(balance, poolMax-poolPrincipal). The whole-unit floor of that value
// must be positive, but the returned amount keeps full precision.
func (p *Planner) Plan(balance, poolMax, poolPrincipal *big.Int) (*big.Int, error) {
	if balance == nil || poolMax == nil || poolPrincipal == nil {
		return nil, errors.New("balance and pool capacity are required")
	}
	if balance.Sign() <= 0 {
		return nil, fmt.Errorf("balance is %s: %w", balance, ErrInsufficientAmount)
	}
	available := new(big.Int).Sub(poolMax, poolPrincipal)
	if available.Sign() <= 0 {
		return nil, fmt.Errorf("pool has no space left (%s): %w", available, ErrInsufficientAmount)
	}

	amount := new(big.Int).Set(balance)
	if available.Cmp(amount) < 0 {
		amount.Set(available)
	}

	if whole := new(big.Int).Quo(amount, p.unit); whole.Sign() <= 0 {
		return nil, fmt.Errorf("amount %s is below one whole unit: %w", FormatUnits(amount, p.decimals), ErrInsufficientAmount)
	}

	return amount, nil
}
