// Package gas computes escalated gas prices for fresh submissions and replacements.
package gas

import (
	"context"
	"fmt"
	"math"
	"math/big"
)

// Default multipliers applied on top of a base price.
const (
	FreshMultiplier       = 2.0
	ReplacementMultiplier = 1.5
)

// ChainClient provides the gas price oracle a Pricer needs.
type ChainClient interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Pricer escalates the network gas price. It never retries, callers decide when to ask.
type Pricer struct {
	client ChainClient
}

// NewPricer returns a new Pricer.
func NewPricer(client ChainClient) *Pricer {
	return &Pricer{client: client}
}

// Escalate returns floor(networkPrice * multiplier).
func (p *Pricer) Escalate(ctx context.Context, multiplier float64) (*big.Int, error) {
	if err := validateMultiplier(multiplier); err != nil {
		return nil, err
	}
	price, err := p.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get network gas price: %s", err)
	}
	return Scale(price, multiplier)
}

// Scale returns floor(base * multiplier).
func Scale(base *big.Int, multiplier float64) (*big.Int, error) {
	if err := validateMultiplier(multiplier); err != nil {
		return nil, err
	}
	if base == nil || base.Sign() < 0 {
		return nil, fmt.Errorf("invalid base gas price %v", base)
	}

	m := new(big.Rat)
	if m.SetFloat64(multiplier) == nil {
		return nil, fmt.Errorf("invalid multiplier %v", multiplier)
	}
	r := new(big.Rat).Mul(new(big.Rat).SetInt(base), m)

	// Quo truncates towards zero, which is floor for non-negative values.
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}

func validateMultiplier(multiplier float64) error {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier <= 0 {
		return fmt.Errorf("multiplier must be a positive finite number, got %v", multiplier)
	}
	return nil
}
