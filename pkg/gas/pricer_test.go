package gas

import (
	"context"
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textileio/go-autostaker/mocks"
)

func TestEscalate(t *testing.T) {
	t.Parallel()

	client := mocks.NewClient(t)
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(big.NewInt(10), nil)

	p := NewPricer(client)

	price, err := p.Escalate(context.Background(), FreshMultiplier)
	require.NoError(t, err)
	require.Equal(t, int64(20), price.Int64())

	price, err = p.Escalate(context.Background(), ReplacementMultiplier)
	require.NoError(t, err)
	require.Equal(t, int64(15), price.Int64())
}

func TestEscalateProviderError(t *testing.T) {
	t.Parallel()

	client := mocks.NewClient(t)
	client.EXPECT().SuggestGasPrice(mock.Anything).Return(nil, errors.New("rate limited"))

	_, err := NewPricer(client).Escalate(context.Background(), FreshMultiplier)
	require.ErrorContains(t, err, "rate limited")
}

func TestEscalateInvalidMultiplier(t *testing.T) {
	t.Parallel()

	// The provider isn't queried with a bad multiplier.
	p := NewPricer(mocks.NewClient(t))
	for _, m := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := p.Escalate(context.Background(), m)
		require.Error(t, err)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base       int64
		multiplier float64
		exp        int64
	}{
		{base: 10, multiplier: 2.0, exp: 20},
		{base: 11, multiplier: 1.5, exp: 16},
		{base: 7, multiplier: 1.5, exp: 10},
		{base: 3, multiplier: 0.5, exp: 1},
		{base: 0, multiplier: 2.0, exp: 0},
		{base: 25_000_000_000, multiplier: 1.5, exp: 37_500_000_000},
	}
	for _, tc := range tests {
		price, err := Scale(big.NewInt(tc.base), tc.multiplier)
		require.NoError(t, err)
		require.Equal(t, tc.exp, price.Int64(), "%d * %v", tc.base, tc.multiplier)
	}

	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	price, err := Scale(huge, 2.0)
	require.NoError(t, err)
	require.Equal(t, "246913578024691357802469135780", price.String())

	_, err = Scale(nil, 2.0)
	require.Error(t, err)
	_, err = Scale(big.NewInt(-1), 2.0)
	require.Error(t, err)
	_, err = Scale(big.NewInt(1), 0)
	require.Error(t, err)
}
