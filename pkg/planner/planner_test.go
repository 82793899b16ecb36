package planner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	t.Parallel()

	p := New(18)

	tests := []struct {
		name      string
		balance   string
		poolMax   string
		principal string
		exp       string
		expErr    error
	}{
		{name: "capped by pool space", balance: "5.2", poolMax: "100", principal: "98", exp: "2"},
		{name: "capped by balance", balance: "50", poolMax: "100", principal: "70", exp: "30"},
		{name: "below one whole unit", balance: "0.5", poolMax: "100", principal: "10", expErr: ErrInsufficientAmount},
		{name: "empty balance", balance: "0", poolMax: "100", principal: "10", expErr: ErrInsufficientAmount},
		{name: "full pool", balance: "10", poolMax: "100", principal: "100", expErr: ErrInsufficientAmount},
		{name: "over full pool", balance: "10", poolMax: "100", principal: "101", expErr: ErrInsufficientAmount},
		{name: "space below one unit", balance: "10", poolMax: "100", principal: "99.9", expErr: ErrInsufficientAmount},
		{name: "keeps full precision", balance: "7.123456789012345678", poolMax: "1000", principal: "0", exp: "7.123456789012345678"},
		{name: "exactly one unit", balance: "1", poolMax: "1000", principal: "0", exp: "1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, err := p.Plan(mustParse(t, tc.balance), mustParse(t, tc.poolMax), mustParse(t, tc.principal))
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Nil(t, amount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 0, mustParse(t, tc.exp).Cmp(amount), "got %s", FormatUnits(amount, 18))
		})
	}
}

func TestPlanNeverExceedsMinimum(t *testing.T) {
	t.Parallel()

	p := New(18)
	values := []string{"0", "0.9", "1", "1.5", "2", "30", "50", "98", "100", "1000"}
	for _, b := range values {
		for _, max := range values {
			for _, principal := range values {
				balance, poolMax, poolPrincipal := mustParse(t, b), mustParse(t, max), mustParse(t, principal)
				amount, err := p.Plan(balance, poolMax, poolPrincipal)
				if err != nil {
					require.ErrorIs(t, err, ErrInsufficientAmount)
					continue
				}
				available := new(big.Int).Sub(poolMax, poolPrincipal)
				require.True(t, amount.Cmp(balance) <= 0)
				require.True(t, amount.Cmp(available) <= 0)
				require.True(t, amount.Cmp(mustParse(t, "1")) >= 0)
			}
		}
	}
}

func TestPlanMissingInputs(t *testing.T) {
	t.Parallel()

	_, err := New(18).Plan(nil, big.NewInt(1), big.NewInt(0))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInsufficientAmount)
}

func TestPlanOtherDecimals(t *testing.T) {
	t.Parallel()

	p := New(6)
	require.Equal(t, uint8(6), p.Decimals())

	_, err := p.Plan(big.NewInt(999_999), big.NewInt(10_000_000), big.NewInt(0))
	require.ErrorIs(t, err, ErrInsufficientAmount)

	amount, err := p.Plan(big.NewInt(1_500_000), big.NewInt(10_000_000), big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, int64(1_500_000), amount.Int64())
}

func TestParseUnits(t *testing.T) {
	t.Parallel()

	v, err := ParseUnits("5.2", 18)
	require.NoError(t, err)
	require.Equal(t, "5200000000000000000", v.String())

	v, err = ParseUnits(".5", 18)
	require.NoError(t, err)
	require.Equal(t, "500000000000000000", v.String())

	v, err = ParseUnits("-1.25", 2)
	require.NoError(t, err)
	require.Equal(t, "-125", v.String())

	v, err = ParseUnits("42", 0)
	require.NoError(t, err)
	require.Equal(t, "42", v.String())

	_, err = ParseUnits("1.123", 2)
	require.Error(t, err)
	_, err = ParseUnits("abc", 18)
	require.Error(t, err)
	_, err = ParseUnits("", 18)
	require.Error(t, err)
}

func TestFormatUnits(t *testing.T) {
	t.Parallel()

	require.Equal(t, "30.000000000000000000", FormatUnits(mustParse(t, "30"), 18))
	require.Equal(t, "0.500000000000000000", FormatUnits(mustParse(t, "0.5"), 18))
	require.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), 18))
	require.Equal(t, "-1.25", FormatUnits(big.NewInt(-125), 2))
	require.Equal(t, "42", FormatUnits(big.NewInt(42), 0))
	require.Equal(t, "<nil>", FormatUnits(nil, 18))
}

func mustParse(t *testing.T, s string) *big.Int {
	t.Helper()
	v, err := ParseUnits(s, 18)
	require.NoError(t, err)
	return v
}
