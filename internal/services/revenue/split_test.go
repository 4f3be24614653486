package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_SharesSumToGross(t *testing.T) {
	amounts := []string{"0", "0.01", "1", "2.50", "99.99", "100", "1234.56", "0.333", "10000000.07"}

	for _, a := range amounts {
		gross := decimal.RequireFromString(a)
		network, affiliate, err := Split(gross)
		require.NoError(t, err, "amount %s", a)
		assert.True(t, network.Add(affiliate).Equal(gross), "shares must sum to gross for %s", a)
		assert.False(t, network.IsNegative())
		assert.False(t, affiliate.IsNegative())
	}
}

func TestSplit_FiftyFifty(t *testing.T) {
	network, affiliate, err := Split(decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	assert.True(t, affiliate.Equal(decimal.RequireFromString("50")))
	assert.True(t, network.Equal(decimal.RequireFromString("50")))
}

func TestSplit_NegativeAmount(t *testing.T) {
	_, _, err := Split(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "0.33", Round2(decimal.RequireFromString("0.333")).String())
	assert.Equal(t, "1.67", Round2(decimal.RequireFromString("1.665")).String())
	assert.Equal(t, "50", Round2(decimal.RequireFromString("50")).String())
}
