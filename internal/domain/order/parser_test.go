package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_SingleItem(t *testing.T) {
	ord, err := ParseArgs([]string{"3-1", "balanceDebitCard=100"})

	require.NoError(t, err)
	assert.Equal(t, []Line{{ProductID: 3, Quantity: 1}}, ord.Lines)
	assert.True(t, decimal.NewFromInt(100).Equal(ord.BalanceDebitCard))
	assert.Empty(t, ord.DiscountCard)
}

func TestParseArgs_DuplicateIDsAggregate(t *testing.T) {
	ord, err := ParseArgs([]string{"3-1", "1-2", "3-4", "balanceDebitCard=100"})

	require.NoError(t, err)
	// Quantities merge into the first occurrence, keeping its position.
	assert.Equal(t, []Line{
		{ProductID: 3, Quantity: 5},
		{ProductID: 1, Quantity: 2},
	}, ord.Lines)
}

func TestParseArgs_DiscountCard(t *testing.T) {
	ord, err := ParseArgs([]string{"1-1", "discountCard=1111", "balanceDebitCard=50"})

	require.NoError(t, err)
	assert.Equal(t, "1111", ord.DiscountCard)
}

func TestParseArgs_MalformedCardIgnored(t *testing.T) {
	ord, err := ParseArgs([]string{"1-1", "discountCard=123", "balanceDebitCard=50"})

	require.NoError(t, err)
	assert.Empty(t, ord.DiscountCard)
}

func TestParseArgs_FractionalBalance(t *testing.T) {
	ord, err := ParseArgs([]string{"1-1", "balanceDebitCard=100.53"})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100.53").Equal(ord.BalanceDebitCard))
}

func TestParseArgs_NegativeBalance(t *testing.T) {
	ord, err := ParseArgs([]string{"1-1", "balanceDebitCard=-5"})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-5).Equal(ord.BalanceDebitCard))
}

func TestParseArgs_UnknownArgsIgnored(t *testing.T) {
	ord, err := ParseArgs([]string{"--verbose", "1-1", "foo=bar", "balanceDebitCard=10"})

	require.NoError(t, err)
	assert.Len(t, ord.Lines, 1)
}

func TestParseArgs_EmptyOrder(t *testing.T) {
	_, err := ParseArgs([]string{"balanceDebitCard=100"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Order is empty!", vErr.Reason)
	assert.Equal(t, "BAD REQUEST", vErr.Label())
}

func TestParseArgs_MissingBalance(t *testing.T) {
	_, err := ParseArgs([]string{"1-1"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Balance Debit Card is required!", vErr.Reason)
}

func TestParseArgs_TooPreciseBalanceNotMatched(t *testing.T) {
	// The balance grammar allows at most two fractional digits.
	_, err := ParseArgs([]string{"1-1", "balanceDebitCard=10.123"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Balance Debit Card is required!", vErr.Reason)
}
