package rate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateCurrencyType(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateCurrencyType("USD"))
	require.NoError(t, v.ValidateCurrencyType("EUR"))

	require.ErrorIs(t, v.ValidateCurrencyType(""), ErrCurrencyRequired)
	require.ErrorIs(t, v.ValidateCurrencyType("US"), ErrCurrencyFormat)
	require.ErrorIs(t, v.ValidateCurrencyType("USDT"), ErrCurrencyFormat)
	require.ErrorIs(t, v.ValidateCurrencyType("us$"), ErrCurrencyFormat)
}

func TestValidator_ValidateMonthYear(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateMonthYear(1, 2024))
	require.NoError(t, v.ValidateMonthYear(12, 1999))

	require.ErrorIs(t, v.ValidateMonthYear(0, 2024), ErrMonthOutOfRange)
	require.ErrorIs(t, v.ValidateMonthYear(13, 2024), ErrMonthOutOfRange)
	require.ErrorIs(t, v.ValidateMonthYear(6, 0), ErrYearOutOfRange)
	require.ErrorIs(t, v.ValidateMonthYear(6, 10000), ErrYearOutOfRange)
}
