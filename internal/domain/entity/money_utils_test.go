package entity

import (
	"testing"

	errs "github.com/querykicks/querykicks/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"0", 0},
			{"0.00", 0},
			{"1", 100},
			{"10.15", 1015},
			{"10.1", 1010},
			{"10.", 1000},
			{"129.99", 12999},
			{"  25.50  ", 2550},
			{"9999999999.99", 999999999999},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Negative amounts are rejected", func(t *testing.T) {
		cents, err := ParseAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Equal(t, int64(0), cents)
	})

	t.Run("Invalid formats", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			"abc",
			"10.123",
			"10.00.00",
			"$10.00",
			"10,00",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := ParseAmount(tc)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestFormatCents(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{99, "0.99"},
		{100, "1.00"},
		{1015, "10.15"},
		{12999, "129.99"},
		{-1015, "-10.15"},
		{999999999999, "9999999999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCents(tc.cents))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, amount := range []string{"0.00", "0.05", "1.00", "10.15", "129.99"} {
		cents, err := ParseAmount(amount)
		require.NoError(t, err)
		assert.Equal(t, amount, FormatCents(cents))
	}
}
