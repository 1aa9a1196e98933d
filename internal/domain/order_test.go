package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeFullAmount(t *testing.T) {
	t.Run("multiplies quantity by unit price", func(t *testing.T) {
		amount := decimal.RequireFromString("19.99")
		got := ComputeFullAmount(3, amount)
		assert.True(t, got.Equal(decimal.RequireFromString("59.97")), "got %s", got)
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		amount := decimal.RequireFromString("0.10")
		got := ComputeFullAmount(3, amount)
		assert.True(t, got.Equal(decimal.RequireFromString("0.30")), "got %s", got)
	})

	t.Run("zero price yields zero total", func(t *testing.T) {
		got := ComputeFullAmount(99999999999, decimal.Zero)
		assert.True(t, got.IsZero())
	})
}
