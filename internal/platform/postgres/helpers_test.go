package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder(t *testing.T) {
	t.Run("numbers placeholders in assignment order", func(t *testing.T) {
		var b updateBuilder
		b.set("title", "Widget")
		b.set("amount", "19.99")

		query, args := b.build("products", 7)

		assert.Equal(t, "UPDATE products SET title = $1, amount = $2, updated_at = NOW() WHERE id = $3", query)
		assert.Equal(t, []any{"Widget", "19.99", int64(7)}, args)
	})

	t.Run("handles a single assignment", func(t *testing.T) {
		var b updateBuilder
		b.set("quantity", int64(12))

		query, args := b.build("product_warehouses", 3)

		assert.Equal(t, "UPDATE product_warehouses SET quantity = $1, updated_at = NOW() WHERE id = $2", query)
		assert.Equal(t, []any{int64(12), int64(3)}, args)
	})
}
