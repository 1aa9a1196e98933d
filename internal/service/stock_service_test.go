package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

func stockFixture(t *testing.T) (*memStockStore, *memProductStore, *memWarehouseStore, *StockService) {
	t.Helper()
	products := newMemProductStore()
	warehouses := newMemWarehouseStore()
	stocks := newMemStockStore()
	svc := NewStockService(stocks, products, warehouses, nil)
	return stocks, products, warehouses, svc
}

func TestStockServiceCreate(t *testing.T) {
	t.Run("accepts a fresh pair", func(t *testing.T) {
		stocks, products, warehouses, svc := stockFixture(t)
		productID := products.add("Phone case", "19.99")
		warehouseID := warehouses.add("Main", true)

		id, err := svc.Create(context.Background(), CreateStockInput{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), stocks.stocks[id].Quantity)
	})

	t.Run("rejects a duplicate pair", func(t *testing.T) {
		_, products, warehouses, svc := stockFixture(t)
		productID := products.add("Phone case", "19.99")
		warehouseID := warehouses.add("Main", true)
		ctx := context.Background()

		_, err := svc.Create(ctx, CreateStockInput{ProductID: productID, WarehouseID: warehouseID, Quantity: 10})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateStockInput{ProductID: productID, WarehouseID: warehouseID, Quantity: 5})
		assert.ErrorIs(t, err, store.ErrStockExists)
	})

	t.Run("same product in another warehouse is allowed", func(t *testing.T) {
		_, products, warehouses, svc := stockFixture(t)
		productID := products.add("Phone case", "19.99")
		first := warehouses.add("Main", true)
		second := warehouses.add("Backup", false)
		ctx := context.Background()

		_, err := svc.Create(ctx, CreateStockInput{ProductID: productID, WarehouseID: first, Quantity: 10})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateStockInput{ProductID: productID, WarehouseID: second, Quantity: 3})
		assert.NoError(t, err)
	})

	t.Run("missing relations report violations", func(t *testing.T) {
		_, _, _, svc := stockFixture(t)

		_, err := svc.Create(context.Background(), CreateStockInput{ProductID: 7, WarehouseID: 8, Quantity: 1})

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Violations["product_id"], "The selected product id is invalid.")
		assert.Contains(t, validationErr.Violations["warehouse_id"], "The selected warehouse id is invalid.")
	})
}

func TestStockServiceUpdate(t *testing.T) {
	stocks, products, warehouses, svc := stockFixture(t)
	productID := products.add("Phone case", "19.99")
	warehouseID := warehouses.add("Main", true)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateStockInput{ProductID: productID, WarehouseID: warehouseID, Quantity: 10})
	require.NoError(t, err)

	t.Run("quantity applies", func(t *testing.T) {
		quantity := int64(25)
		require.NoError(t, svc.Update(ctx, id, UpdateStockInput{Quantity: &quantity}))
		assert.Equal(t, int64(25), stocks.stocks[id].Quantity)
	})

	t.Run("empty payload reports no changes", func(t *testing.T) {
		err := svc.Update(ctx, id, UpdateStockInput{})
		assert.ErrorIs(t, err, ErrNoChanges)
	})

	t.Run("unknown id is a validation failure", func(t *testing.T) {
		quantity := int64(1)
		err := svc.Update(ctx, 404, UpdateStockInput{Quantity: &quantity})

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Violations["id"], "The selected id is invalid.")
	})
}
