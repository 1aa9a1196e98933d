package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profel/inventory-api/internal/domain"
)

func orderFixture(t *testing.T) (*memOrderStore, *memProductStore, *memWarehouseStore, *OrderService) {
	t.Helper()
	products := newMemProductStore()
	warehouses := newMemWarehouseStore()
	orders := newMemOrderStore(products)
	svc := NewOrderService(orders, products, warehouses, nil)
	return orders, products, warehouses, svc
}

func TestOrderServiceCreate(t *testing.T) {
	t.Run("prices the order at quantity times current amount", func(t *testing.T) {
		orders, products, warehouses, svc := orderFixture(t)
		productID := products.add("Phone case", "19.99")
		warehouseID := warehouses.add("Main", true)

		id, err := svc.Create(context.Background(), CreateOrderInput{
			ClientID:    1,
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    3,
		})
		require.NoError(t, err)

		order := orders.orders[id]
		require.NotNil(t, order)
		assert.True(t, order.FullAmount.Equal(decimal.RequireFromString("59.97")),
			"got %s", order.FullAmount)
		assert.Equal(t, int64(1), order.ClientID)
	})

	t.Run("missing relations report both violations", func(t *testing.T) {
		_, _, _, svc := orderFixture(t)

		_, err := svc.Create(context.Background(), CreateOrderInput{
			ClientID:    1,
			ProductID:   5,
			WarehouseID: 9,
			Quantity:    1,
		})

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Violations["product_id"], "The selected product id is invalid.")
		assert.Contains(t, validationErr.Violations["warehouse_id"], "The selected warehouse id is invalid.")
	})
}

func TestOrderServiceUpdate(t *testing.T) {
	t.Run("new quantity reprices from the current product amount", func(t *testing.T) {
		orders, products, warehouses, svc := orderFixture(t)
		productID := products.add("Phone case", "10.00")
		warehouseID := warehouses.add("Main", true)
		ctx := context.Background()

		id, err := svc.Create(ctx, CreateOrderInput{
			ClientID: 1, ProductID: productID, WarehouseID: warehouseID, Quantity: 2,
		})
		require.NoError(t, err)

		// Price change after the order was placed.
		products.products[productID].Amount = decimal.RequireFromString("12.50")

		quantity := int64(4)
		require.NoError(t, svc.Update(ctx, id, UpdateOrderInput{Quantity: &quantity}))

		order := orders.orders[id]
		assert.Equal(t, int64(4), order.Quantity)
		assert.True(t, order.FullAmount.Equal(decimal.RequireFromString("50.00")),
			"got %s", order.FullAmount)
	})

	t.Run("stored total is untouched until quantity changes", func(t *testing.T) {
		orders, products, warehouses, svc := orderFixture(t)
		productID := products.add("Phone case", "10.00")
		warehouseID := warehouses.add("Main", true)
		ctx := context.Background()

		id, err := svc.Create(ctx, CreateOrderInput{
			ClientID: 1, ProductID: productID, WarehouseID: warehouseID, Quantity: 2,
		})
		require.NoError(t, err)

		products.products[productID].Amount = decimal.RequireFromString("99.99")

		err = svc.Update(ctx, id, UpdateOrderInput{})
		assert.ErrorIs(t, err, ErrNoChanges)
		assert.True(t, orders.orders[id].FullAmount.Equal(decimal.RequireFromString("20.00")))
	})

	t.Run("unknown id is a validation failure", func(t *testing.T) {
		_, _, _, svc := orderFixture(t)
		quantity := int64(1)

		err := svc.Update(context.Background(), 42, UpdateOrderInput{Quantity: &quantity})

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Violations["id"], "The selected id is invalid.")
	})
}

func TestOrderServiceDelete(t *testing.T) {
	orders, products, warehouses, svc := orderFixture(t)
	productID := products.add("Phone case", "10.00")
	warehouseID := warehouses.add("Main", true)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateOrderInput{
		ClientID: 1, ProductID: productID, WarehouseID: warehouseID, Quantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.Empty(t, orders.orders)

	err = svc.Delete(ctx, id)
	assert.Error(t, err)
}
