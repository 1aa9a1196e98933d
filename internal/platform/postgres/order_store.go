package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/platform/logger"
	"github.com/profel/inventory-api/internal/store"
)

// PostgresOrderStore implements the store.OrderStore interface using a
// PostgreSQL database as the storage backend. Reads join users, products
// and warehouses to return names instead of ids.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface. If logger is nil, the default logger is used.
func NewPostgresOrderStore(db store.DBTX, log *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresOrderStore{
		db:     db,
		logger: log.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore.
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// List implements store.OrderStore.List.
func (s *PostgresOrderStore) List(ctx context.Context, req store.PageRequest) (*store.Page[store.OrderRow], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		log.Error("failed to count orders", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT o.user_id, u.full_name, p.title, w.title, o.quantity, o.full_amount
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN products p ON p.id = o.product_id
		JOIN warehouses w ON w.id = o.warehouse_id
		ORDER BY o.id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		log.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]store.OrderRow, 0, req.PerPage)
	for rows.Next() {
		var row store.OrderRow
		err := rows.Scan(
			&row.UserID,
			&row.UserName,
			&row.ProductTitle,
			&row.WarehouseTitle,
			&row.Quantity,
			&row.FullAmount,
		)
		if err != nil {
			log.Error("failed to scan order row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store.NewPage(items, total, req), nil
}

// Create implements store.OrderStore.Create.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO orders (user_id, product_id, warehouse_id, quantity, full_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		order.ClientID,
		order.ProductID,
		order.WarehouseID,
		order.Quantity,
		order.FullAmount,
	).Scan(&id)
	if err != nil {
		log.Error("failed to create order", slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("order created", slog.Int64("order_id", id))
	return id, nil
}

// GetByID implements store.OrderStore.GetByID. A missing order yields
// (nil, nil).
func (s *PostgresOrderStore) GetByID(ctx context.Context, id int64) (*store.OrderRow, error) {
	query := `
		SELECT o.user_id, u.full_name, p.title, w.title, o.quantity, o.full_amount
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN products p ON p.id = o.product_id
		JOIN warehouses w ON w.id = o.warehouse_id
		WHERE o.id = $1
	`

	var row store.OrderRow
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.UserID,
		&row.UserName,
		&row.ProductTitle,
		&row.WarehouseTitle,
		&row.Quantity,
		&row.FullAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Exists implements store.OrderStore.Exists.
func (s *PostgresOrderStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

// ProductAmount implements store.OrderStore.ProductAmount: the unit
// price is read fresh from the product so quantity updates reprice
// against the current amount.
func (s *PostgresOrderStore) ProductAmount(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	query := `
		SELECT p.amount
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1
	`

	var amount decimal.Decimal
	if err := s.db.QueryRowContext(ctx, query, orderID).Scan(&amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, store.ErrOrderNotFound
		}
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// Update implements store.OrderStore.Update.
func (s *PostgresOrderStore) Update(ctx context.Context, id int64, patch store.OrderPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var b updateBuilder
	if patch.Quantity != nil {
		b.set("quantity", *patch.Quantity)
	}
	if patch.FullAmount != nil {
		b.set("full_amount", *patch.FullAmount)
	}

	query, args := b.build("orders", id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update order", slog.String("error", err.Error()), slog.Int64("order_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrOrderNotFound
	}

	log.Info("order updated", slog.Int64("order_id", id))
	return nil
}

// Delete implements store.OrderStore.Delete.
func (s *PostgresOrderStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete order", slog.String("error", err.Error()), slog.Int64("order_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrOrderNotFound
	}

	log.Info("order deleted", slog.Int64("order_id", id))
	return nil
}
