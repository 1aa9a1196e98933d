package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/platform/logger"
	"github.com/profel/inventory-api/internal/store"
)

// PostgresStockStore implements the store.StockStore interface using a
// PostgreSQL database as the storage backend. Reads join products and
// warehouses to return titles instead of ids.
type PostgresStockStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStockStore creates a new PostgreSQL implementation of the
// StockStore interface. If logger is nil, the default logger is used.
func NewPostgresStockStore(db store.DBTX, log *slog.Logger) *PostgresStockStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresStockStore{
		db:     db,
		logger: log.With(slog.String("component", "stock_store")),
	}
}

// Ensure PostgresStockStore implements store.StockStore.
var _ store.StockStore = (*PostgresStockStore)(nil)

// List implements store.StockStore.List.
func (s *PostgresStockStore) List(ctx context.Context, req store.PageRequest) (*store.Page[store.StockRow], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_warehouses`).Scan(&total); err != nil {
		log.Error("failed to count stock rows", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT p.title, w.title, pw.quantity
		FROM product_warehouses pw
		JOIN products p ON p.id = pw.product_id
		JOIN warehouses w ON w.id = pw.warehouse_id
		ORDER BY pw.id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		log.Error("failed to list stock rows", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]store.StockRow, 0, req.PerPage)
	for rows.Next() {
		var row store.StockRow
		if err := rows.Scan(&row.ProductTitle, &row.WarehouseTitle, &row.Quantity); err != nil {
			log.Error("failed to scan stock row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store.NewPage(items, total, req), nil
}

// Create implements store.StockStore.Create.
// Returns store.ErrStockExists when the (product, warehouse) pair
// already has a row.
func (s *PostgresStockStore) Create(ctx context.Context, stock *domain.Stock) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO product_warehouses (product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, stock.ProductID, stock.WarehouseID, stock.Quantity).
		Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate product-warehouse pair",
				slog.Int64("product_id", stock.ProductID),
				slog.Int64("warehouse_id", stock.WarehouseID))
			return 0, store.ErrStockExists
		}
		log.Error("failed to create stock row", slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("stock row created", slog.Int64("product_warehouse_id", id))
	return id, nil
}

// GetByID implements store.StockStore.GetByID. A missing row yields
// (nil, nil).
func (s *PostgresStockStore) GetByID(ctx context.Context, id int64) (*store.StockRow, error) {
	query := `
		SELECT p.title, w.title, pw.quantity
		FROM product_warehouses pw
		JOIN products p ON p.id = pw.product_id
		JOIN warehouses w ON w.id = pw.warehouse_id
		WHERE pw.id = $1
	`

	var row store.StockRow
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&row.ProductTitle, &row.WarehouseTitle, &row.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Exists implements store.StockStore.Exists.
func (s *PostgresStockStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM product_warehouses WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

// PairExists implements store.StockStore.PairExists.
func (s *PostgresStockStore) PairExists(ctx context.Context, productID, warehouseID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM product_warehouses WHERE product_id = $1 AND warehouse_id = $2)`,
		productID,
		warehouseID,
	).Scan(&exists)
	return exists, err
}

// Update implements store.StockStore.Update.
func (s *PostgresStockStore) Update(ctx context.Context, id int64, patch store.StockPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var b updateBuilder
	if patch.Quantity != nil {
		b.set("quantity", *patch.Quantity)
	}

	query, args := b.build("product_warehouses", id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update stock row", slog.String("error", err.Error()), slog.Int64("product_warehouse_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrStockNotFound
	}

	log.Info("stock row updated", slog.Int64("product_warehouse_id", id))
	return nil
}

// Delete implements store.StockStore.Delete.
func (s *PostgresStockStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM product_warehouses WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete stock row", slog.String("error", err.Error()), slog.Int64("product_warehouse_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrStockNotFound
	}

	log.Info("stock row deleted", slog.Int64("product_warehouse_id", id))
	return nil
}
