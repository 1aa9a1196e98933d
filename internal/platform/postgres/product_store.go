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

// PostgresProductStore implements the store.ProductStore interface using
// a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. If logger is nil, the default logger is used.
func NewPostgresProductStore(db store.DBTX, log *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresProductStore{
		db:     db,
		logger: log.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore.
var _ store.ProductStore = (*PostgresProductStore)(nil)

// List implements store.ProductStore.List.
func (s *PostgresProductStore) List(ctx context.Context, req store.PageRequest) (*store.Page[store.ProductRow], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		log.Error("failed to count products", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT title, amount
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]store.ProductRow, 0, req.PerPage)
	for rows.Next() {
		var row store.ProductRow
		if err := rows.Scan(&row.Title, &row.Amount); err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store.NewPage(items, total, req), nil
}

// Create implements store.ProductStore.Create.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO products (title, amount, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, product.Title, product.Amount).Scan(&id); err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("product created", slog.Int64("product_id", id))
	return id, nil
}

// GetByID implements store.ProductStore.GetByID. A missing product
// yields (nil, nil).
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*store.ProductRow, error) {
	var row store.ProductRow
	err := s.db.QueryRowContext(ctx, `SELECT title, amount FROM products WHERE id = $1`, id).
		Scan(&row.Title, &row.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Amount implements store.ProductStore.Amount.
func (s *PostgresProductStore) Amount(ctx context.Context, id int64) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := s.db.QueryRowContext(ctx, `SELECT amount FROM products WHERE id = $1`, id).
		Scan(&amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, store.ErrProductNotFound
		}
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// Exists implements store.ProductStore.Exists.
func (s *PostgresProductStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

// Update implements store.ProductStore.Update.
func (s *PostgresProductStore) Update(ctx context.Context, id int64, patch store.ProductPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var b updateBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Amount != nil {
		b.set("amount", *patch.Amount)
	}

	query, args := b.build("products", id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update product", slog.String("error", err.Error()), slog.Int64("product_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProductNotFound
	}

	log.Info("product updated", slog.Int64("product_id", id))
	return nil
}

// Delete implements store.ProductStore.Delete.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product", slog.String("error", err.Error()), slog.Int64("product_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProductNotFound
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}
