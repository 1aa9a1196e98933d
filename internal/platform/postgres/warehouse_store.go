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

// PostgresWarehouseStore implements the store.WarehouseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWarehouseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWarehouseStore creates a new PostgreSQL implementation of
// the WarehouseStore interface. If logger is nil, the default logger is
// used.
func NewPostgresWarehouseStore(db store.DBTX, log *slog.Logger) *PostgresWarehouseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresWarehouseStore{
		db:     db,
		logger: log.With(slog.String("component", "warehouse_store")),
	}
}

// Ensure PostgresWarehouseStore implements store.WarehouseStore.
var _ store.WarehouseStore = (*PostgresWarehouseStore)(nil)

// statusLabel renders is_active as the listing status label.
func statusLabel(isActive bool) string {
	if isActive {
		return store.WarehouseStatusActive
	}
	return store.WarehouseStatusPassive
}

// List implements store.WarehouseStore.List.
func (s *PostgresWarehouseStore) List(ctx context.Context, req store.PageRequest) (*store.Page[store.WarehouseRow], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM warehouses`).Scan(&total); err != nil {
		log.Error("failed to count warehouses", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT title, is_active
		FROM warehouses
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		log.Error("failed to list warehouses", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]store.WarehouseRow, 0, req.PerPage)
	for rows.Next() {
		var (
			row      store.WarehouseRow
			isActive bool
		)
		if err := rows.Scan(&row.Title, &isActive); err != nil {
			log.Error("failed to scan warehouse row", slog.String("error", err.Error()))
			return nil, err
		}
		row.Status = statusLabel(isActive)
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store.NewPage(items, total, req), nil
}

// Create implements store.WarehouseStore.Create.
func (s *PostgresWarehouseStore) Create(ctx context.Context, warehouse *domain.Warehouse) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO warehouses (title, is_active, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, warehouse.Title, warehouse.IsActive).Scan(&id); err != nil {
		log.Error("failed to create warehouse", slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("warehouse created", slog.Int64("warehouse_id", id))
	return id, nil
}

// GetByID implements store.WarehouseStore.GetByID. A missing warehouse
// yields (nil, nil).
func (s *PostgresWarehouseStore) GetByID(ctx context.Context, id int64) (*store.WarehouseRow, error) {
	var (
		row      store.WarehouseRow
		isActive bool
	)
	err := s.db.QueryRowContext(ctx, `SELECT title, is_active FROM warehouses WHERE id = $1`, id).
		Scan(&row.Title, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	row.Status = statusLabel(isActive)
	return &row, nil
}

// Exists implements store.WarehouseStore.Exists.
func (s *PostgresWarehouseStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM warehouses WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

// Update implements store.WarehouseStore.Update.
func (s *PostgresWarehouseStore) Update(ctx context.Context, id int64, patch store.WarehousePatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var b updateBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.IsActive != nil {
		b.set("is_active", *patch.IsActive)
	}

	query, args := b.build("warehouses", id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update warehouse", slog.String("error", err.Error()), slog.Int64("warehouse_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrWarehouseNotFound
	}

	log.Info("warehouse updated", slog.Int64("warehouse_id", id))
	return nil
}

// Delete implements store.WarehouseStore.Delete.
func (s *PostgresWarehouseStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete warehouse", slog.String("error", err.Error()), slog.Int64("warehouse_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrWarehouseNotFound
	}

	log.Info("warehouse deleted", slog.Int64("warehouse_id", id))
	return nil
}
