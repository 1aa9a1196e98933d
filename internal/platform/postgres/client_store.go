package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/platform/logger"
	"github.com/profel/inventory-api/internal/store"
)

// birthDateFormat is the wire format for client birth dates.
const birthDateFormat = "2006-01-02"

// PostgresClientStore implements the store.ClientStore interface using a
// PostgreSQL database as the storage backend. Clients live in the users
// table because they double as API users.
type PostgresClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the
// ClientStore interface. If logger is nil, the default logger is used.
func NewPostgresClientStore(db store.DBTX, log *slog.Logger) *PostgresClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresClientStore{
		db:     db,
		logger: log.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore.
var _ store.ClientStore = (*PostgresClientStore)(nil)

// List implements store.ClientStore.List.
func (s *PostgresClientStore) List(ctx context.Context, req store.PageRequest) (*store.Page[store.ClientRow], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		log.Error("failed to count clients", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		SELECT full_name, birth_date, gender, phone, email
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]store.ClientRow, 0, req.PerPage)
	for rows.Next() {
		row, err := scanClientRow(rows)
		if err != nil {
			log.Error("failed to scan client row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return store.NewPage(items, total, req), nil
}

// Create implements store.ClientStore.Create.
// Returns store.ErrPhoneExists when the phone is already taken.
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (full_name, birth_date, gender, phone, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		client.FullName,
		nullTime(client.BirthDate),
		client.Gender,
		client.Phone,
		nullString(client.Email),
		client.HashedPassword,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate phone during client creation", slog.String("phone", client.Phone))
			return 0, store.ErrPhoneExists
		}
		log.Error("failed to create client", slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("client created", slog.Int64("client_id", id))
	return id, nil
}

// GetByID implements store.ClientStore.GetByID.
// A missing client yields (nil, nil): show and edit report success with
// null data rather than a 404.
func (s *PostgresClientStore) GetByID(ctx context.Context, id int64) (*store.ClientRow, error) {
	query := `
		SELECT full_name, birth_date, gender, phone, email
		FROM users
		WHERE id = $1
	`
	row, err := scanClientRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// GetByPhone implements store.ClientStore.GetByPhone.
func (s *PostgresClientStore) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	query := `
		SELECT id, full_name, birth_date, gender, phone, email, password, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var (
		client    domain.Client
		birthDate sql.NullTime
		email     sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, phone).Scan(
		&client.ID,
		&client.FullName,
		&birthDate,
		&client.Gender,
		&client.Phone,
		&email,
		&client.HashedPassword,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		return nil, err
	}

	if birthDate.Valid {
		t := birthDate.Time
		client.BirthDate = &t
	}
	if email.Valid {
		e := email.String
		client.Email = &e
	}

	return &client, nil
}

// Exists implements store.ClientStore.Exists.
func (s *PostgresClientStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

// PhoneExists implements store.ClientStore.PhoneExists.
func (s *PostgresClientStore) PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1 AND id <> $2)`,
		phone,
		excludeID,
	).Scan(&exists)
	return exists, err
}

// Update implements store.ClientStore.Update.
func (s *PostgresClientStore) Update(ctx context.Context, id int64, patch store.ClientPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var b updateBuilder
	if patch.FullName != nil {
		b.set("full_name", *patch.FullName)
	}
	if patch.BirthDate != nil {
		b.set("birth_date", *patch.BirthDate)
	}
	if patch.Gender != nil {
		b.set("gender", *patch.Gender)
	}
	if patch.Phone != nil {
		b.set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		b.set("email", *patch.Email)
	}
	if patch.HashedPassword != nil {
		b.set("password", *patch.HashedPassword)
	}

	query, args := b.build("users", id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrPhoneExists
		}
		log.Error("failed to update client", slog.String("error", err.Error()), slog.Int64("client_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrClientNotFound
	}

	log.Info("client updated", slog.Int64("client_id", id))
	return nil
}

// Delete implements store.ClientStore.Delete.
func (s *PostgresClientStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete client", slog.String("error", err.Error()), slog.Int64("client_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrClientNotFound
	}

	log.Info("client deleted", slog.Int64("client_id", id))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanClientRow scans one client projection, formatting the nullable
// birth date as YYYY-MM-DD.
func scanClientRow(scanner rowScanner) (*store.ClientRow, error) {
	var (
		row       store.ClientRow
		birthDate sql.NullTime
		email     sql.NullString
	)
	if err := scanner.Scan(&row.FullName, &birthDate, &row.Gender, &row.Phone, &email); err != nil {
		return nil, err
	}
	if birthDate.Valid {
		formatted := birthDate.Time.Format(birthDateFormat)
		row.BirthDate = &formatted
	}
	if email.Valid {
		e := email.String
		row.Email = &e
	}
	return &row, nil
}

// nullTime converts an optional time into its driver representation.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// nullString converts an optional string into its driver representation.
func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
