// Package users provides a PostgreSQL-backed repository for account records.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/dbx"
	"github.com/devdan/contactbook/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. A username collision on the primary key
// is reported as common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByUsername returns the account for the given username.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, password, name, token, token_expired_at
		FROM users
		WHERE username = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.Password, &user.Name, &user.Token, &user.TokenExpiredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Update persists name and password changes for an existing account.
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET name = $2, password = $3
		WHERE username = $1
	`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Name, user.Password)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// UpdateSessionToken mirrors the last issued token and its expiry (epoch
// millis) onto the account record.
func (r *PostgresRepository) UpdateSessionToken(ctx context.Context, username, token string, expiredAt int64) error {
	query := `
		UPDATE users SET token = $2, token_expired_at = $3
		WHERE username = $1
	`
	if _, err := r.db.ExecContext(ctx, query, username, token, expiredAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ClearSessionToken clears the mirrored token fields on whichever account
// currently holds the given token. It reports whether a row matched.
func (r *PostgresRepository) ClearSessionToken(ctx context.Context, token string) (bool, error) {
	query := `
		UPDATE users SET token = NULL, token_expired_at = NULL
		WHERE token = $1
	`
	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}
