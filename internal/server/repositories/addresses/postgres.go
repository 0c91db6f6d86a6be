// Package addresses provides a PostgreSQL-backed repository for address rows.
package addresses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/dbx"
	"github.com/devdan/contactbook/internal/server/models"
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

func (r *PostgresRepository) Create(ctx context.Context, address *models.Address) error {
	query := `
		INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByContact returns the address with the given id belonging to contactID.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByContact(ctx context.Context, contactID, id string) (*models.Address, error) {
	query := `
		SELECT id, contact_id, street, city, province, country, postal_code
		FROM addresses
		WHERE contact_id = $1 AND id = $2
	`
	address := &models.Address{}
	err := r.db.QueryRowContext(ctx, query, contactID, id).
		Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return address, nil
}

func (r *PostgresRepository) Update(ctx context.Context, address *models.Address) error {
	query := `
		UPDATE addresses SET street = $3, city = $4, province = $5, country = $6, postal_code = $7
		WHERE contact_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		address.ContactID, address.ID, address.Street, address.City, address.Province, address.Country, address.PostalCode)
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

func (r *PostgresRepository) Delete(ctx context.Context, contactID, id string) error {
	query := `
		DELETE FROM addresses
		WHERE contact_id = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, contactID, id)
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

func (r *PostgresRepository) ListByContact(ctx context.Context, contactID string) ([]*models.Address, error) {
	query := `
		SELECT id, contact_id, street, city, province, country, postal_code
		FROM addresses
		WHERE contact_id = $1
		ORDER BY city, street
	`
	rows, err := r.db.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Address
	for rows.Next() {
		address := &models.Address{}
		err := rows.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.Country, &address.PostalCode)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
