// Package contacts provides a PostgreSQL-backed repository for contact rows.
package contacts

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

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, user_username, first_name, last_name, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID, contact.UserUsername, contact.FirstName, contact.LastName, contact.Phone, contact.Email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the contact with the given id owned by owner.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, owner, id string) (*models.Contact, error) {
	query := `
		SELECT id, user_username, first_name, last_name, phone, email
		FROM contacts
		WHERE user_username = $1 AND id = $2
	`
	contact := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, owner, id).
		Scan(&contact.ID, &contact.UserUsername, &contact.FirstName, &contact.LastName, &contact.Phone, &contact.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return contact, nil
}

func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts SET first_name = $3, last_name = $4, phone = $5, email = $6
		WHERE user_username = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		contact.UserUsername, contact.ID, contact.FirstName, contact.LastName, contact.Phone, contact.Email)
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

func (r *PostgresRepository) Delete(ctx context.Context, owner, id string) error {
	query := `
		DELETE FROM contacts
		WHERE user_username = $1 AND id = $2
	`
	res, err := r.db.ExecContext(ctx, query, owner, id)
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Contact, error) {
	query := `
		SELECT id, user_username, first_name, last_name, phone, email
		FROM contacts
		WHERE user_username = $1
		ORDER BY first_name, last_name
	`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		contact := &models.Contact{}
		err := rows.Scan(&contact.ID, &contact.UserUsername, &contact.FirstName, &contact.LastName, &contact.Phone, &contact.Email)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
