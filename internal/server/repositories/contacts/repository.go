package contacts

import (
	"context"

	"github.com/devdan/contactbook/internal/server/models"
)

// Repository reads and writes contact rows. Every lookup is scoped by the
// owning username so one tenant can never see another tenant's rows.
type Repository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, owner, id string) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, owner, id string) error
	ListByOwner(ctx context.Context, owner string) ([]*models.Contact, error)
}
