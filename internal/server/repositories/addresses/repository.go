package addresses

import (
	"context"

	"github.com/devdan/contactbook/internal/server/models"
)

// Repository reads and writes address rows, always scoped by the owning
// contact. Ownership of the contact itself is checked one layer up.
type Repository interface {
	Create(ctx context.Context, address *models.Address) error
	GetByContact(ctx context.Context, contactID, id string) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, contactID, id string) error
	ListByContact(ctx context.Context, contactID string) ([]*models.Address, error)
}
