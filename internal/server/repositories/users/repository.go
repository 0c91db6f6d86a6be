package users

import (
	"context"

	"github.com/devdan/contactbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateSessionToken(ctx context.Context, username, token string, expiredAt int64) error
	ClearSessionToken(ctx context.Context, token string) (bool, error)
}
