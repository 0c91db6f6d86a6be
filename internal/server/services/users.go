package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/dbx"
	"github.com/devdan/contactbook/internal/server/models"
	"github.com/devdan/contactbook/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and profile reads/updates.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the shared repositories.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account with a bcrypt-hashed password. A taken
// username yields common.ErrorAlreadyExists. The exists-check and the
// insert run in one transaction; a concurrent duplicate that slips past
// the check still surfaces as ErrorAlreadyExists via the primary key.
func (s *UserService) Register(ctx context.Context, username, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("error checking username: %w", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		user := &models.User{Username: username, Password: string(hash), Name: name}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
}

// Get returns the account for username; common.ErrorNotFound if absent.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}

// Update changes the display name and/or password of an existing account.
// Nil fields are left untouched.
func (s *UserService) Update(ctx context.Context, username string, name, password *string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, common.ErrorInternal
		}
		user.Password = string(hash)
	}

	if err := repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}
