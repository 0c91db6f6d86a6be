package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devdan/contactbook/internal/server/models"
	"github.com/devdan/contactbook/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ContactService owns contact CRUD. Every operation is scoped by the
// authenticated owner's username; a contact belonging to someone else is
// indistinguishable from a missing one.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

func (s *ContactService) Create(ctx context.Context, owner string, contact *models.Contact) (*models.Contact, error) {
	contact.ID = uuid.NewString()
	contact.UserUsername = owner

	if err := s.repomanager.Contacts(s.db).Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, owner, id string) (*models.Contact, error) {
	return s.repomanager.Contacts(s.db).GetByID(ctx, owner, id)
}

func (s *ContactService) Update(ctx context.Context, owner string, contact *models.Contact) (*models.Contact, error) {
	contact.UserUsername = owner

	if err := s.repomanager.Contacts(s.db).Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, owner, id string) error {
	return s.repomanager.Contacts(s.db).Delete(ctx, owner, id)
}

func (s *ContactService) List(ctx context.Context, owner string) ([]*models.Contact, error) {
	return s.repomanager.Contacts(s.db).ListByOwner(ctx, owner)
}
