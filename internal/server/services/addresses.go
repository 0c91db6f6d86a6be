package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devdan/contactbook/internal/server/models"
	"github.com/devdan/contactbook/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// AddressService owns address CRUD. Addresses hang off a contact, so every
// operation first resolves the contact under the owner's scope.
type AddressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAddressService(db *sql.DB, m repomanager.RepositoryManager) *AddressService {
	return &AddressService{db: db, repomanager: m}
}

func (s *AddressService) Create(ctx context.Context, owner, contactID string, address *models.Address) (*models.Address, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, owner, contactID)
	if err != nil {
		return nil, err
	}

	address.ID = uuid.NewString()
	address.ContactID = contact.ID

	if err := s.repomanager.Addresses(s.db).Create(ctx, address); err != nil {
		return nil, fmt.Errorf("error creating address: %w", err)
	}
	return address, nil
}

func (s *AddressService) Get(ctx context.Context, owner, contactID, addressID string) (*models.Address, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, owner, contactID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Addresses(s.db).GetByContact(ctx, contact.ID, addressID)
}

func (s *AddressService) Update(ctx context.Context, owner, contactID string, address *models.Address) (*models.Address, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, owner, contactID)
	if err != nil {
		return nil, err
	}

	address.ContactID = contact.ID
	if err := s.repomanager.Addresses(s.db).Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, owner, contactID, addressID string) error {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, owner, contactID)
	if err != nil {
		return err
	}
	return s.repomanager.Addresses(s.db).Delete(ctx, contact.ID, addressID)
}

func (s *AddressService) List(ctx context.Context, owner, contactID string) ([]*models.Address, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, owner, contactID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Addresses(s.db).ListByContact(ctx, contact.ID)
}
