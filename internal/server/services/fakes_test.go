package services

import (
	"context"
	"database/sql"

	"github.com/devdan/contactbook/internal/dbx"
	"github.com/devdan/contactbook/internal/server/models"
	addressesrepo "github.com/devdan/contactbook/internal/server/repositories/addresses"
	contactsrepo "github.com/devdan/contactbook/internal/server/repositories/contacts"
	usersrepo "github.com/devdan/contactbook/internal/server/repositories/users"
)

// --- shared fakes ---

type fakeUsersRepo struct {
	createErr error
	created   []*models.User

	getOut *models.User
	getErr error

	exists    bool
	existsErr error

	updateErr error

	tokenUsername string
	tokenValue    string
	tokenExpiry   int64
	tokenErr      error

	clearedTokens []string
	clearMatched  bool
	clearErr      error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	return f.updateErr
}

func (f *fakeUsersRepo) UpdateSessionToken(ctx context.Context, username, token string, expiredAt int64) error {
	if f.tokenErr != nil {
		return f.tokenErr
	}
	f.tokenUsername = username
	f.tokenValue = token
	f.tokenExpiry = expiredAt
	return nil
}

func (f *fakeUsersRepo) ClearSessionToken(ctx context.Context, token string) (bool, error) {
	if f.clearErr != nil {
		return false, f.clearErr
	}
	f.clearedTokens = append(f.clearedTokens, token)
	return f.clearMatched, nil
}

type fakeContactsRepo struct {
	createErr error
	created   []*models.Contact

	getOut *models.Contact
	getErr error

	updateErr error
	deleteErr error

	listOut []*models.Contact
	listErr error
}

func (f *fakeContactsRepo) Create(ctx context.Context, c *models.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeContactsRepo) GetByID(ctx context.Context, owner, id string) (*models.Contact, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeContactsRepo) Update(ctx context.Context, c *models.Contact) error { return f.updateErr }
func (f *fakeContactsRepo) Delete(ctx context.Context, owner, id string) error  { return f.deleteErr }

func (f *fakeContactsRepo) ListByOwner(ctx context.Context, owner string) ([]*models.Contact, error) {
	return f.listOut, f.listErr
}

type fakeAddressesRepo struct {
	createErr error
	created   []*models.Address

	getOut *models.Address
	getErr error

	updateErr error
	deleteErr error

	listOut []*models.Address
	listErr error
}

func (f *fakeAddressesRepo) Create(ctx context.Context, a *models.Address) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAddressesRepo) GetByContact(ctx context.Context, contactID, id string) (*models.Address, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAddressesRepo) Update(ctx context.Context, a *models.Address) error { return f.updateErr }
func (f *fakeAddressesRepo) Delete(ctx context.Context, contactID, id string) error {
	return f.deleteErr
}

func (f *fakeAddressesRepo) ListByContact(ctx context.Context, contactID string) ([]*models.Address, error) {
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeContactsRepo
	a *fakeAddressesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository         { return m.u }
func (m *fakeRepoManager) Contacts(db dbx.DBTX) contactsrepo.Repository   { return m.c }
func (m *fakeRepoManager) Addresses(db dbx.DBTX) addressesrepo.Repository { return m.a }
