package repomanager

import (
	"context"
	"database/sql"

	"github.com/devdan/contactbook/internal/dbx"
	"github.com/devdan/contactbook/internal/server/repositories/addresses"
	"github.com/devdan/contactbook/internal/server/repositories/contacts"
	"github.com/devdan/contactbook/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Addresses(db dbx.DBTX) addresses.Repository
}
