package addresses

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreateAndGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+addresses`).
		WithArgs("a-1", "c-1", "Main St", "Springfield", "IL", "USA", "62704").
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &models.Address{ID: "a-1", ContactID: "c-1", Street: "Main St", City: "Springfield", Province: "IL", Country: "USA", PostalCode: "62704"}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}).
		AddRow("a-1", "c-1", "Main St", "Springfield", "IL", "USA", "62704")
	mock.ExpectQuery(`SELECT\s+id,\s*contact_id.*WHERE\s+contact_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2`).
		WithArgs("c-1", "a-1").
		WillReturnRows(rows)

	got, err := repo.GetByContact(context.Background(), "c-1", "a-1")
	if err != nil {
		t.Fatalf("GetByContact error: %v", err)
	}
	if got.Country != "USA" || got.ContactID != "c-1" {
		t.Fatalf("unexpected address: %+v", got)
	}
}

func TestGetByContact_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*contact_id`).
		WithArgs("c-1", "nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByContact(context.Background(), "c-1", "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+addresses`).
		WithArgs("c-1", "nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "c-1", "nope"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByContact(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "country", "postal_code"}).
		AddRow("a-1", "c-1", "", "Berlin", "", "DE", "").
		AddRow("a-2", "c-1", "", "Munich", "", "DE", "")
	mock.ExpectQuery(`SELECT\s+id,\s*contact_id.*WHERE\s+contact_id\s*=\s*\$1`).
		WithArgs("c-1").
		WillReturnRows(rows)

	got, err := repo.ListByContact(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("ListByContact error: %v", err)
	}
	if len(got) != 2 || got[0].City != "Berlin" {
		t.Fatalf("unexpected addresses: %+v", got)
	}
}
