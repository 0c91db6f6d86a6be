package contacts

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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+contacts`).
		WithArgs("c-1", "alice", "John", "Doe", "555", "j@d.io").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &models.Contact{ID: "c-1", UserUsername: "alice", FirstName: "John", LastName: "Doe", Phone: "555", Email: "j@d.io"}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestGetByID_ScopedByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_username", "first_name", "last_name", "phone", "email"}).
		AddRow("c-1", "alice", "John", "Doe", "555", "j@d.io")
	mock.ExpectQuery(`SELECT\s+id,\s*user_username.*WHERE\s+user_username\s*=\s*\$1\s+AND\s+id\s*=\s*\$2`).
		WithArgs("alice", "c-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "alice", "c-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "c-1" || got.UserUsername != "alice" || got.FirstName != "John" {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*user_username`).
		WithArgs("alice", "other-tenant-contact").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "alice", "other-tenant-contact")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+contacts\s+SET`).
		WithArgs("alice", "c-miss", "John", "Doe", "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	c := &models.Contact{ID: "c-miss", UserUsername: "alice", FirstName: "John", LastName: "Doe"}
	if err := repo.Update(context.Background(), c); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+contacts`).
		WithArgs("alice", "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "alice", "c-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_username", "first_name", "last_name", "phone", "email"}).
		AddRow("c-1", "alice", "Ann", "A", "", "").
		AddRow("c-2", "alice", "Bob", "B", "", "")
	mock.ExpectQuery(`SELECT\s+id,\s*user_username.*WHERE\s+user_username\s*=\s*\$1`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].FirstName != "Ann" || got[1].FirstName != "Bob" {
		t.Fatalf("unexpected contacts: %+v", got)
	}
}
