package services

import (
	"context"
	"errors"
	"testing"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/server/models"
)

func TestAddressCreate_ResolvesContactFirst(t *testing.T) {
	c := &fakeContactsRepo{getOut: &models.Contact{ID: "c-1", UserUsername: "alice"}}
	a := &fakeAddressesRepo{}
	s := NewAddressService(nil, &fakeRepoManager{c: c, a: a})

	created, err := s.Create(context.Background(), "alice", "c-1", &models.Address{Country: "DE"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("id must be assigned")
	}
	if created.ContactID != "c-1" {
		t.Fatalf("address must be bound to the resolved contact, got %q", created.ContactID)
	}
}

func TestAddressCreate_ForeignContactRejected(t *testing.T) {
	// A contact owned by someone else resolves to not-found.
	c := &fakeContactsRepo{getErr: common.ErrorNotFound}
	s := NewAddressService(nil, &fakeRepoManager{c: c, a: &fakeAddressesRepo{}})

	_, err := s.Create(context.Background(), "alice", "someone-elses", &models.Address{Country: "DE"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestAddressList_ScopedByContact(t *testing.T) {
	c := &fakeContactsRepo{getOut: &models.Contact{ID: "c-1", UserUsername: "alice"}}
	a := &fakeAddressesRepo{listOut: []*models.Address{{ID: "a-1", ContactID: "c-1"}}}
	s := NewAddressService(nil, &fakeRepoManager{c: c, a: a})

	got, err := s.List(context.Background(), "alice", "c-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a-1" {
		t.Fatalf("unexpected addresses: %+v", got)
	}
}
