// Package services contains the server-side business logic: session
// lifecycle, account registration and profile updates, and the contact and
// address operations scoped to the authenticated owner.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/server/auth"
	"github.com/devdan/contactbook/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// TokenResult is what a successful login hands back to the client.
type TokenResult struct {
	Token     string
	ExpiredAt int64 // epoch millis
}

// AuthService implements the session lifecycle: Login issues a bearer
// token and mirrors it onto the account record, Logout revokes the
// presented token and clears the mirror.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	revocations *auth.RevocationList
}

// NewAuthService constructs an AuthService from explicitly injected
// dependencies; there is no ambient authentication state.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, codec *auth.Codec, revocations *auth.RevocationList) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		codec:       codec,
		revocations: revocations,
	}
}

// Login verifies the password against the stored hash and, on success,
// issues a signed token, mirrors it into the account's token/expiry
// columns, and returns it with its expiry. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.codec.Issue(username)
	if err != nil {
		return nil, common.ErrorInternal
	}
	expiresAt, err := s.codec.ExpiresAt(token)
	if err != nil {
		return nil, common.ErrorInternal
	}
	expiredAt := expiresAt.UnixMilli()

	if err := repo.UpdateSessionToken(ctx, username, token, expiredAt); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenResult{Token: token, ExpiredAt: expiredAt}, nil
}

// Logout revokes the presented token unconditionally, even if it would
// fail verification, and then best-effort clears the token mirror on
// whichever account holds it. Revocation happens first so the reject
// decision stands even if the mirror cleanup fails.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	expiresAt, err := s.codec.ExpiresAt(tokenString)
	if err != nil {
		// Unreadable expiry: keep the entry for the process lifetime.
		expiresAt = time.Time{}
	}
	s.revocations.Revoke(tokenString, expiresAt)

	repo := s.repomanager.Users(s.db)
	if _, err := repo.ClearSessionToken(ctx, tokenString); err != nil {
		return err
	}
	return nil
}
