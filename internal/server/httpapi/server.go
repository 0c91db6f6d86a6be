// Package httpapi exposes the contact book over HTTP: route wiring, the
// authentication middleware, JSON envelopes, and request metrics.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/devdan/contactbook/internal/common"
	"github.com/devdan/contactbook/internal/logging"
	"github.com/devdan/contactbook/internal/server/auth"
	"github.com/devdan/contactbook/internal/server/services"
)

type Server struct {
	addr        string
	logger      logging.Logger
	codec       *auth.Codec
	revocations *auth.RevocationList
	auth        *services.AuthService
	users       *services.UserService
	contacts    *services.ContactService
	addresses   *services.AddressService
	metrics     *metrics
}

func NewServer(
	addr string,
	l logging.Logger,
	codec *auth.Codec,
	revocations *auth.RevocationList,
	authService *services.AuthService,
	userService *services.UserService,
	contactService *services.ContactService,
	addressService *services.AddressService,
) *Server {
	return &Server{
		addr:        addr,
		logger:      l.With("module", "http_server"),
		codec:       codec,
		revocations: revocations,
		auth:        authService,
		users:       userService,
		contacts:    contactService,
		addresses:   addressService,
		metrics:     newMetrics(),
	}
}

// Handler builds the route table. Protected routes are wrapped by the
// authentication gate; register and login are the only open API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("DELETE /api/auth/logout", s.authenticate(s.handleLogout))

	mux.HandleFunc("GET /api/users/current", s.authenticate(s.handleCurrentUser))
	mux.HandleFunc("PATCH /api/users/current", s.authenticate(s.handleUpdateCurrentUser))

	mux.HandleFunc("POST /api/contacts", s.authenticate(s.handleCreateContact))
	mux.HandleFunc("GET /api/contacts", s.authenticate(s.handleListContacts))
	mux.HandleFunc("GET /api/contacts/{contactID}", s.authenticate(s.handleGetContact))
	mux.HandleFunc("PUT /api/contacts/{contactID}", s.authenticate(s.handleUpdateContact))
	mux.HandleFunc("DELETE /api/contacts/{contactID}", s.authenticate(s.handleDeleteContact))

	mux.HandleFunc("POST /api/contacts/{contactID}/addresses", s.authenticate(s.handleCreateAddress))
	mux.HandleFunc("GET /api/contacts/{contactID}/addresses", s.authenticate(s.handleListAddresses))
	mux.HandleFunc("GET /api/contacts/{contactID}/addresses/{addressID}", s.authenticate(s.handleGetAddress))
	mux.HandleFunc("PUT /api/contacts/{contactID}/addresses/{addressID}", s.authenticate(s.handleUpdateAddress))
	mux.HandleFunc("DELETE /api/contacts/{contactID}/addresses/{addressID}", s.authenticate(s.handleDeleteAddress))

	mux.Handle("GET /metrics", s.metrics.handler())

	return s.metrics.instrument(mux)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// writeServiceError translates service-layer sentinel errors into HTTP
// statuses; anything unrecognized is a 500 and gets logged.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, "already exists")
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "validation error")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
