package httpapi

import (
	"errors"
	"net/http"

	"github.com/devdan/contactbook/internal/common"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "username or password wrong")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "logged in", "username", req.Username)
	writeData(w, http.StatusOK, tokenResponse{Token: result.Token, ExpiredAt: result.ExpiredAt})
}

// handleLogout runs behind the authentication gate, so the header is
// known to be present and to belong to a live session by the time the
// token is revoked here.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(common.AuthTokenHeaderName)

	if err := s.auth.Logout(r.Context(), token); err != nil {
		s.logger.Error(r.Context(), "logout failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, "OK")
}
