package httpapi

import (
	"errors"
	"net/http"

	"github.com/devdan/contactbook/internal/common"
)

type registerUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type userResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "username, password and name are required")
		return
	}

	if err := s.users.Register(r.Context(), req.Username, req.Password, req.Name); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusBadRequest, "username already registered")
			return
		}
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "registered", "username", req.Username)
	writeData(w, http.StatusOK, "OK")
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	writeData(w, http.StatusOK, userResponse{Username: user.Username, Name: user.Name})
}

func (s *Server) handleUpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.users.Update(r.Context(), user.Username, req.Name, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, userResponse{Username: updated.Username, Name: updated.Name})
}
