package httpapi

import (
	"net/http"

	"github.com/devdan/contactbook/internal/server/models"
)

type contactRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type contactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func toContactResponse(c *models.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FirstName == "" {
		writeError(w, http.StatusBadRequest, "firstname is required")
		return
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	created, err := s.contacts.Create(r.Context(), user.Username, contact)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toContactResponse(created))
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	contact, err := s.contacts.Get(r.Context(), user.Username, r.PathValue("contactID"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toContactResponse(contact))
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FirstName == "" {
		writeError(w, http.StatusBadRequest, "firstname is required")
		return
	}

	contact := &models.Contact{
		ID:        r.PathValue("contactID"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	updated, err := s.contacts.Update(r.Context(), user.Username, contact)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toContactResponse(updated))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := s.contacts.Delete(r.Context(), user.Username, r.PathValue("contactID")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	contacts, err := s.contacts.List(r.Context(), user.Username)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result := make([]contactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, toContactResponse(c))
	}
	writeData(w, http.StatusOK, result)
}
