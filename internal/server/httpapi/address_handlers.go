package httpapi

import (
	"net/http"

	"github.com/devdan/contactbook/internal/server/models"
)

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type addressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

func toAddressResponse(a *models.Address) addressResponse {
	return addressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	var req addressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Country == "" {
		writeError(w, http.StatusBadRequest, "country is required")
		return
	}

	address := &models.Address{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	created, err := s.addresses.Create(r.Context(), user.Username, r.PathValue("contactID"), address)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toAddressResponse(created))
}

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	address, err := s.addresses.Get(r.Context(), user.Username, r.PathValue("contactID"), r.PathValue("addressID"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toAddressResponse(address))
}

func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	var req addressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Country == "" {
		writeError(w, http.StatusBadRequest, "country is required")
		return
	}

	address := &models.Address{
		ID:         r.PathValue("addressID"),
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	updated, err := s.addresses.Update(r.Context(), user.Username, r.PathValue("contactID"), address)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toAddressResponse(updated))
}

func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	err := s.addresses.Delete(r.Context(), user.Username, r.PathValue("contactID"), r.PathValue("addressID"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, "OK")
}

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	user, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	addresses, err := s.addresses.List(r.Context(), user.Username, r.PathValue("contactID"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, toAddressResponse(a))
	}
	writeData(w, http.StatusOK, result)
}
