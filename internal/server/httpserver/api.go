package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/firstweek/internal/common"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

type createMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), err.Error())
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrorInternal.Error()})
}

// memberID parses the {id} path parameter; ids must be positive.
func memberID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorInvalidID
	}
	return id, nil
}

func (s *HTTPServer) apiListMembers(w http.ResponseWriter, r *http.Request) {
	all, err := s.members.GetAll(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *HTTPServer) apiGetMember(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	m, found, err := s.members.Get(r.Context(), id)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrorNotFound.Error()})
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (s *HTTPServer) apiCreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	m, err := s.members.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

func (s *HTTPServer) apiDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := memberID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := s.members.Delete(r.Context(), id); err != nil {
		s.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
