package httpserver

import (
	"net/http"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

// MemberForm carries the fields of the member creation form.
type MemberForm struct {
	Name  string
	Email string
}

type listPage struct {
	Members []models.Member
}

type createPage struct {
	MemberForm MemberForm
}

// listMembers handles GET /members.
func (s *HTTPServer) listMembers(w http.ResponseWriter, r *http.Request) {
	all, err := s.members.GetAll(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "error listing members", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := s.views.render(w, viewMembersList, listPage{Members: all}); err != nil {
		s.logger.Error(r.Context(), "error rendering members list", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// newMemberForm handles GET /members/new.
func (s *HTTPServer) newMemberForm(w http.ResponseWriter, r *http.Request) {
	if err := s.views.render(w, viewMembersCreate, createPage{}); err != nil {
		s.logger.Error(r.Context(), "error rendering member form", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// createMember handles POST /members. Missing fields bind as empty strings.
func (s *HTTPServer) createMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := MemberForm{Name: r.PostForm.Get("name"), Email: r.PostForm.Get("email")}

	m, err := s.members.Create(r.Context(), form.Name, form.Email)
	if err != nil {
		s.logger.Error(r.Context(), "error creating member", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "Member created", "id", m.ID)
	http.Redirect(w, r, "/members", http.StatusSeeOther)
}
