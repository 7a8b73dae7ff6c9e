package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/repository"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

// serviceStatus maps a service error to the HTTP status for it.
func serviceStatus(err error) int {
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	categories, err := s.categories.List(r.Context(), user.ID, r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	writeData(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	category, err := s.categories.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeData(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var category model.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.categories.Create(r.Context(), user.ID, &category); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var category model.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.categories.Update(r.Context(), user.ID, chi.URLParam(r, "id"), &category); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	if err := s.categories.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
