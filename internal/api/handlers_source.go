package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	sources, err := s.sources.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if sources == nil {
		sources = []model.Source{}
	}
	writeData(w, http.StatusOK, sources)
}

func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	source, err := s.sources.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if source == nil {
		writeError(w, http.StatusNotFound, "source not found")
		return
	}
	writeData(w, http.StatusOK, source)
}

func (s *Server) handleCreateSource(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var source model.Source
	if err := json.NewDecoder(r.Body).Decode(&source); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.sources.Create(r.Context(), user.ID, &source); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusCreated, source)
}

func (s *Server) handleUpdateSource(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var source model.Source
	if err := json.NewDecoder(r.Body).Decode(&source); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.sources.Update(r.Context(), user.ID, chi.URLParam(r, "id"), &source); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, source)
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	if err := s.sources.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
