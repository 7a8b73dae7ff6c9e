package api

import (
	"encoding/json"
	"net/http"

	"github.com/simpleproject-dev/finance-app/internal/model"
)

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	writeData(w, http.StatusOK, s.prefs.Get(user.ID))
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var p model.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.prefs.Set(user.ID, p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusOK, p)
}
