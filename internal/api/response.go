package api

import (
	"encoding/json"
	"net/http"
)

// envelope mirrors the shape every endpoint responds with: the payload under
// data, or a message under error.
type envelope struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
