package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	filter := service.ListFilter{
		Type:       r.URL.Query().Get("type"),
		CategoryID: r.URL.Query().Get("category_id"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	transactions, err := s.transactions.List(r.Context(), user.ID, filter)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	writeData(w, http.StatusOK, transactions)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	transaction, err := s.transactions.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	if transaction == nil {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	writeData(w, http.StatusOK, transaction)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var transaction model.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.transactions.Create(r.Context(), user.ID, &transaction); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusCreated, transaction)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var transaction model.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.transactions.Update(r.Context(), user.ID, chi.URLParam(r, "id"), &transaction); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, transaction)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	if err := s.transactions.Delete(r.Context(), chi.URLParam(r, "id"), user.ID); err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	summary, err := s.transactions.Summary(r.Context(), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, summary)
}
