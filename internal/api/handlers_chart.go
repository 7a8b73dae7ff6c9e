package api

import (
	"net/http"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/report"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

func (s *Server) handleCategoryChart(w http.ResponseWriter, r *http.Request) {
	categoryType := r.URL.Query().Get("type")
	if categoryType == "" {
		categoryType = model.TypeExpense
	}
	if !model.ValidCategoryType(categoryType) {
		writeError(w, http.StatusBadRequest, "invalid type")
		return
	}

	transactions, categories, err := s.chartInputs(r)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}

	png, err := s.charts.CategoryPie(report.CategoryTotals(transactions, categories), categoryType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePNG(w, png)
}

func (s *Server) handleSourceChart(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	transactions, _, err := s.chartInputs(r)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	sources, err := s.sources.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}

	png, err := s.charts.SourceDonut(report.SourceBreakdown(transactions, sources))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePNG(w, png)
}

func (s *Server) handleMonthlyChart(w http.ResponseWriter, r *http.Request) {
	transactions, _, err := s.chartInputs(r)
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}

	png, err := s.charts.MonthlySeries(report.MonthlyBuckets(transactions))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePNG(w, png)
}

func (s *Server) chartInputs(r *http.Request) ([]model.Transaction, []model.Category, error) {
	user, _ := UserFromContext(r.Context())

	transactions, err := s.transactions.List(r.Context(), user.ID, service.ListFilter{Limit: reportFetchLimit})
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.categories.List(r.Context(), user.ID, "")
	if err != nil {
		return nil, nil, err
	}
	return transactions, categories, nil
}

// writePNG answers 204 when the chart had nothing to draw.
func writePNG(w http.ResponseWriter, png []byte) {
	if len(png) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
