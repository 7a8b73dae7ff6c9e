package api

import (
	"net/http"
	"time"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/report"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

// reportFetchLimit is how many of the newest transactions feed the report
// aggregations.
const reportFetchLimit = 100

// reportPreviewRows caps the transaction list embedded in the report
// response.
const reportPreviewRows = 10

type reportResponse struct {
	Period         report.Period          `json:"period"`
	Summary        report.Summary         `json:"summary"`
	ExpenseRatio   float64                `json:"expenseRatio"`
	Monthly        []report.MonthBucket   `json:"monthly"`
	CategoryTotals []report.CategoryTotal `json:"categoryTotals"`
	Transactions   []model.Transaction    `json:"transactions"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	period := report.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = report.PeriodCurrentMonth
	}
	if !report.ValidPeriod(period) {
		writeError(w, http.StatusBadRequest, "invalid period")
		return
	}

	dashboard := s.dashboard.Fetch(r.Context(), user.ID, period, time.Now())
	writeData(w, http.StatusOK, dashboard)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	period := report.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = report.PeriodCurrentMonth
	}
	if !report.ValidPeriod(period) {
		writeError(w, http.StatusBadRequest, "invalid period")
		return
	}

	start, ok := parseQueryDate(r.URL.Query().Get("start_date"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, ok := parseQueryDate(r.URL.Query().Get("end_date"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	transactions, err := s.transactions.List(r.Context(), user.ID, service.ListFilter{Limit: reportFetchLimit})
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	categories, err := s.categories.List(r.Context(), user.ID, "")
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}

	transactions = report.FilterByPeriod(transactions, period, time.Now(), start, end)
	summary := report.Summarize(transactions)

	preview := transactions
	if len(preview) > reportPreviewRows {
		preview = preview[:reportPreviewRows]
	}

	writeData(w, http.StatusOK, reportResponse{
		Period:         period,
		Summary:        summary,
		ExpenseRatio:   report.ExpenseRatio(summary),
		Monthly:        report.MonthlyBuckets(transactions),
		CategoryTotals: report.CategoryTotals(transactions, categories),
		Transactions:   preview,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	opts := report.ExportOptions{
		Type:        r.URL.Query().Get("type"),
		CategoryID:  r.URL.Query().Get("category_id"),
		WithSummary: r.URL.Query().Get("summary") == "true",
	}

	transactions, err := s.transactions.List(r.Context(), user.ID, service.ListFilter{Limit: reportFetchLimit})
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}
	categories, err := s.categories.List(r.Context(), user.ID, "")
	if err != nil {
		writeError(w, serviceStatus(err), err.Error())
		return
	}

	csv := report.CSV(transactions, categories, opts)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.ExportFileName(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}

func parseQueryDate(raw string) (model.Date, bool) {
	if raw == "" {
		return model.Date{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return model.Date{}, false
	}
	return model.DateOf(t), true
}
