package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkanjana/travel-planner/internal/domain"
)

// expenseRequest is the wire shape for creating or replacing an expense.
type expenseRequest struct {
	Date        openapi_types.Date `json:"date"`
	Category    string             `json:"category"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	Description string             `json:"description"`
	Notes       string             `json:"notes"`
}

func (req expenseRequest) toDomain() domain.Expense {
	return domain.Expense{
		Date:        dateString(req.Date),
		Category:    domain.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Notes:       req.Notes,
	}
}

// AddExpense handles POST /trips/{tripID}/expenses.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.expenses.Add(r.Context(), chi.URLParam(r, "tripID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /trips/{tripID}/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// UpdateExpense handles PUT /trips/{tripID}/expenses/{expenseID}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.expenses.Update(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "expenseID"), req.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteExpense handles DELETE /trips/{tripID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.Delete(r.Context(), chi.URLParam(r, "expenseID")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBudget handles GET /trips/{tripID}/budget.
func (s *Server) GetBudget(w http.ResponseWriter, r *http.Request) {
	report, err := s.expenses.Budget(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
