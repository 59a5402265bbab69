package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/go-chi/chi/v5"
)

type BudgetHandler struct {
	budgetRepo repository.BudgetRepository
}

func NewBudgetHandler(budgetRepo repository.BudgetRepository) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo}
}

func (handler *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	budget, err := handler.budgetRepo.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

type budgetUpdateRequest struct {
	Limit       *models.Number `json:"limit"`
	Amount      *models.Number `json:"amount"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
}

func (request budgetUpdateRequest) empty() bool {
	return request.Limit == nil && request.Amount == nil &&
		request.Category == "" && request.Description == ""
}

// Update either replaces the limit or appends a transaction. When both
// keys are present the limit wins; the two intents are mutually
// exclusive per call.
func (handler *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request budgetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.empty() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid"})
		return
	}

	var (
		budget models.Budget
		err    error
	)
	if request.Limit != nil {
		budget, err = handler.budgetRepo.SetLimit(r.Context(), *request.Limit)
	} else {
		var amount models.Number
		if request.Amount != nil {
			amount = *request.Amount
		}
		budget, err = handler.budgetRepo.AddTransaction(r.Context(), amount, request.Category, request.Description)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, budget)
}

func (handler *BudgetHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := handler.budgetRepo.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
