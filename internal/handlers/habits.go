package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/go-chi/chi/v5"
)

type HabitHandler struct {
	habitRepo repository.HabitRepository
}

func NewHabitHandler(habitRepo repository.HabitRepository) *HabitHandler {
	return &HabitHandler{habitRepo: habitRepo}
}

// List returns the normalized habits mapping. Listing repairs duplicated
// completed dates and persists the repaired document; see
// HabitRepository.List.
func (handler *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	habits, err := handler.habitRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, habits)
}

func (handler *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name      string `json:"name"`
		Frequency string `json:"frequency"`
	}
	// A missing or malformed body falls through to the empty-name check.
	json.NewDecoder(r.Body).Decode(&request)

	habit, err := handler.habitRepo.Create(r.Context(), request.Name, request.Frequency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

func (handler *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	habit, err := handler.habitRepo.Toggle(r.Context(), chi.URLParam(r, "id"), today())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

func (handler *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ID string `json:"id"`
	}
	json.NewDecoder(r.Body).Decode(&request)

	if err := handler.habitRepo.Delete(r.Context(), request.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
