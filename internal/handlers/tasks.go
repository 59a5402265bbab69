package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	taskRepo repository.TaskRepository
}

func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

func (handler *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := handler.taskRepo.ListForDate(r.Context(), today())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Create files the task under the server's current date; the request
// carries no date field.
func (handler *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title string `json:"title"`
	}
	json.NewDecoder(r.Body).Decode(&request)

	task, err := handler.taskRepo.Create(r.Context(), request.Title, today())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (handler *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	task, err := handler.taskRepo.Toggle(r.Context(), chi.URLParam(r, "id"), today())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (handler *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.taskRepo.Delete(r.Context(), chi.URLParam(r, "id"), today()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
