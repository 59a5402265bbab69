package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/go-chi/chi/v5"
)

type NoteHandler struct {
	noteRepo repository.NoteRepository
}

func NewNoteHandler(noteRepo repository.NoteRepository) *NoteHandler {
	return &NoteHandler{noteRepo: noteRepo}
}

func (handler *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	notes, err := handler.noteRepo.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (handler *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	json.NewDecoder(r.Body).Decode(&request)

	note, err := handler.noteRepo.Create(r.Context(), request.Title, request.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (handler *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.noteRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
