package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/google/uuid"
)

type NoteRepository interface {
	Get(ctx context.Context) (models.Notes, error)
	Create(ctx context.Context, title, content string) (models.Note, error)
	Delete(ctx context.Context, id string) error
}

type FileNoteRepository struct {
	store *storage.Store
	path  string
	mutex sync.Mutex
}

func NewNoteRepository(store *storage.Store, path string) *FileNoteRepository {
	return &FileNoteRepository{store: store, path: path}
}

// load degrades to an empty document when the stored value is not an
// object; the storage layer rejects non-matching JSON during unmarshal.
func (repository *FileNoteRepository) load() models.Notes {
	var notes models.Notes
	repository.store.Load(repository.path, &notes)
	if notes.Notes == nil {
		notes.Notes = []models.Note{}
	}
	return notes
}

func (repository *FileNoteRepository) Get(ctx context.Context) (models.Notes, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()
	return repository.load(), nil
}

func (repository *FileNoteRepository) Create(ctx context.Context, title, content string) (models.Note, error) {
	if title == "" {
		return models.Note{}, models.ValidationError{Message: "Title required"}
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	notes := repository.load()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	notes.Notes = append(notes.Notes, note)
	if err := repository.store.Save(repository.path, notes); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (repository *FileNoteRepository) Delete(ctx context.Context, id string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	notes := repository.load()
	remaining := make([]models.Note, 0, len(notes.Notes))
	for _, note := range notes.Notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}
	if len(remaining) == len(notes.Notes) {
		return models.ErrNotFound
	}
	notes.Notes = remaining
	return repository.store.Save(repository.path, notes)
}
