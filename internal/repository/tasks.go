package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/google/uuid"
)

type TaskRepository interface {
	ListForDate(ctx context.Context, date string) ([]models.Task, error)
	// Create always files the task under the given date key; there is no
	// backdating and no mechanism to move a task across dates.
	Create(ctx context.Context, title, today string) (models.Task, error)
	// Toggle and Delete only reach tasks under the today key.
	Toggle(ctx context.Context, id, today string) (models.Task, error)
	Delete(ctx context.Context, id, today string) error
}

type FileTaskRepository struct {
	store *storage.Store
	path  string
	mutex sync.Mutex
}

func NewTaskRepository(store *storage.Store, path string) *FileTaskRepository {
	return &FileTaskRepository{store: store, path: path}
}

func (repository *FileTaskRepository) load() models.Tasks {
	tasks := models.Tasks{}
	repository.store.Load(repository.path, &tasks)
	return tasks
}

func (repository *FileTaskRepository) ListForDate(ctx context.Context, date string) ([]models.Task, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	tasks := repository.load()
	list := tasks[date]
	if list == nil {
		list = []models.Task{}
	}
	return list, nil
}

func (repository *FileTaskRepository) Create(ctx context.Context, title, today string) (models.Task, error) {
	if title == "" {
		return models.Task{}, models.ValidationError{Message: "Title required"}
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	tasks := repository.load()
	task := models.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	tasks[today] = append(tasks[today], task)
	if err := repository.store.Save(repository.path, tasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repository *FileTaskRepository) Toggle(ctx context.Context, id, today string) (models.Task, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	tasks := repository.load()
	for i := range tasks[today] {
		if tasks[today][i].ID == id {
			tasks[today][i].Completed = !tasks[today][i].Completed
			if err := repository.store.Save(repository.path, tasks); err != nil {
				return models.Task{}, err
			}
			return tasks[today][i], nil
		}
	}
	return models.Task{}, models.ErrNotFound
}

func (repository *FileTaskRepository) Delete(ctx context.Context, id, today string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	tasks := repository.load()
	list := tasks[today]
	remaining := make([]models.Task, 0, len(list))
	for _, task := range list {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}
	if len(remaining) == len(list) {
		return models.ErrNotFound
	}
	tasks[today] = remaining
	return repository.store.Save(repository.path, tasks)
}
