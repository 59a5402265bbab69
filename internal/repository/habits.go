package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/google/uuid"
)

type HabitRepository interface {
	// List returns the normalized habits mapping. Normalization is a
	// self-heal on read: duplicate completed dates are removed (first
	// occurrence wins), days_completed is recomputed, and the repaired
	// document is persisted back before returning.
	List(ctx context.Context) (models.Habits, error)
	// All returns the document as stored, without the self-heal write.
	All(ctx context.Context) (models.Habits, error)
	Create(ctx context.Context, name, frequency string) (*models.Habit, error)
	Toggle(ctx context.Context, id, today string) (*models.Habit, error)
	Delete(ctx context.Context, id string) error
}

type FileHabitRepository struct {
	store *storage.Store
	path  string
	mutex sync.Mutex
}

func NewHabitRepository(store *storage.Store, path string) *FileHabitRepository {
	return &FileHabitRepository{store: store, path: path}
}

func (repository *FileHabitRepository) load() models.Habits {
	habits := models.Habits{}
	repository.store.Load(repository.path, &habits)
	return habits
}

func (repository *FileHabitRepository) List(ctx context.Context) (models.Habits, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	habits := repository.load()
	for _, habit := range habits {
		habit.CompletedDates = dedupeDates(habit.CompletedDates)
		habit.DaysCompleted = len(habit.CompletedDates)
	}
	if err := repository.store.Save(repository.path, habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (repository *FileHabitRepository) All(ctx context.Context) (models.Habits, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()
	return repository.load(), nil
}

func (repository *FileHabitRepository) Create(ctx context.Context, name, frequency string) (*models.Habit, error) {
	if name == "" {
		return nil, models.ValidationError{Message: "Name required"}
	}
	if frequency == "" {
		frequency = models.DefaultFrequency
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	habits := repository.load()
	habit := &models.Habit{
		ID:             uuid.NewString(),
		Name:           name,
		Frequency:      frequency,
		CompletedDates: []string{},
		DaysCompleted:  0,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}
	habits[habit.ID] = habit
	if err := repository.store.Save(repository.path, habits); err != nil {
		return nil, err
	}
	return habit, nil
}

func (repository *FileHabitRepository) Toggle(ctx context.Context, id, today string) (*models.Habit, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	habits := repository.load()
	habit, ok := habits[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	dates := dedupeDates(habit.CompletedDates)
	if index := indexOf(dates, today); index >= 0 {
		dates = append(dates[:index], dates[index+1:]...)
	} else {
		dates = append(dates, today)
	}
	habit.CompletedDates = dates
	habit.DaysCompleted = len(dates)

	if err := repository.store.Save(repository.path, habits); err != nil {
		return nil, err
	}
	return habit, nil
}

func (repository *FileHabitRepository) Delete(ctx context.Context, id string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	habits := repository.load()
	if _, ok := habits[id]; !ok {
		return models.ErrNotFound
	}
	delete(habits, id)
	return repository.store.Save(repository.path, habits)
}

// dedupeDates removes duplicates preserving first-occurrence order.
func dedupeDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, date := range dates {
		if !seen[date] {
			seen[date] = true
			unique = append(unique, date)
		}
	}
	return unique
}

func indexOf(dates []string, date string) int {
	for i, d := range dates {
		if d == date {
			return i
		}
	}
	return -1
}
