package repository

import (
	"context"
	"sync"
	"time"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/google/uuid"
)

type BudgetRepository interface {
	Get(ctx context.Context) (models.Budget, error)
	// SetLimit replaces the stored limit wholesale and returns the full
	// document.
	SetLimit(ctx context.Context, limit models.Number) (models.Budget, error)
	// AddTransaction appends a transaction dated now and returns the full
	// document. A zero amount is rejected.
	AddTransaction(ctx context.Context, amount models.Number, category, description string) (models.Budget, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type FileBudgetRepository struct {
	store *storage.Store
	path  string
	mutex sync.Mutex
}

func NewBudgetRepository(store *storage.Store, path string) *FileBudgetRepository {
	return &FileBudgetRepository{store: store, path: path}
}

func (repository *FileBudgetRepository) load() models.Budget {
	var budget models.Budget
	repository.store.Load(repository.path, &budget)
	if budget.Transactions == nil {
		budget.Transactions = []models.Transaction{}
	}
	return budget
}

func (repository *FileBudgetRepository) Get(ctx context.Context) (models.Budget, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()
	// Limit is coerced through models.Number on load, so a hand-edited
	// or corrupt value reads as 0.
	return repository.load(), nil
}

func (repository *FileBudgetRepository) SetLimit(ctx context.Context, limit models.Number) (models.Budget, error) {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	budget := repository.load()
	budget.Limit = limit
	if err := repository.store.Save(repository.path, budget); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (repository *FileBudgetRepository) AddTransaction(ctx context.Context, amount models.Number, category, description string) (models.Budget, error) {
	if amount == 0 {
		return models.Budget{}, models.ValidationError{Message: "Amount required"}
	}
	if category == "" {
		category = models.DefaultCategory
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	budget := repository.load()
	budget.Transactions = append(budget.Transactions, models.Transaction{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        time.Now().Format(time.RFC3339),
	})
	if err := repository.store.Save(repository.path, budget); err != nil {
		return models.Budget{}, err
	}
	return budget, nil
}

func (repository *FileBudgetRepository) DeleteTransaction(ctx context.Context, id string) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	budget := repository.load()
	remaining := make([]models.Transaction, 0, len(budget.Transactions))
	for _, transaction := range budget.Transactions {
		if transaction.ID != id {
			remaining = append(remaining, transaction)
		}
	}
	if len(remaining) == len(budget.Transactions) {
		return models.ErrNotFound
	}
	budget.Transactions = remaining
	return repository.store.Save(repository.path, budget)
}
