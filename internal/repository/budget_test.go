package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/arnavag/life-tracker/internal/testutil"
)

func TestBudgetRepository_Get_CoercesStoredLimit(t *testing.T) {
	store := testutil.NewTestStore(t)
	path := store.DocumentPath("budget.json")
	repo := repository.NewBudgetRepository(store, path)
	ctx := context.Background()

	// Older documents hold the limit as a string, sometimes garbage.
	cases := []struct {
		raw  string
		want models.Number
	}{
		{`{"limit": "100", "transactions": []}`, 100},
		{`{"limit": "99.5", "transactions": []}`, 99.5},
		{`{"limit": "not a number", "transactions": []}`, 0},
		{`{"transactions": []}`, 0},
	}
	for _, tc := range cases {
		if err := os.WriteFile(path, []byte(tc.raw), 0o644); err != nil {
			t.Fatalf("seeding budget: %v", err)
		}
		budget, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("getting budget: %v", err)
		}
		if budget.Limit != tc.want {
			t.Errorf("limit from %s: expected %v, got %v", tc.raw, tc.want, budget.Limit)
		}
	}
}

func TestBudgetRepository_SetLimit(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewBudgetRepository(store, store.DocumentPath("budget.json"))
	ctx := context.Background()

	budget, err := repo.SetLimit(ctx, 250)
	if err != nil {
		t.Fatalf("setting limit: %v", err)
	}
	if budget.Limit != 250 {
		t.Errorf("expected limit 250, got %v", budget.Limit)
	}

	budget, err = repo.SetLimit(ctx, 99.5)
	if err != nil {
		t.Fatalf("replacing limit: %v", err)
	}
	if budget.Limit != 99.5 {
		t.Errorf("expected limit replaced wholesale with 99.5, got %v", budget.Limit)
	}
}

func TestBudgetRepository_AddTransaction(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewBudgetRepository(store, store.DocumentPath("budget.json"))
	ctx := context.Background()

	budget, err := repo.AddTransaction(ctx, 42.5, "", "lunch")
	if err != nil {
		t.Fatalf("adding transaction: %v", err)
	}
	if len(budget.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(budget.Transactions))
	}
	transaction := budget.Transactions[0]
	if transaction.Category != "Uncategorized" {
		t.Errorf("expected default category 'Uncategorized', got '%s'", transaction.Category)
	}
	if transaction.Amount != 42.5 {
		t.Errorf("expected amount 42.5, got %v", transaction.Amount)
	}
	if transaction.ID == "" || transaction.Date == "" {
		t.Error("expected id and date to be assigned")
	}
}

func TestBudgetRepository_AddTransaction_ZeroAmount(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewBudgetRepository(store, store.DocumentPath("budget.json"))

	_, err := repo.AddTransaction(context.Background(), 0, "Food", "")
	var validation models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Message != "Amount required" {
		t.Errorf("expected 'Amount required', got '%s'", validation.Message)
	}
}

func TestBudgetRepository_DeleteTransaction_MissLeavesDocumentUnchanged(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := repository.NewBudgetRepository(store, store.DocumentPath("budget.json"))
	ctx := context.Background()

	budget, err := repo.AddTransaction(ctx, 10, "Food", "")
	if err != nil {
		t.Fatalf("adding transaction: %v", err)
	}

	if err := repo.DeleteTransaction(ctx, "does-not-exist"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("getting budget: %v", err)
	}
	if len(after.Transactions) != 1 || after.Transactions[0].ID != budget.Transactions[0].ID {
		t.Errorf("expected document unchanged after miss, got %v", after.Transactions)
	}

	if err := repo.DeleteTransaction(ctx, budget.Transactions[0].ID); err != nil {
		t.Fatalf("deleting transaction: %v", err)
	}
	after, _ = repo.Get(ctx)
	if len(after.Transactions) != 0 {
		t.Errorf("expected no transactions after delete, got %v", after.Transactions)
	}
}
