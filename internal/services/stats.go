package services

import (
	"context"
	"time"

	"github.com/arnavag/life-tracker/internal/models"
	"github.com/arnavag/life-tracker/internal/repository"
)

const dateLayout = "2006-01-02"

// DayStat is one day's task tally.
type DayStat struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Dashboard is a read-only composite of the current-day and
// current-month views across all four documents.
type Dashboard struct {
	Date                 string        `json:"date"`
	PendingTasks         int           `json:"pending_tasks"`
	CompletedTasks       int           `json:"completed_tasks"`
	TotalTasks           int           `json:"total_tasks"`
	TotalHabits          int           `json:"total_habits"`
	CompletedHabitsToday int           `json:"completed_habits_today"`
	MonthlySpent         models.Number `json:"monthly_spent"`
	BudgetLimit          models.Number `json:"budget_limit"`
	NotesCount           int           `json:"notes_count"`
}

type StatsService struct {
	habitRepo  repository.HabitRepository
	taskRepo   repository.TaskRepository
	budgetRepo repository.BudgetRepository
	noteRepo   repository.NoteRepository
}

func NewStatsService(
	habitRepo repository.HabitRepository,
	taskRepo repository.TaskRepository,
	budgetRepo repository.BudgetRepository,
	noteRepo repository.NoteRepository,
) *StatsService {
	return &StatsService{
		habitRepo:  habitRepo,
		taskRepo:   taskRepo,
		budgetRepo: budgetRepo,
		noteRepo:   noteRepo,
	}
}

func (service *StatsService) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	today := now.Format(dateLayout)

	todayTasks, err := service.taskRepo.ListForDate(ctx, today)
	if err != nil {
		return Dashboard{}, err
	}
	completed := 0
	for _, task := range todayTasks {
		if task.Completed {
			completed++
		}
	}

	habits, err := service.habitRepo.All(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	completedHabits := 0
	for _, habit := range habits {
		for _, date := range habit.CompletedDates {
			if date == today {
				completedHabits++
				break
			}
		}
	}

	budget, err := service.budgetRepo.Get(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	notes, err := service.noteRepo.Get(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Date:                 today,
		PendingTasks:         len(todayTasks) - completed,
		CompletedTasks:       completed,
		TotalTasks:           len(todayTasks),
		TotalHabits:          len(habits),
		CompletedHabitsToday: completedHabits,
		MonthlySpent:         MonthSpent(budget.Transactions, now),
		BudgetLimit:          budget.Limit,
		NotesCount:           len(notes.Notes),
	}, nil
}

// ForPeriod returns per-day task tallies: "week" covers the last 7
// calendar days ending today, anything else covers the first of the
// current month through today.
func (service *StatsService) ForPeriod(ctx context.Context, period string, now time.Time) ([]DayStat, error) {
	if period == "week" {
		return service.Weekly(ctx, now)
	}
	return service.Monthly(ctx, now)
}

// Weekly reports the last 7 days ending today, oldest first.
func (service *StatsService) Weekly(ctx context.Context, now time.Time) ([]DayStat, error) {
	stats := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		stat, err := service.dayStat(ctx, date)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// Monthly reports the first of the current month through today
// inclusive. Future dates are never emitted, not even as zero entries.
func (service *StatsService) Monthly(ctx context.Context, now time.Time) ([]DayStat, error) {
	today := now.Format(dateLayout)
	stats := []DayStat{}
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for {
		date := current.Format(dateLayout)
		stat, err := service.dayStat(ctx, date)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
		if date == today {
			break
		}
		current = current.AddDate(0, 0, 1)
	}
	return stats, nil
}

func (service *StatsService) dayStat(ctx context.Context, date string) (DayStat, error) {
	tasks, err := service.taskRepo.ListForDate(ctx, date)
	if err != nil {
		return DayStat{}, err
	}
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return DayStat{Date: date, Completed: completed, Total: len(tasks)}, nil
}

// MonthSpent sums the amounts of transactions dated in the same calendar
// month and year as now. Transactions with unparseable dates contribute
// nothing.
func MonthSpent(transactions []models.Transaction, now time.Time) models.Number {
	var total models.Number
	for _, transaction := range transactions {
		when, ok := parseTimestamp(transaction.Date)
		if !ok {
			continue
		}
		if when.Year() == now.Year() && when.Month() == now.Month() {
			total += transaction.Amount
		}
	}
	return total
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	dateLayout,
}

// parseTimestamp accepts the timestamp shapes found in existing
// documents: RFC 3339 and zone-less ISO variants.
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if when, err := time.Parse(layout, value); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}
