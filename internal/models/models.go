package models

// Dates are stored as strings because the documents are plain JSON files
// edited by earlier versions of the app: created_at/date hold RFC 3339
// timestamps, completed_dates and the task-document keys hold YYYY-MM-DD.

type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Frequency      string   `json:"frequency"`
	CompletedDates []string `json:"completed_dates"`
	DaysCompleted  int      `json:"days_completed"`
	CreatedAt      string   `json:"created_at"`
}

// Habits is the habits document: a mapping of habit id to habit.
type Habits map[string]*Habit

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

// Tasks is the tasks document, keyed by the YYYY-MM-DD date the task was
// created under. A task never moves to another date.
type Tasks map[string][]Task

type Transaction struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Amount      Number `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Budget struct {
	Limit        Number        `json:"limit"`
	Transactions []Transaction `json:"transactions"`
}

type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type Notes struct {
	Notes []Note `json:"notes"`
}

const (
	DefaultFrequency = "daily"
	DefaultCategory  = "Uncategorized"
)
