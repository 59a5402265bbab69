package server

import (
	"log/slog"
	"net/http"

	"github.com/arnavag/life-tracker/internal/config"
	"github.com/arnavag/life-tracker/internal/handlers"
	"github.com/arnavag/life-tracker/internal/repository"
	"github.com/arnavag/life-tracker/internal/services"
	"github.com/arnavag/life-tracker/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(store *storage.Store, cfg config.Config) *Server {
	habitRepo := repository.NewHabitRepository(store, cfg.HabitsPath())
	taskRepo := repository.NewTaskRepository(store, cfg.TasksPath())
	budgetRepo := repository.NewBudgetRepository(store, cfg.BudgetPath())
	noteRepo := repository.NewNoteRepository(store, cfg.NotesPath())

	statsService := services.NewStatsService(habitRepo, taskRepo, budgetRepo, noteRepo)

	habitHandler := handlers.NewHabitHandler(habitRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	noteHandler := handlers.NewNoteHandler(noteRepo)
	statsHandler := handlers.NewStatsHandler(statsService)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/habits", habitHandler.List)
		r.Post("/habits", habitHandler.Create)
		r.Delete("/habits", habitHandler.Delete)
		r.Post("/habits/{id}/toggle", habitHandler.Toggle)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Put("/tasks/{id}/toggle", taskHandler.Toggle)
		r.Delete("/tasks/{id}", taskHandler.Delete)

		r.Get("/budget", budgetHandler.Get)
		r.Post("/budget", budgetHandler.Update)
		r.Delete("/budget/{id}", budgetHandler.DeleteTransaction)

		r.Get("/notes", noteHandler.Get)
		r.Post("/notes", noteHandler.Create)
		r.Delete("/notes/{id}", noteHandler.Delete)

		r.Get("/stats", statsHandler.Stats)
		r.Get("/dashboard", statsHandler.Dashboard)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address, "data_dir", server.config.DataDir)
	return http.ListenAndServe(address, server.router)
}
