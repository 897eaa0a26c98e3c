package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-care-planner/internal/adapters/storage/memory"
	pg "pet-care-planner/internal/adapters/storage/postgres"
	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"
	"pet-care-planner/internal/middleware"
	"pet-care-planner/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger para el middleware de requests.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		ownersRepo owners.Repository
		petsRepo   pets.Repository
		tasksRepo  tasks.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		tasksRepo = pg.NewTasksRepo(db)
	} else {
		ownersRepo = mem.NewOwnersRepo()
		petsRepo = mem.NewPetsRepo()
		tasksRepo = mem.NewTasksRepo()
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownersRepo)
	petsSvc := pets.NewService(petsRepo)
	tasksSvc := tasks.NewService(tasksRepo)
	sched := scheduling.NewScheduler(ownersRepo, petsRepo, tasksRepo)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc)
	tasks.RegisterRoutes(r, tasksSvc)
	scheduling.RegisterRoutes(r, sched)

	return r
}
