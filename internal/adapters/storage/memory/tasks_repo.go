package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-planner/internal/domain/tasks"
)

// tasksRepo guarda las tareas en un mapa más una lista de IDs en orden de
// alta: la priorización necesita el orden de registro para desempatar.
type tasksRepo struct {
	mu    sync.RWMutex
	byID  map[string]tasks.Task
	order []string
}

func NewTasksRepo() tasks.Repository {
	return &tasksRepo{
		byID: make(map[string]tasks.Task),
	}
}

func (r *tasksRepo) Create(ctx context.Context, t tasks.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("task id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("task already exists")
	}
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *tasksRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return tasks.Task{}, ErrNotFound
	}
	return t, nil
}

func (r *tasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tasks.Task, 0)
	for _, id := range r.order {
		t := r.byID[id]
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *tasksRepo) Update(ctx context.Context, t tasks.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *tasksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
