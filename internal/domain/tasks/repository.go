package tasks

import "context"

// Repository persiste tareas. ListByOwner debe devolverlas en orden de
// registro: la estabilidad de la priorización depende de ese orden.
type Repository interface {
	Create(ctx context.Context, t Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
}
