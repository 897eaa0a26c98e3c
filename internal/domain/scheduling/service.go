package scheduling

import (
	"context"
	"sync"
	"time"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/tasks"
)

// Scheduler orquesta la planificación diaria de un owner: priorización,
// armado del plan, conflictos, explicación y cierre de tareas con su
// eventual instancia recurrente.
//
// Guarda el último plan calculado por owner. El plan es derivado: cada
// generación lo reemplaza entero. Un mutex alcanza porque la disciplina
// es un escritor por sesión de owner.
type Scheduler struct {
	owners owners.Repository
	pets   pets.Repository
	tasks  tasks.Repository
	now    func() time.Time

	mu    sync.Mutex
	plans map[string]Plan
}

func NewScheduler(ownersRepo owners.Repository, petsRepo pets.Repository, tasksRepo tasks.Repository) *Scheduler {
	return &Scheduler{
		owners: ownersRepo,
		pets:   petsRepo,
		tasks:  tasksRepo,
		now:    time.Now,
		plans:  make(map[string]Plan),
	}
}

// GeneratePlan recalcula el plan diario del owner y lo deja como último
// plan conocido. Determinista: mismas tareas incompletas, mismo presupuesto
// y mismo orden de registro producen el mismo plan.
func (s *Scheduler) GeneratePlan(ctx context.Context, ownerID string) (Plan, error) {
	o, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return Plan{}, err
	}

	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return Plan{}, err
	}

	plan := BuildPlan(o.AvailableTimeMinutes, all)

	s.mu.Lock()
	s.plans[ownerID] = plan
	s.mu.Unlock()

	return plan, nil
}

// Schedule devuelve el último plan generado para el owner; el segundo
// valor distingue "plan vacío" de "todavía no se generó ninguno".
func (s *Scheduler) Schedule(ownerID string) (Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.plans[ownerID]
	return plan, ok
}

// TotalScheduledTime devuelve los minutos comprometidos en el último plan.
func (s *Scheduler) TotalScheduledTime(ownerID string) int {
	plan, _ := s.Schedule(ownerID)
	return plan.TotalMinutes
}

// PrioritizeTasks devuelve las tareas incompletas del owner en orden de
// prioridad. Repetible e idempotente sobre una colección sin cambios.
func (s *Scheduler) PrioritizeTasks(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Prioritize(all), nil
}

// SortByTime devuelve las tareas del owner ordenadas por horario, con las
// sin hora al final.
func (s *Scheduler) SortByTime(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return SortByTime(all), nil
}

// DetectConflicts revisa solapamientos entre las tareas incompletas con
// hora del owner.
func (s *Scheduler) DetectConflicts(ctx context.Context, ownerID string) ([]Conflict, error) {
	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(all), nil
}

// ConflictWarnings devuelve los conflictos como texto; "" si no hay.
func (s *Scheduler) ConflictWarnings(ctx context.Context, ownerID string) (string, error) {
	conflicts, err := s.DetectConflicts(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return ConflictWarnings(conflicts), nil
}

// MarkComplete marca la tarea como hecha y, si es repetitiva, registra la
// próxima instancia en la colección viva y la devuelve como successor.
// Para frecuencia "once" el successor es nil: no hay sucesora.
func (s *Scheduler) MarkComplete(ctx context.Context, taskID string) (tasks.Task, *tasks.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return tasks.Task{}, nil, err
	}

	t.MarkComplete()
	if err := s.tasks.Update(ctx, t); err != nil {
		return tasks.Task{}, nil, err
	}

	if !t.Frequency.Recurring() {
		return t, nil, nil
	}

	succ, err := t.NextOccurrence(s.now())
	if err != nil {
		return tasks.Task{}, nil, err
	}
	if err := s.tasks.Create(ctx, succ); err != nil {
		return tasks.Task{}, nil, err
	}

	return t, &succ, nil
}

// ExplainReasoning devuelve la explicación del último plan del owner, o el
// texto guía si aún no hay plan.
func (s *Scheduler) ExplainReasoning(ctx context.Context, ownerID string) (string, error) {
	o, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return "", err
	}

	plan, ok := s.Schedule(ownerID)
	if !ok || len(plan.Tasks) == 0 {
		return noPlanGuidance, nil
	}

	all, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}
	incomplete := make([]tasks.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			incomplete = append(incomplete, t)
		}
	}

	ownerPets, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}
	petNames := make(map[string]string, len(ownerPets))
	for _, p := range ownerPets {
		petNames[p.ID] = p.Name
	}

	return Explain(o.Name, plan, incomplete, petNames), nil
}
