package tasks

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPriority      = errors.New("priority must be between 1 and 5")
	ErrInvalidDuration      = errors.New("duration must be positive")
	ErrInvalidScheduledTime = errors.New("scheduled time must be in HH:MM format")
	ErrInvalidCategory      = errors.New("unknown task category")
	ErrInvalidFrequency     = errors.New("unknown task frequency")
	ErrNotRecurring         = errors.New("cannot create recurring instance for a one-time task")
)

// Prioridades válidas: 1 (mínima) a 5 (urgente).
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task es una tarea de cuidado concreta para una mascota.
// La identidad es el ID asignado al construirla: dos tareas con campos
// idénticos siguen siendo tareas distintas.
type Task struct {
	ID      string
	OwnerID string
	PetID   string

	Name            string
	DurationMinutes int
	Priority        int
	Category        Category
	Completed       bool

	// ScheduledTime es opcional; solo las tareas con hora participan
	// en la detección de conflictos y en el orden por horario.
	ScheduledTime *ClockTime

	Frequency Frequency
	// DueDate es la fecha de la próxima ocurrencia (opcional).
	DueDate *time.Time

	CreatedAt time.Time
}

// MarkComplete marca la tarea como hecha. Las completadas quedan en la
// colección para historial, pero salen de priorización, plan y conflictos.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// EndTime devuelve la hora de fin (inicio + duración) y false si la
// tarea no tiene hora agendada.
func (t Task) EndTime() (ClockTime, bool) {
	if t.ScheduledTime == nil {
		return 0, false
	}
	return t.ScheduledTime.Add(t.DurationMinutes), true
}

// validate aplica las invariantes de construcción; si algo falla,
// la tarea nunca llega a crearse.
func (t Task) validate() error {
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return ErrInvalidPriority
	}
	if t.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if !t.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	return nil
}
