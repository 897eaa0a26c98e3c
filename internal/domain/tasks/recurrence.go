package tasks

import (
	"time"

	"github.com/google/uuid"
)

// NextOccurrence materializa la próxima instancia de una tarea repetitiva:
// misma tarea (nombre, duración, prioridad, categoría, mascota, hora y
// frecuencia), identidad nueva, sin completar y con la fecha corrida según
// la frecuencia. Para frecuencia "once" la operación no existe.
//
// Si la tarea no tiene DueDate, el corrimiento parte del inicio del día
// actual.
func (t Task) NextOccurrence(now time.Time) (Task, error) {
	if !t.Frequency.Recurring() {
		return Task{}, ErrNotRecurring
	}

	base := startOfDay(now)
	if t.DueDate != nil {
		base = *t.DueDate
	}
	next := base.AddDate(0, 0, t.Frequency.intervalDays())

	succ := t
	succ.ID = uuid.NewString()
	succ.Completed = false
	succ.DueDate = &next
	succ.CreatedAt = now
	return succ, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
