package scheduling

import (
	"fmt"
	"strings"

	"pet-care-planner/internal/domain/tasks"
)

// Conflict es un par (no ordenado) de tareas con hora cuyos intervalos de
// ejecución se pisan. First es siempre la registrada antes.
type Conflict struct {
	First  tasks.Task
	Second tasks.Task
}

// Description arma el texto del conflicto con inicio y fin de ambas tareas.
func (c Conflict) Description() string {
	return fmt.Sprintf("'%s' (%s) overlaps with '%s' (%s)",
		c.First.Name, renderInterval(c.First),
		c.Second.Name, renderInterval(c.Second),
	)
}

func renderInterval(t tasks.Task) string {
	end, _ := t.EndTime()
	return fmt.Sprintf("%s-%s", t.ScheduledTime, end)
}

// DetectConflicts revisa cada par exactamente una vez (sin pares duplicados
// ni pares consigo misma) sobre las tareas incompletas con hora agendada.
// Semántica de intervalo semiabierto [inicio, inicio+duración): dos tareas
// chocan sii A.inicio < B.fin y B.inicio < A.fin; tocarse en el borde
// (A.fin == B.inicio) no es conflicto.
//
// Cuadrático en la cantidad de tareas con hora; con decenas de tareas por
// día alcanza de sobra.
func DetectConflicts(all []tasks.Task) []Conflict {
	timed := make([]tasks.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed && t.ScheduledTime != nil {
			timed = append(timed, t)
		}
	}

	conflicts := []Conflict{}
	for i := 0; i < len(timed); i++ {
		for j := i + 1; j < len(timed); j++ {
			a, b := timed[i], timed[j]
			aStart := a.ScheduledTime.Minutes()
			aEnd := aStart + a.DurationMinutes
			bStart := b.ScheduledTime.Minutes()
			bEnd := bStart + b.DurationMinutes

			if aStart < bEnd && bStart < aEnd {
				conflicts = append(conflicts, Conflict{First: a, Second: b})
			}
		}
	}

	return conflicts
}

// ConflictWarnings vuelca los conflictos a texto enumerado legible.
// Sin conflictos devuelve cadena vacía (señal de "nada que avisar").
func ConflictWarnings(conflicts []Conflict) string {
	if len(conflicts) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scheduling conflicts detected (%d):\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Description())
	}
	return b.String()
}
