package scheduling

import (
	"sort"

	"pet-care-planner/internal/domain/tasks"
)

// SortByTime ordena las tareas con hora por horario ascendente y agrega
// las sin hora al final. Dentro de cada grupo se conserva el orden
// relativo original.
func SortByTime(all []tasks.Task) []tasks.Task {
	timed := make([]tasks.Task, 0, len(all))
	untimed := make([]tasks.Task, 0, len(all))
	for _, t := range all {
		if t.ScheduledTime != nil {
			timed = append(timed, t)
		} else {
			untimed = append(untimed, t)
		}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].ScheduledTime.Minutes() < timed[j].ScheduledTime.Minutes()
	})

	return append(timed, untimed...)
}
