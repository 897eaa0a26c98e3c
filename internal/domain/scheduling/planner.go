package scheduling

import (
	"sort"

	"pet-care-planner/internal/domain/tasks"
)

// Prioritize devuelve las tareas incompletas en orden total: prioridad
// descendente y, a igual prioridad, duración ascendente (las cortas antes,
// para que entren más tareas en el presupuesto). Empates más allá de eso
// conservan el orden de registro (sort estable). Sin efectos secundarios.
func Prioritize(all []tasks.Task) []tasks.Task {
	out := make([]tasks.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].DurationMinutes < out[j].DurationMinutes
	})

	return out
}

// Plan es el subconjunto comprometido de tareas para hoy. Es estado
// derivado: se recalcula completo en cada generación, nunca se mezcla
// con un plan anterior.
type Plan struct {
	Tasks            []tasks.Task
	TotalMinutes     int
	AvailableMinutes int
}

// Contains reporta si la tarea (por identidad, no por igualdad de campos)
// quedó dentro del plan.
func (p Plan) Contains(taskID string) bool {
	for _, t := range p.Tasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}

// BuildPlan arma el plan diario con un greedy de una sola pasada: recorre
// la secuencia priorizada y acepta cada tarea que todavía entra en el
// presupuesto; la que no entra se saltea definitivamente (sin backtracking
// ni reordenamiento: no es un solver de subset-sum). Una tarea más larga
// que todo el presupuesto se saltea, nunca se agenda parcial.
func BuildPlan(availableMinutes int, all []tasks.Task) Plan {
	plan := Plan{
		Tasks:            []tasks.Task{},
		AvailableMinutes: availableMinutes,
	}

	for _, t := range Prioritize(all) {
		if plan.TotalMinutes+t.DurationMinutes <= availableMinutes {
			plan.Tasks = append(plan.Tasks, t)
			plan.TotalMinutes += t.DurationMinutes
		}
	}

	return plan
}
