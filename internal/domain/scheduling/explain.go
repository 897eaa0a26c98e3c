package scheduling

import (
	"fmt"
	"strings"

	"pet-care-planner/internal/domain/tasks"
)

// noPlanGuidance se devuelve cuando todavía no hay plan que explicar.
const noPlanGuidance = "No tasks have been scheduled yet. Generate a daily plan first."

// Explain produce la explicación determinista del plan: resumen de tiempos,
// estrategia de priorización, tareas agendadas en orden de plan y, si las
// hay, las incompletas que quedaron afuera. El conjunto de excluidas se
// calcula por identidad de tarea, no por igualdad de campos.
//
// petNames mapea PetID a nombre para el render; un ID desconocido se
// muestra como "?".
func Explain(ownerName string, plan Plan, incomplete []tasks.Task, petNames map[string]string) string {
	if len(plan.Tasks) == 0 {
		return noPlanGuidance
	}

	name := func(petID string) string {
		if n, ok := petNames[petID]; ok {
			return n
		}
		return "?"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Schedule Summary for %s\n", ownerName)
	fmt.Fprintf(&b, "- Scheduled %d out of %d incomplete tasks\n", len(plan.Tasks), len(incomplete))
	fmt.Fprintf(&b, "- Total time: %d minutes out of %d minutes available\n", plan.TotalMinutes, plan.AvailableMinutes)
	fmt.Fprintf(&b, "- Time remaining: %d minutes\n", plan.AvailableMinutes-plan.TotalMinutes)

	b.WriteString("\nPrioritization Strategy:\n")
	b.WriteString("Tasks are sorted by priority (highest first), then by duration " +
		"(shorter first for equal priorities). This ensures critical tasks are " +
		"completed while maximizing the number of tasks that fit in the available time.\n")

	b.WriteString("\nScheduled Tasks:\n")
	for i, t := range plan.Tasks {
		fmt.Fprintf(&b, "%d. %s (%s) - %d min, Priority %d/5, %s\n",
			i+1, t.Name, name(t.PetID), t.DurationMinutes, t.Priority, t.Category)
	}

	skipped := make([]tasks.Task, 0)
	for _, t := range incomplete {
		if !plan.Contains(t.ID) {
			skipped = append(skipped, t)
		}
	}

	if len(skipped) > 0 {
		fmt.Fprintf(&b, "\nTasks Not Scheduled (%d):\n", len(skipped))
		b.WriteString("These tasks could not fit in the available time:\n")
		for _, t := range skipped {
			fmt.Fprintf(&b, "- %s (%s) - %d min, Priority %d/5\n",
				t.Name, name(t.PetID), t.DurationMinutes, t.Priority)
		}
	}

	return b.String()
}
