// Demo de terminal: arma un escenario completo contra storage in-memory
// y muestra priorización, plan diario, explicación, conflictos y cierre de
// tareas. Es un caller fino del núcleo, sin lógica de planificación propia.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	mem "pet-care-planner/internal/adapters/storage/memory"
	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	ownersRepo := mem.NewOwnersRepo()
	petsRepo := mem.NewPetsRepo()
	tasksRepo := mem.NewTasksRepo()

	ownersSvc := owners.NewService(ownersRepo)
	petsSvc := pets.NewService(petsRepo)
	tasksSvc := tasks.NewService(tasksRepo)
	sched := scheduling.NewScheduler(ownersRepo, petsRepo, tasksRepo)

	header("Daily Pet Care Planner Demo")

	// Owner
	header("Step 1: Create Owner")
	owner, err := ownersSvc.Create(ctx, owners.CreateInput{
		Name:                 "Jordan",
		AvailableTimeMinutes: 180,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Owner created: %s (%d minutes per day)\n", owner.Name, owner.AvailableTimeMinutes)

	// Pets
	header("Step 2: Add Pets")
	dog, err := petsSvc.Create(ctx, owner.ID, pets.CreateInput{Name: "Max", Species: "dog", Age: 3})
	if err != nil {
		return err
	}
	if _, err := petsSvc.AddSpecialNeed(ctx, dog.ID, "joint medication"); err != nil {
		return err
	}
	cat, err := petsSvc.Create(ctx, owner.ID, pets.CreateInput{Name: "Luna", Species: "cat", Age: 2})
	if err != nil {
		return err
	}
	if _, err := petsSvc.AddSpecialNeed(ctx, cat.ID, "indoor only"); err != nil {
		return err
	}
	fmt.Printf("Added pets: %s (%s), %s (%s)\n", dog.Name, dog.Species, cat.Name, cat.Species)

	// Tareas, en orden arbitrario para que se note el ordenamiento
	header("Step 3: Add Care Tasks")
	seed := []tasks.CreateInput{
		{Name: "Evening walk", DurationMinutes: 45, Priority: 4, Category: tasks.CategoryWalk, PetID: dog.ID, ScheduledTime: "18:00"},
		{Name: "Morning medication", DurationMinutes: 5, Priority: 5, Category: tasks.CategoryMedication, PetID: dog.ID, ScheduledTime: "08:00", Frequency: tasks.FrequencyDaily},
		{Name: "Lunch feeding", DurationMinutes: 10, Priority: 5, Category: tasks.CategoryFeed, PetID: dog.ID},
		{Name: "Morning walk", DurationMinutes: 30, Priority: 5, Category: tasks.CategoryWalk, PetID: dog.ID, ScheduledTime: "08:00"},
		{Name: "Play session", DurationMinutes: 25, Priority: 3, Category: tasks.CategoryPlaytime, PetID: dog.ID},
		{Name: "Cat feeding", DurationMinutes: 10, Priority: 5, Category: tasks.CategoryFeed, PetID: cat.ID},
		{Name: "Litter box cleaning", DurationMinutes: 15, Priority: 4, Category: tasks.CategoryGrooming, PetID: cat.ID},
		{Name: "Cat enrichment", DurationMinutes: 20, Priority: 3, Category: tasks.CategoryEnrichment, PetID: cat.ID},
		{Name: "Dog grooming", DurationMinutes: 60, Priority: 2, Category: tasks.CategoryGrooming, PetID: dog.ID},
	}
	for _, in := range seed {
		t, err := tasksSvc.Create(ctx, owner.ID, in)
		if err != nil {
			return err
		}
		fmt.Printf("  + %s - %d min, priority %d/5\n", t.Name, t.DurationMinutes, t.Priority)
	}

	// Filtros
	header("Step 4: Filter Tasks")
	dogTasks, err := tasksSvc.ListByOwner(ctx, owner.ID, tasks.ListFilter{PetID: dog.ID})
	if err != nil {
		return err
	}
	fmt.Printf("Tasks for %s: %d\n", dog.Name, len(dogTasks))
	feedTasks, err := tasksSvc.ListByOwner(ctx, owner.ID, tasks.ListFilter{Category: tasks.CategoryFeed})
	if err != nil {
		return err
	}
	fmt.Printf("Feeding tasks: %d\n", len(feedTasks))

	header("Step 5: Generate Daily Schedule")
	plan, err := sched.GeneratePlan(ctx, owner.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Schedule generated with %d tasks (%d/%d minutes)\n",
		len(plan.Tasks), plan.TotalMinutes, plan.AvailableMinutes)
	for i, t := range plan.Tasks {
		fmt.Printf("  %d. %s - %d min, priority %d/5\n", i+1, t.Name, t.DurationMinutes, t.Priority)
	}

	header("Step 6: Scheduling Explanation")
	explanation, err := sched.ExplainReasoning(ctx, owner.ID)
	if err != nil {
		return err
	}
	fmt.Println(explanation)

	header("Step 7: Conflicts")
	warnings, err := sched.ConflictWarnings(ctx, owner.ID)
	if err != nil {
		return err
	}
	if warnings == "" {
		fmt.Println("No scheduling conflicts.")
	} else {
		fmt.Print(warnings)
	}

	header("Step 8: Complete Tasks")
	if len(plan.Tasks) > 0 {
		done, succ, err := sched.MarkComplete(ctx, plan.Tasks[0].ID)
		if err != nil {
			return err
		}
		fmt.Printf("Completed: %s\n", done.Name)
		if succ != nil {
			fmt.Printf("Next occurrence registered: %s (due %s)\n",
				succ.Name, succ.DueDate.Format("2006-01-02"))
		}

		newPlan, err := sched.GeneratePlan(ctx, owner.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Regenerated schedule: %d tasks, %d minutes\n",
			len(newPlan.Tasks), newPlan.TotalMinutes)
	}

	header("Demo Complete")
	return nil
}

func header(text string) {
	fmt.Printf("\n%s\n  %s\n%s\n", strings.Repeat("=", 60), text, strings.Repeat("=", 60))
}
