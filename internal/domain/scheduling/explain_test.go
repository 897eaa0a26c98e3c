package scheduling_test

import (
	"strings"
	"testing"

	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
)

func TestExplain_EmptyPlanReturnsGuidance(t *testing.T) {
	got := scheduling.Explain("Jordan", scheduling.Plan{}, nil, nil)

	assert.Contains(t, got, "No tasks have been scheduled yet")
}

func TestExplain_RendersSummaryScheduleAndSkipped(t *testing.T) {
	walk := task("walk", "Morning walk", 5, 30)
	feed := task("feed", "Cat feeding", 5, 10)
	groom := task("groom", "Dog grooming", 2, 60)

	plan := scheduling.BuildPlan(45, []tasks.Task{walk, feed, groom})
	incomplete := []tasks.Task{walk, feed, groom}
	petNames := map[string]string{"pet-1": "Max"}

	got := scheduling.Explain("Jordan", plan, incomplete, petNames)

	assert.Contains(t, got, "Schedule Summary for Jordan")
	assert.Contains(t, got, "Scheduled 2 out of 3 incomplete tasks")
	assert.Contains(t, got, "Total time: 40 minutes out of 45 minutes available")
	assert.Contains(t, got, "Time remaining: 5 minutes")
	assert.Contains(t, got, "Prioritization Strategy")
	assert.Contains(t, got, "1. Cat feeding (Max) - 10 min, Priority 5/5, walk")
	assert.Contains(t, got, "2. Morning walk (Max) - 30 min, Priority 5/5, walk")
	assert.Contains(t, got, "Tasks Not Scheduled (1)")
	assert.Contains(t, got, "Dog grooming (Max) - 60 min, Priority 2/5")
}

func TestExplain_NoSkippedSectionWhenEverythingFits(t *testing.T) {
	walk := task("walk", "Morning walk", 5, 30)

	plan := scheduling.BuildPlan(60, []tasks.Task{walk})
	got := scheduling.Explain("Jordan", plan, []tasks.Task{walk}, nil)

	assert.NotContains(t, got, "Tasks Not Scheduled")
}

func TestExplain_SkippedKeyedByIdentityNotFields(t *testing.T) {
	// dos tareas con campos idénticos pero identidad distinta: la que no
	// entró al plan tiene que aparecer como excluida
	a := task("id-a", "Walk", 3, 40)
	b := task("id-b", "Walk", 3, 40)

	plan := scheduling.BuildPlan(40, []tasks.Task{a, b})
	got := scheduling.Explain("Jordan", plan, []tasks.Task{a, b}, nil)

	assert.Contains(t, got, "Scheduled 1 out of 2 incomplete tasks")
	assert.Contains(t, got, "Tasks Not Scheduled (1)")
	// la sección de excluidas lista exactamente una tarea
	assert.Equal(t, 1, strings.Count(got, "- Walk (?)"))
}

func TestExplain_UnknownPetRendersPlaceholder(t *testing.T) {
	walk := task("walk", "Morning walk", 5, 30)

	plan := scheduling.BuildPlan(60, []tasks.Task{walk})
	got := scheduling.Explain("Jordan", plan, []tasks.Task{walk}, map[string]string{})

	assert.Contains(t, got, "Morning walk (?)")
}
