package scheduling_test

import (
	"testing"

	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
)

func TestSortByTime(t *testing.T) {
	in := []tasks.Task{
		timedTask("afternoon", "Afternoon", 3, 30, "14:00"),
		timedTask("morning", "Morning", 3, 30, "08:00"),
		timedTask("evening", "Evening", 3, 30, "18:00"),
		task("untimed", "Unscheduled", 3, 30),
	}

	got := scheduling.SortByTime(in)

	assert.Equal(t, []string{"morning", "afternoon", "evening", "untimed"}, ids(got))
}

func TestSortByTime_StableWithinGroups(t *testing.T) {
	in := []tasks.Task{
		task("u1", "U1", 3, 30),
		timedTask("t1", "T1", 3, 30, "10:00"),
		task("u2", "U2", 3, 30),
		timedTask("t2", "T2", 3, 30, "10:00"),
	}

	got := scheduling.SortByTime(in)

	// empatadas en horario y sin hora conservan su orden relativo
	assert.Equal(t, []string{"t1", "t2", "u1", "u2"}, ids(got))
}

func TestSortByTime_EmptyInput(t *testing.T) {
	assert.Empty(t, scheduling.SortByTime(nil))
}
