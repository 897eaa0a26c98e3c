package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recurringTask(freq Frequency, due *time.Time) Task {
	ct, _ := ParseClockTime("08:00")
	return Task{
		ID:              "t1",
		OwnerID:         "o1",
		PetID:           "p1",
		Name:            "Daily medication",
		DurationMinutes: 5,
		Priority:        5,
		Category:        CategoryMedication,
		ScheduledTime:   &ct,
		Frequency:       freq,
		DueDate:         due,
	}
}

func TestNextOccurrence_Offsets(t *testing.T) {
	due := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 23, 10, 15, 0, 0, time.UTC)

	cases := []struct {
		freq Frequency
		want time.Time
	}{
		{FrequencyDaily, due.AddDate(0, 0, 1)},
		{FrequencyWeekly, due.AddDate(0, 0, 7)},
		// "monthly" es un corrimiento fijo de 30 días, no un mes calendario
		{FrequencyMonthly, due.AddDate(0, 0, 30)},
	}

	for _, tc := range cases {
		t.Run(string(tc.freq), func(t *testing.T) {
			orig := recurringTask(tc.freq, &due)
			succ, err := orig.NextOccurrence(now)
			require.NoError(t, err)

			require.NotNil(t, succ.DueDate)
			assert.True(t, succ.DueDate.Equal(tc.want), "due date %s", succ.DueDate)

			// copia la tarea, identidad nueva, sin completar
			assert.NotEqual(t, orig.ID, succ.ID)
			assert.False(t, succ.Completed)
			assert.Equal(t, orig.Name, succ.Name)
			assert.Equal(t, orig.DurationMinutes, succ.DurationMinutes)
			assert.Equal(t, orig.Priority, succ.Priority)
			assert.Equal(t, orig.Category, succ.Category)
			assert.Equal(t, orig.PetID, succ.PetID)
			assert.Equal(t, orig.Frequency, succ.Frequency)
			require.NotNil(t, succ.ScheduledTime)
			assert.Equal(t, orig.ScheduledTime.Minutes(), succ.ScheduledTime.Minutes())
		})
	}
}

func TestNextOccurrence_WithoutDueDateStartsToday(t *testing.T) {
	now := time.Date(2026, 8, 23, 17, 42, 3, 0, time.UTC)

	succ, err := recurringTask(FrequencyDaily, nil).NextOccurrence(now)
	require.NoError(t, err)

	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, succ.DueDate)
	assert.True(t, succ.DueDate.Equal(want), "due date %s", succ.DueDate)
}

func TestNextOccurrence_OnceFails(t *testing.T) {
	_, err := recurringTask(FrequencyOnce, nil).NextOccurrence(time.Now())
	assert.ErrorIs(t, err, ErrNotRecurring)
}

func TestNextOccurrence_CompletedOriginalStaysCompleted(t *testing.T) {
	due := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	orig := recurringTask(FrequencyDaily, &due)
	orig.MarkComplete()

	succ, err := orig.NextOccurrence(time.Now())
	require.NoError(t, err)

	assert.True(t, orig.Completed)
	assert.False(t, succ.Completed)
}
