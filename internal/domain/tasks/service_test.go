package tasks_test

import (
	"context"
	"testing"

	mem "pet-care-planner/internal/adapters/storage/memory"
	"pet-care-planner/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *tasks.Service {
	return tasks.NewService(mem.NewTasksRepo())
}

func validInput() tasks.CreateInput {
	return tasks.CreateInput{
		Name:            "Morning walk",
		DurationMinutes: 30,
		Priority:        5,
		Category:        tasks.CategoryWalk,
		PetID:           "pet-1",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, "owner-1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, tasks.FrequencyOnce, created.Frequency, "frequency defaults to once")
	assert.False(t, created.Completed)
	assert.Nil(t, created.ScheduledTime)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestService_Create_WithScheduledTime(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	in := validInput()
	in.ScheduledTime = "08:00"
	created, err := svc.Create(ctx, "owner-1", in)
	require.NoError(t, err)
	require.NotNil(t, created.ScheduledTime)
	assert.Equal(t, "08:00", created.ScheduledTime.String())
}

func TestService_Create_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	cases := []struct {
		name    string
		mutate  func(*tasks.CreateInput)
		wantErr error
	}{
		{"priority out of range", func(in *tasks.CreateInput) { in.Priority = 9 }, tasks.ErrInvalidPriority},
		{"non-positive duration", func(in *tasks.CreateInput) { in.DurationMinutes = 0 }, tasks.ErrInvalidDuration},
		{"bad scheduled time", func(in *tasks.CreateInput) { in.ScheduledTime = "8:00am" }, tasks.ErrInvalidScheduledTime},
		{"bad category", func(in *tasks.CreateInput) { in.Category = "nap" }, tasks.ErrInvalidCategory},
		{"bad frequency", func(in *tasks.CreateInput) { in.Frequency = "hourly" }, tasks.ErrInvalidFrequency},
		{"empty name", func(in *tasks.CreateInput) { in.Name = "   " }, tasks.ErrInvalidInput},
		{"missing pet", func(in *tasks.CreateInput) { in.PetID = "" }, tasks.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(ctx, "owner-1", in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// nada quedó registrado: la tarea inválida nunca se crea
	all, err := svc.ListByOwner(ctx, "owner-1", tasks.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_ListByOwner_Filters(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	walk := validInput()
	feed := validInput()
	feed.Name = "Cat feeding"
	feed.Category = tasks.CategoryFeed
	feed.PetID = "pet-2"

	created1, err := svc.Create(ctx, "owner-1", walk)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", feed)
	require.NoError(t, err)

	byPet, err := svc.ListByOwner(ctx, "owner-1", tasks.ListFilter{PetID: "pet-2"})
	require.NoError(t, err)
	require.Len(t, byPet, 1)
	assert.Equal(t, "Cat feeding", byPet[0].Name)

	byCategory, err := svc.ListByOwner(ctx, "owner-1", tasks.ListFilter{Category: tasks.CategoryWalk})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, created1.ID, byCategory[0].ID)

	otherOwner, err := svc.ListByOwner(ctx, "owner-2", tasks.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, otherOwner)
}

func TestService_ListByOwner_PreservesRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	names := []string{"c", "a", "b"}
	for _, n := range names {
		in := validInput()
		in.Name = n
		_, err := svc.Create(ctx, "owner-1", in)
		require.NoError(t, err)
	}

	all, err := svc.ListByOwner(ctx, "owner-1", tasks.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, n := range names {
		assert.Equal(t, n, all[i].Name)
	}
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, "owner-1", validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.Error(t, err)

	assert.Error(t, svc.Remove(ctx, created.ID), "double remove reports not found")
}
