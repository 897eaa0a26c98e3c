package pets_test

import (
	"context"
	"testing"

	mem "pet-care-planner/internal/adapters/storage/memory"
	"pet-care-planner/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetsService_Create(t *testing.T) {
	ctx := context.Background()
	svc := pets.NewService(mem.NewPetsRepo())

	p, err := svc.Create(ctx, "owner-1", pets.CreateInput{
		Name:    "Max",
		Species: "dog",
		Age:     3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.NotNil(t, p.SpecialNeeds)
	assert.Empty(t, p.SpecialNeeds)
}

func TestPetsService_CreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := pets.NewService(mem.NewPetsRepo())

	cases := []struct {
		name    string
		ownerID string
		in      pets.CreateInput
	}{
		{"empty owner", "", pets.CreateInput{Name: "Max", Species: "dog", Age: 3}},
		{"empty name", "owner-1", pets.CreateInput{Name: " ", Species: "dog", Age: 3}},
		{"empty species", "owner-1", pets.CreateInput{Name: "Max", Species: "", Age: 3}},
		{"negative age", "owner-1", pets.CreateInput{Name: "Max", Species: "dog", Age: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.ownerID, tc.in)
			assert.ErrorIs(t, err, pets.ErrInvalidInput)
		})
	}
}

func TestPetsService_AddSpecialNeed(t *testing.T) {
	ctx := context.Background()
	svc := pets.NewService(mem.NewPetsRepo())

	p, err := svc.Create(ctx, "owner-1", pets.CreateInput{Name: "Luna", Species: "cat", Age: 5})
	require.NoError(t, err)

	p, err = svc.AddSpecialNeed(ctx, p.ID, "  joint medication ")
	require.NoError(t, err)
	assert.Equal(t, []string{"joint medication"}, p.SpecialNeeds)
	assert.True(t, p.HasSpecialNeed("joint medication"))

	// duplicado: no-op sin error
	p, err = svc.AddSpecialNeed(ctx, p.ID, "joint medication")
	require.NoError(t, err)
	assert.Len(t, p.SpecialNeeds, 1)

	_, err = svc.AddSpecialNeed(ctx, p.ID, "   ")
	assert.ErrorIs(t, err, pets.ErrInvalidInput)
}

func TestPetsService_ListByOwner(t *testing.T) {
	ctx := context.Background()
	svc := pets.NewService(mem.NewPetsRepo())

	_, err := svc.Create(ctx, "owner-1", pets.CreateInput{Name: "Max", Species: "dog", Age: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", pets.CreateInput{Name: "Luna", Species: "cat", Age: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-2", pets.CreateInput{Name: "Rex", Species: "dog", Age: 1})
	require.NoError(t, err)

	got, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "owner-1", p.OwnerID)
	}
}
