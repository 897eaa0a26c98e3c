package tasks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name            string
	DurationMinutes int
	Priority        int
	Category        Category
	PetID           string

	// ScheduledTime en HH:MM; vacío = sin hora.
	ScheduledTime string
	// Frequency vacía = once.
	Frequency Frequency
	DueDate   *time.Time
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Task, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Task{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Task{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" {
		return Task{}, ErrInvalidInput
	}

	freq := in.Frequency
	if freq == "" {
		freq = FrequencyOnce
	}

	t := Task{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		PetID:           in.PetID,
		Name:            strings.TrimSpace(in.Name),
		DurationMinutes: in.DurationMinutes,
		Priority:        in.Priority,
		Category:        in.Category,
		Frequency:       freq,
		DueDate:         in.DueDate,
		CreatedAt:       s.now(),
	}

	if strings.TrimSpace(in.ScheduledTime) != "" {
		ct, err := ParseClockTime(in.ScheduledTime)
		if err != nil {
			return Task{}, err
		}
		t.ScheduledTime = &ct
	}

	if err := t.validate(); err != nil {
		return Task{}, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListFilter restringe el listado; los campos en cero no filtran.
type ListFilter struct {
	PetID      string
	Category   Category
	Incomplete bool
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string, f ListFilter) ([]Task, error) {
	all, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]Task, 0, len(all))
	for _, t := range all {
		if f.PetID != "" && t.PetID != f.PetID {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Incomplete && t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
