package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
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
	Name                 string
	AvailableTimeMinutes int
	Preferences          map[string]any
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Owner{}, ErrInvalidInput
	}
	if in.AvailableTimeMinutes < 0 {
		return Owner{}, ErrInvalidInput
	}

	prefs := map[string]any{}
	for k, v := range in.Preferences {
		prefs[k] = v
	}

	now := s.now()
	o := Owner{
		ID:                   uuid.NewString(),
		Name:                 strings.TrimSpace(in.Name),
		AvailableTimeMinutes: in.AvailableTimeMinutes,
		Preferences:          prefs,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	// nil = no tocar.
	AvailableTimeMinutes *int
	// Preferences se mezcla sobre las existentes (merge, no reemplazo).
	Preferences map[string]any
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.AvailableTimeMinutes != nil {
		if *in.AvailableTimeMinutes < 0 {
			return Owner{}, ErrInvalidInput
		}
		o.AvailableTimeMinutes = *in.AvailableTimeMinutes
	}

	if len(in.Preferences) > 0 {
		if o.Preferences == nil {
			o.Preferences = map[string]any{}
		}
		for k, v := range in.Preferences {
			o.Preferences[k] = v
		}
	}

	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}
