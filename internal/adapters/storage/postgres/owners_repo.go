package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"pet-care-planner/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	prefs, err := json.Marshal(o.Preferences)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id, name, available_time_minutes, preferences,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		o.ID,
		o.Name,
		o.AvailableTimeMinutes,
		prefs,
		o.CreatedAt,
		o.UpdatedAt,
	)
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, available_time_minutes, preferences, created_at, updated_at
		FROM owners
		WHERE id = $1
	`, id)

	var o owners.Owner
	var prefs []byte
	if err := row.Scan(
		&o.ID,
		&o.Name,
		&o.AvailableTimeMinutes,
		&prefs,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, ErrNotFound
		}
		return owners.Owner{}, err
	}

	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &o.Preferences); err != nil {
			return owners.Owner{}, err
		}
	}
	if o.Preferences == nil {
		o.Preferences = map[string]any{}
	}

	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	prefs, err := json.Marshal(o.Preferences)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET name = $2,
			available_time_minutes = $3,
			preferences = $4,
			updated_at = $5
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.AvailableTimeMinutes,
		prefs,
		o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
