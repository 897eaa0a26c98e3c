package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-care-planner/internal/domain/tasks"
)

type TasksRepo struct {
	db *sql.DB
}

func NewTasksRepo(db *sql.DB) *TasksRepo {
	return &TasksRepo{db: db}
}

func (r *TasksRepo) Create(ctx context.Context, t tasks.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, owner_id, pet_id,
			name, duration_minutes, priority, category, completed,
			scheduled_time, frequency, due_date,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		t.ID,
		t.OwnerID,
		t.PetID,
		t.Name,
		t.DurationMinutes,
		t.Priority,
		string(t.Category),
		t.Completed,
		toNullClock(t.ScheduledTime),
		string(t.Frequency),
		toNullDate(t.DueDate),
		t.CreatedAt,
	)
	return err
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id,
			name, duration_minutes, priority, category, completed,
			scheduled_time, frequency, due_date,
			created_at
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return tasks.Task{}, ErrNotFound
	}
	return t, err
}

func (r *TasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]tasks.Task, error) {
	// seq es un BIGSERIAL de alta: conserva el orden de registro, que la
	// priorización usa como último desempate.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id,
			name, duration_minutes, priority, category, completed,
			scheduled_time, frequency, due_date,
			created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY seq ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *TasksRepo) Update(ctx context.Context, t tasks.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = $2,
			duration_minutes = $3,
			priority = $4,
			category = $5,
			completed = $6,
			scheduled_time = $7,
			frequency = $8,
			due_date = $9
		WHERE id = $1
	`,
		t.ID,
		t.Name,
		t.DurationMinutes,
		t.Priority,
		string(t.Category),
		t.Completed,
		toNullClock(t.ScheduledTime),
		string(t.Frequency),
		toNullDate(t.DueDate),
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

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (tasks.Task, error) {
	var t tasks.Task
	var category, frequency string
	var clock sql.NullString
	var due sql.NullTime

	if err := scan(
		&t.ID,
		&t.OwnerID,
		&t.PetID,
		&t.Name,
		&t.DurationMinutes,
		&t.Priority,
		&category,
		&t.Completed,
		&clock,
		&frequency,
		&due,
		&t.CreatedAt,
	); err != nil {
		return tasks.Task{}, err
	}

	t.Category = tasks.Category(category)
	t.Frequency = tasks.Frequency(frequency)

	if clock.Valid {
		ct, err := tasks.ParseClockTime(clock.String)
		if err != nil {
			return tasks.Task{}, err
		}
		t.ScheduledTime = &ct
	}
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}

	return t, nil
}

// scheduled_time se guarda como TEXT HH:MM; NULL = sin hora.
func toNullClock(c *tasks.ClockTime) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: c.String(), Valid: true}
}

// due_date es DATE; lo pasamos como NullTime para simplificar.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
