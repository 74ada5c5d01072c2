package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	MuscleGroup     MuscleGroup
	IncludeInactive bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const exerciseColumns = `id, name, muscle_group, image_url, description, is_active, created_at, updated_at`

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, muscle_group, image_url, description)
			VALUES ($1, $2, $3, $4)
		RETURNING `+exerciseColumns,
		exercise.Name, exercise.MuscleGroup, exercise.ImageURL, exercise.Description,
	)
	added, err := scanExercise(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercise.id", added.ID))
	return added, nil
}

func (r *Repo) Update(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	row := r.db.QueryRow(
		ctx,
		`UPDATE exercise
			SET name = $1, muscle_group = $2, image_url = $3, description = $4, updated_at = now()
			WHERE id = $5 AND is_active
		RETURNING `+exerciseColumns,
		exercise.Name, exercise.MuscleGroup, exercise.ImageURL, exercise.Description, exercise.ID,
	)
	updated, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	return updated, nil
}

// Deactivate soft-deletes the exercise.
func (r *Repo) Deactivate(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// Get returns an active exercise.
func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE id = $1 AND is_active`,
		id,
	)
	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup.String()))
	span.SetAttributes(attribute.Bool("include_inactive", params.IncludeInactive))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise
			WHERE ($1::text = '' OR muscle_group = $1)
			AND ($2::boolean OR is_active)
		ORDER BY muscle_group, name`,
		params.MuscleGroup, params.IncludeInactive,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	if err := row.Scan(
		&e.ID, &e.Name, &e.MuscleGroup, &e.ImageURL, &e.Description,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
