package custom

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/templates"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListDays(ctx context.Context, userID int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.listDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			cd.id, cd.user_id, cd.workout_day_id, cd.day_order, cd.is_active, cd.created_at, cd.updated_at,
			d.type, d.name
		FROM user_custom_workout_day cd
			JOIN workout_day_template d ON d.id = cd.workout_day_id
		WHERE cd.user_id = $1 AND cd.is_active
		ORDER BY cd.day_order`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		var cd Day
		day := templates.DayTemplate{}
		if err := rows.Scan(
			&cd.ID, &cd.UserID, &cd.WorkoutDayID, &cd.DayOrder, &cd.IsActive, &cd.CreatedAt, &cd.UpdatedAt,
			&day.Type, &day.Name,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		day.ID = cd.WorkoutDayID
		cd.WorkoutDay = &day
		days = append(days, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// UpsertDay sets the day template the user trains on the given day order.
func (r *Repo) UpsertDay(ctx context.Context, userID, workoutDayID, dayOrder int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.upsertDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("day.id", workoutDayID),
		attribute.Int("day.order", dayOrder),
	)

	var cd Day
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_custom_workout_day (user_id, workout_day_id, day_order)
			VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day_order) DO UPDATE
			SET workout_day_id = EXCLUDED.workout_day_id,
				is_active = TRUE,
				updated_at = now()
		RETURNING id, user_id, workout_day_id, day_order, is_active, created_at, updated_at`,
		userID, workoutDayID, dayOrder,
	).Scan(
		&cd.ID, &cd.UserID, &cd.WorkoutDayID, &cd.DayOrder, &cd.IsActive, &cd.CreatedAt, &cd.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cd, nil
}

func (r *Repo) RemoveDay(ctx context.Context, userID, dayOrder int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.removeDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("day.order", dayOrder),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_custom_workout_day SET is_active = FALSE, updated_at = now()
			WHERE user_id = $1 AND day_order = $2 AND is_active`,
		userID, dayOrder,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomDayNotFound
	}
	return nil
}

const exerciseConfigColumns = `id, user_id, workout_day_exercise_id, number_of_sets, is_active, created_at, updated_at`

func (r *Repo) ListExercises(ctx context.Context, userID int) (_ []ExerciseConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseConfigColumns+` FROM user_custom_exercise_config
		WHERE user_id = $1 AND is_active
		ORDER BY workout_day_exercise_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]ExerciseConfig, 0)
	for rows.Next() {
		c, err := scanExerciseConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		configs = append(configs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return configs, nil
}

// UpsertExercise stores the user's set count for an active day exercise entry.
func (r *Repo) UpsertExercise(ctx context.Context, userID, workoutDayExerciseID, numberOfSets int) (_ *ExerciseConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.upsertExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("day_exercise.id", workoutDayExerciseID),
	)

	c, err := scanExerciseConfig(r.db.QueryRow(
		ctx,
		`INSERT INTO user_custom_exercise_config (user_id, workout_day_exercise_id, number_of_sets)
			SELECT $1, wde.id, $3
			FROM workout_day_exercise wde
			WHERE wde.id = $2 AND wde.is_active
		ON CONFLICT (user_id, workout_day_exercise_id) DO UPDATE
			SET number_of_sets = EXCLUDED.number_of_sets,
				is_active = TRUE,
				updated_at = now()
		RETURNING `+exerciseConfigColumns,
		userID, workoutDayExerciseID, numberOfSets,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, templates.ErrDayExerciseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *Repo) RemoveExercise(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.custom.removeExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_custom_exercise_config SET is_active = FALSE, updated_at = now()
			WHERE id = $1 AND user_id = $2 AND is_active`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomExerciseNotFound
	}
	return nil
}

func scanExerciseConfig(row pgx.Row) (*ExerciseConfig, error) {
	var c ExerciseConfig
	if err := row.Scan(
		&c.ID, &c.UserID, &c.WorkoutDayExerciseID, &c.NumberOfSets, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
