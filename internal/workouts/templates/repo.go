package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/pkg"

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

const dayColumns = `id, type, name, is_active, created_at, updated_at`

func (r *Repo) AddDay(ctx context.Context, day DayTemplate) (_ *DayTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.addDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_day_template (type, name) VALUES ($1, $2) RETURNING `+dayColumns,
		day.Type, day.Name,
	)
	added, err := scanDay(row)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("day.id", added.ID))
	return added, nil
}

// GetDay returns an active day template together with its active exercises,
// ordered by exercise order.
func (r *Repo) GetDay(ctx context.Context, id int) (_ *DayTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+dayColumns+` FROM workout_day_template WHERE id = $1 AND is_active`,
		id,
	)
	day, err := scanDay(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
			wde.id, wde.workout_day_id, wde.exercise_id, wde.exercise_order, wde.number_of_sets, wde.is_active,
			e.id, e.name, e.muscle_group, e.image_url, e.description, e.is_active, e.created_at, e.updated_at
		FROM workout_day_exercise wde
			JOIN exercise e ON e.id = wde.exercise_id
		WHERE wde.workout_day_id = $1 AND wde.is_active AND e.is_active
		ORDER BY wde.exercise_order, wde.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query day exercises: %w", err)
	}
	defer rows.Close()

	day.Exercises = make([]DayExercise, 0)
	for rows.Next() {
		var de DayExercise
		var e exercises.Exercise
		if err := rows.Scan(
			&de.ID, &de.WorkoutDayID, &de.ExerciseID, &de.Order, &de.NumberOfSets, &de.IsActive,
			&e.ID, &e.Name, &e.MuscleGroup, &e.ImageURL, &e.Description, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		de.Exercise = &e
		day.Exercises = append(day.Exercises, de)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return day, nil
}

func (r *Repo) ListDays(ctx context.Context) (_ []DayTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.listDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+dayColumns+` FROM workout_day_template WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]DayTemplate, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *Repo) DeactivateDay(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.deactivateDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_day_template SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// AddDayExercise attaches an exercise to a day. A previously removed entry for
// the same exercise is re-activated with the new order and sets; an active one
// is a conflict.
func (r *Repo) AddDayExercise(ctx context.Context, de DayExercise) (_ *DayExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.addDayExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("day.id", de.WorkoutDayID),
		attribute.Int("exercise.id", de.ExerciseID),
	)

	var added DayExercise
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_day_exercise (workout_day_id, exercise_id, exercise_order, number_of_sets)
			VALUES ($1, $2, $3, $4)
		ON CONFLICT (workout_day_id, exercise_id) DO UPDATE
			SET exercise_order = EXCLUDED.exercise_order,
				number_of_sets = EXCLUDED.number_of_sets,
				is_active = TRUE,
				updated_at = now()
			WHERE workout_day_exercise.is_active = FALSE
		RETURNING id, workout_day_id, exercise_id, exercise_order, number_of_sets, is_active`,
		de.WorkoutDayID, de.ExerciseID, de.Order, de.NumberOfSets,
	).Scan(
		&added.ID, &added.WorkoutDayID, &added.ExerciseID, &added.Order, &added.NumberOfSets, &added.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayExerciseExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	return &added, nil
}

func (r *Repo) RemoveDayExercise(ctx context.Context, dayID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.removeDayExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("day.id", dayID),
		attribute.Int("exercise.id", exerciseID),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_day_exercise SET is_active = FALSE, updated_at = now()
			WHERE workout_day_id = $1 AND exercise_id = $2 AND is_active`,
		dayID, exerciseID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayExerciseNotFound
	}
	return nil
}

const weekColumns = `id, name, description, is_active, created_at, updated_at`

func (r *Repo) AddWeek(ctx context.Context, week WeekTemplate) (_ *WeekTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.addWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_week_template (name, description) VALUES ($1, $2) RETURNING `+weekColumns,
		week.Name, week.Description,
	)
	added, err := scanWeek(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrWeekExists
		}
		return nil, err
	}
	added.Days = make([]WeekDay, 0)
	span.SetAttributes(attribute.Int("week.id", added.ID))
	return added, nil
}

// GetWeek returns an active week template with its active days ordered by day order.
func (r *Repo) GetWeek(ctx context.Context, id int) (_ *WeekTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.getWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+weekColumns+` FROM workout_week_template WHERE id = $1 AND is_active`,
		id,
	)
	week, err := scanWeek(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}

	daysByWeek, err := r.weekDays(ctx, []int{week.ID})
	if err != nil {
		return nil, err
	}
	week.Days = daysByWeek[week.ID]
	if week.Days == nil {
		week.Days = make([]WeekDay, 0)
	}

	return week, nil
}

func (r *Repo) ListWeeks(ctx context.Context) (_ []WeekTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.listWeeks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+weekColumns+` FROM workout_week_template WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := make([]WeekTemplate, 0)
	var ids []int
	for rows.Next() {
		week, err := scanWeek(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		weeks = append(weeks, *week)
		ids = append(ids, week.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(ids) == 0 {
		return weeks, nil
	}

	daysByWeek, err := r.weekDays(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range weeks {
		weeks[i].Days = daysByWeek[weeks[i].ID]
		if weeks[i].Days == nil {
			weeks[i].Days = make([]WeekDay, 0)
		}
	}

	return weeks, nil
}

func (r *Repo) weekDays(ctx context.Context, weekIDs []int) (map[int][]WeekDay, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
			wwd.id, wwd.week_template_id, wwd.workout_day_id, wwd.day_order, wwd.is_active,
			d.id, d.type, d.name, d.is_active, d.created_at, d.updated_at
		FROM workout_week_day wwd
			JOIN workout_day_template d ON d.id = wwd.workout_day_id
		WHERE wwd.week_template_id = ANY($1) AND wwd.is_active AND d.is_active
		ORDER BY wwd.week_template_id, wwd.day_order`,
		weekIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query week days: %w", err)
	}
	defer rows.Close()

	daysByWeek := make(map[int][]WeekDay)
	for rows.Next() {
		var wd WeekDay
		var d DayTemplate
		if err := rows.Scan(
			&wd.ID, &wd.WeekTemplateID, &wd.WorkoutDayID, &wd.DayOrder, &wd.IsActive,
			&d.ID, &d.Type, &d.Name, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		wd.Day = &d
		daysByWeek[wd.WeekTemplateID] = append(daysByWeek[wd.WeekTemplateID], wd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return daysByWeek, nil
}

func (r *Repo) DeactivateWeek(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.deactivateWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_week_template SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWeekNotFound
	}
	return nil
}

// AddWeekDay places a day template at a day order of the week. A removed slot
// is re-activated, an active one is a conflict.
func (r *Repo) AddWeekDay(ctx context.Context, wd WeekDay) (_ *WeekDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.addWeekDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("week.id", wd.WeekTemplateID),
		attribute.Int("day.id", wd.WorkoutDayID),
		attribute.Int("day.order", wd.DayOrder),
	)

	var added WeekDay
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_week_day (week_template_id, workout_day_id, day_order)
			VALUES ($1, $2, $3)
		ON CONFLICT (week_template_id, day_order) DO UPDATE
			SET workout_day_id = EXCLUDED.workout_day_id,
				is_active = TRUE,
				updated_at = now()
			WHERE workout_week_day.is_active = FALSE
		RETURNING id, week_template_id, workout_day_id, day_order, is_active`,
		wd.WeekTemplateID, wd.WorkoutDayID, wd.DayOrder,
	).Scan(
		&added.ID, &added.WeekTemplateID, &added.WorkoutDayID, &added.DayOrder, &added.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeekDayExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWeekNotFound
		}
		return nil, err
	}

	return &added, nil
}

func (r *Repo) RemoveWeekDay(ctx context.Context, weekID, dayOrder int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.removeWeekDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("week.id", weekID),
		attribute.Int("day.order", dayOrder),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_week_day SET is_active = FALSE, updated_at = now()
			WHERE week_template_id = $1 AND day_order = $2 AND is_active`,
		weekID, dayOrder,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWeekDayNotFound
	}
	return nil
}

func scanDay(row pgx.Row) (*DayTemplate, error) {
	var d DayTemplate
	if err := row.Scan(&d.ID, &d.Type, &d.Name, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanWeek(row pgx.Row) (*WeekTemplate, error) {
	var w WeekTemplate
	if err := row.Scan(&w.ID, &w.Name, &w.Description, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
