package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/assignments"
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

const userColumns = `id, email, username, first_name, last_name, role, is_active, created_at, password_hash`

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := scanUser(r.db.QueryRow(
		ctx,
		`INSERT INTO app_user (email, username, password_hash, first_name, last_name, role)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.Email, user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Role,
	))
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", added.ID))
	return added, nil
}

// GetByEmail returns an active user, password hash included.
func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM app_user WHERE email = $1 AND is_active`,
		email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	u, err := scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM app_user WHERE id = $1 AND is_active`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListWithAssignment returns active users, each with the active assignment if there is one.
func (r *Repo) ListWithAssignment(ctx context.Context) (_ []UserWithAssignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listWithAssignment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			u.id, u.email, u.username, u.first_name, u.last_name, u.role, u.is_active, u.created_at,
			uwa.id, uwa.week_template_id, wwt.name, uwa.start_date, uwa.created_at
		FROM app_user u
			LEFT JOIN user_week_assignment uwa ON uwa.user_id = u.id AND uwa.is_active
			LEFT JOIN workout_week_template wwt ON wwt.id = uwa.week_template_id
		WHERE u.is_active
		ORDER BY u.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]UserWithAssignment, 0)
	for rows.Next() {
		var u UserWithAssignment
		var (
			assignmentID        *int
			weekTemplateID      *int
			weekTemplateName    *string
			startDate           pkg.Date
			assignmentCreatedAt *time.Time
		)
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt,
			&assignmentID, &weekTemplateID, &weekTemplateName, &startDate, &assignmentCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if assignmentID != nil {
			u.CurrentAssignment = &assignments.Assignment{
				ID:             *assignmentID,
				UserID:         u.ID,
				WeekTemplateID: *weekTemplateID,
				StartDate:      startDate,
				IsActive:       true,
			}
			if weekTemplateName != nil {
				u.CurrentAssignment.WeekTemplateName = *weekTemplateName
			}
			if assignmentCreatedAt != nil {
				u.CurrentAssignment.CreatedAt = *assignmentCreatedAt
			}
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repo) Stats(ctx context.Context) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats Stats
	if err := r.db.QueryRow(
		ctx,
		`SELECT
			count(*),
			count(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM user_week_assignment uwa WHERE uwa.user_id = u.id AND uwa.is_active
			))
		FROM app_user u
		WHERE u.is_active`,
	).Scan(&stats.TotalUsers, &stats.UsersWithAssignment); err != nil {
		return nil, err
	}
	stats.UsersWithoutAssignment = stats.TotalUsers - stats.UsersWithAssignment
	return &stats, nil
}

// EnsureAdmin creates the admin account unless a user with that email exists.
func (r *Repo) EnsureAdmin(ctx context.Context, email, passwordHash string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.ensureAdmin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO app_user (email, username, password_hash, role)
			VALUES ($1, 'admin', $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		email, passwordHash, auth.RoleAdmin,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
