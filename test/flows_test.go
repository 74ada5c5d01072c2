//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymweeks/internal/users"
	"github.com/2beens/gymweeks/internal/workouts/assignments"
	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/internal/workouts/tracking"
	"github.com/2beens/gymweeks/pkg"
)

func (s *IntegrationTestSuite) TestMisc() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.do(ctx, "GET", "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body)

	status, body = s.do(ctx, "GET", "/version", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "test-version-info", string(body))
}

func (s *IntegrationTestSuite) TestAuthFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	require.NoError(t, s.redisDataCleanup(ctx))

	token, user := s.registerAndLogin(ctx)
	assert.Equal(t, "USER", user.Role.String())

	var me users.User
	s.doJSON(ctx, "GET", "/me", token, nil, http.StatusOK, &me)
	assert.Equal(t, user.ID, me.ID)

	// duplicate email
	status, _ := s.do(ctx, "POST", "/a/register", "", users.RegisterRequest{
		Email:    user.Email,
		Username: "again",
		Password: "long-enough-pass",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(ctx, "POST", "/a/login", "", users.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, status)

	// regular users can't see admin routes
	status, _ = s.do(ctx, "GET", "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(ctx, "GET", "/my-assignment", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(ctx, "POST", "/a/logout", token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(ctx, "GET", "/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutWeekFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	require.NoError(t, s.redisDataCleanup(ctx))

	adminToken := s.adminLogin(ctx)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	// catalog
	var squat, bench exercises.Exercise
	s.doJSON(ctx, "POST", "/exercises", adminToken, exercises.Exercise{
		Name: "Squat " + suffix, MuscleGroup: exercises.MuscleGroupQuadriceps,
	}, http.StatusCreated, &squat)
	s.doJSON(ctx, "POST", "/exercises", adminToken, exercises.Exercise{
		Name: "Bench " + suffix, MuscleGroup: exercises.MuscleGroupChest,
	}, http.StatusCreated, &bench)

	var legDay templates.DayTemplate
	s.doJSON(ctx, "POST", "/workout-days", adminToken, templates.DayTemplate{
		Type: templates.DayTypeLeg, Name: "Legs " + suffix,
	}, http.StatusCreated, &legDay)

	s.doJSON(ctx, "POST", fmt.Sprintf("/workout-days/%d/exercises", legDay.ID), adminToken,
		templates.AddDayExerciseRequest{ExerciseID: squat.ID, Order: 1}, http.StatusCreated, nil)

	// chest is not trained on a leg day
	status, body := s.do(ctx, "POST", fmt.Sprintf("/workout-days/%d/exercises", legDay.ID), adminToken,
		templates.AddDayExerciseRequest{ExerciseID: bench.ID, Order: 2})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.True(t, strings.Contains(string(body), "not allowed"), string(body))

	var week templates.WeekTemplate
	s.doJSON(ctx, "POST", "/workout-weeks", adminToken, templates.WeekTemplate{
		Name: "Week " + suffix,
	}, http.StatusCreated, &week)
	s.doJSON(ctx, "POST", fmt.Sprintf("/workout-weeks/%d/days", week.ID), adminToken,
		templates.AddWeekDayRequest{WorkoutDayID: legDay.ID, DayOrder: 1}, http.StatusCreated, nil)
	status, _ = s.do(ctx, "POST", fmt.Sprintf("/workout-weeks/%d/days", week.ID), adminToken,
		templates.AddWeekDayRequest{WorkoutDayID: legDay.ID, DayOrder: 1})
	assert.Equal(t, http.StatusConflict, status)

	var gotWeek templates.WeekTemplate
	s.doJSON(ctx, "GET", fmt.Sprintf("/workout-weeks/%d", week.ID), adminToken, nil, http.StatusOK, &gotWeek)
	require.Len(t, gotWeek.Days, 1)
	assert.Equal(t, legDay.ID, gotWeek.Days[0].WorkoutDayID)

	// the user follows the week
	userToken, user := s.registerAndLogin(ctx)

	status, _ = s.do(ctx, "GET", "/my-assignment", userToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	today := pkg.NewDate(time.Now())
	var assigned assignments.Assignment
	s.doJSON(ctx, "POST", fmt.Sprintf("/users/%d/assign-week", user.ID), adminToken,
		assignments.AssignWeekRequest{WeekTemplateID: week.ID, StartDate: &today}, http.StatusCreated, &assigned)
	assert.Equal(t, today.String(), assigned.StartDate.String())

	var progress assignments.WeekProgress
	s.doJSON(ctx, "GET", "/my-week-info", userToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 1, progress.TotalDays)
	assert.Equal(t, 0, progress.CompletedCount)
	assert.True(t, progress.IsCurrentWeek)

	var toggled tracking.ToggleResponse
	s.doJSON(ctx, "POST", "/workouts/toggle_completion", userToken,
		tracking.ToggleRequest{WorkoutDayID: legDay.ID, DayOrder: 1}, http.StatusCreated, &toggled)
	assert.True(t, toggled.Created)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.WorkoutDay)
	require.Len(t, toggled.WorkoutDay.Exercises, 1)

	s.doJSON(ctx, "GET", "/my-week-info", userToken, nil, http.StatusOK, &progress)
	assert.Equal(t, 1, progress.CompletedCount)
	assert.Equal(t, float64(100), progress.CompletionRate)

	weight := 100.0
	var set tracking.SetLog
	s.doJSON(ctx, "POST", fmt.Sprintf("/workouts/%d/sets", toggled.ID), userToken,
		tracking.AddSetRequest{ExerciseID: squat.ID, SetNumber: 1, Reps: 5, Weight: &weight}, http.StatusCreated, &set)
	status, _ = s.do(ctx, "POST", fmt.Sprintf("/workouts/%d/sets", toggled.ID), userToken,
		tracking.AddSetRequest{ExerciseID: squat.ID, SetNumber: 1, Reps: 5})
	assert.Equal(t, http.StatusConflict, status)

	// toggling again undoes the completion
	s.doJSON(ctx, "POST", "/workouts/toggle_completion", userToken,
		tracking.ToggleRequest{WorkoutDayID: legDay.ID, DayOrder: 1}, http.StatusOK, &toggled)
	assert.False(t, toggled.Created)
	assert.False(t, toggled.Completed)
	require.Len(t, toggled.Sets, 1)

	var summary tracking.WeeklySummary
	s.doJSON(ctx, "GET", "/workouts/weekly_summary?week_start="+pkg.MondayOf(time.Now()).Format("2006-01-02"), userToken, nil, http.StatusOK, &summary)
	assert.Equal(t, 1, summary.TotalWorkouts)
	assert.Equal(t, 0, summary.CompletedWorkouts)

	// other users don't see the log
	otherToken, _ := s.registerAndLogin(ctx)
	status, _ = s.do(ctx, "GET", fmt.Sprintf("/workouts/%d", toggled.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var renewed assignments.Assignment
	s.doJSON(ctx, "POST", "/renew-my-week", userToken, nil, http.StatusCreated, &renewed)
	assert.Equal(t, pkg.FormatDate(pkg.AddDays(today.Time, 7)), renewed.StartDate.String())

	var activeAssignments int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM user_week_assignment WHERE user_id = $1 AND is_active`, user.ID,
	).Scan(&activeAssignments))
	assert.Equal(t, 1, activeAssignments)

	var stats users.Stats
	s.doJSON(ctx, "GET", "/users/stats", adminToken, nil, http.StatusOK, &stats)
	assert.GreaterOrEqual(t, stats.UsersWithAssignment, 1)
	assert.Equal(t, stats.TotalUsers, stats.UsersWithAssignment+stats.UsersWithoutAssignment)
}

func (s *IntegrationTestSuite) TestLoginRateLimiting() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	require.NoError(t, s.redisDataCleanup(ctx))
	defer func() {
		require.NoError(t, s.redisDataCleanup(ctx))
	}()

	// simulate a brute force attack
	loginReq := users.LoginRequest{Email: "nobody@gymweeks.test", Password: "guessing-123"}
	for i := 1; i <= testLoginLimitPerMinute+5; i++ {
		status, _ := s.do(ctx, "POST", "/a/login", "", loginReq)
		if i <= testLoginLimitPerMinute {
			require.Equal(t, http.StatusUnauthorized, status, "iteration: %d", i)
		} else {
			require.Equal(t, http.StatusTooManyRequests, status, "iteration: %d", i)
		}
	}
}
