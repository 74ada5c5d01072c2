package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context, params ListParams) ([]Exercise, error)
	Update(ctx context.Context, exercise Exercise) (*Exercise, error)
	Deactivate(ctx context.Context, id int) error
}

type DeleteExerciseResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid exercise json")
		return
	}

	if err := exercise.Validate(); err != nil {
		pkg.WriteErrorResponse(w, err)
		return
	}

	added, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add new exercise [%s]: %s", exercise.Name, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	log.Debugf("new exercise added: %d [%s]", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	e, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Tracef("failed to get exercise %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	muscleGroup := MuscleGroup(r.URL.Query().Get("muscle_group"))
	if muscleGroup != "" && !muscleGroup.IsValid() {
		pkg.WriteBadRequest(w, "invalid muscle group")
		return
	}

	exercises, err := handler.repo.List(ctx, ListParams{MuscleGroup: muscleGroup})
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update exercise, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid exercise json")
		return
	}
	exercise.ID = id

	if err := exercise.Validate(); err != nil {
		pkg.WriteErrorResponse(w, err)
		return
	}

	updated, err := handler.repo.Update(ctx, exercise)
	if err != nil {
		log.Errorf("failed to update exercise %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.Deactivate(ctx, id); err != nil {
		log.Errorf("failed to delete exercise %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, DeleteExerciseResponse{DeletedID: id}, http.StatusOK)
}
