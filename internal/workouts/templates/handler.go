package templates

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"
)

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func isJSON(r *http.Request) bool {
	return r.Header.Get("Content-Type") == "application/json"
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.listDays")
	defer span.End()

	days, err := handler.service.ListDays(ctx)
	if err != nil {
		log.Errorf("failed to list workout days: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, days, http.StatusOK)
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.getDay")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	day, err := handler.service.GetDay(ctx, id)
	if err != nil {
		log.Tracef("failed to get workout day %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, day, http.StatusOK)
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.addDay")
	defer span.End()

	if !isJSON(r) {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var day DayTemplate
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		log.Tracef("new workout day, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid workout day json")
		return
	}

	added, err := handler.service.AddDay(ctx, day)
	if err != nil {
		log.Errorf("failed to add workout day [%s]: %s", day.Name, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	log.Debugf("new workout day added: %d [%s]", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.deleteDay")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeactivateDay(ctx, id); err != nil {
		log.Errorf("failed to delete workout day %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddDayExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.addDayExercise")
	defer span.End()

	dayID, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	if !isJSON(r) {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req AddDayExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add day exercise, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid day exercise json")
		return
	}

	added, err := handler.service.AddExerciseToDay(ctx, dayID, req)
	if err != nil {
		log.Tracef("failed to add exercise %d to day %d: %s", req.ExerciseID, dayID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleRemoveDayExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.removeDayExercise")
	defer span.End()

	dayID, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	exerciseID, ok := pkg.PathIntVar(w, r, "exerciseId")
	if !ok {
		return
	}

	if err := handler.service.RemoveExerciseFromDay(ctx, dayID, exerciseID); err != nil {
		log.Tracef("failed to remove exercise %d from day %d: %s", exerciseID, dayID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: exerciseID}, http.StatusOK)
}

func (handler *Handler) HandleListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.listWeeks")
	defer span.End()

	weeks, err := handler.service.ListWeeks(ctx)
	if err != nil {
		log.Errorf("failed to list workout weeks: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, weeks, http.StatusOK)
}

func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.getWeek")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	week, err := handler.service.GetWeek(ctx, id)
	if err != nil {
		log.Tracef("failed to get workout week %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, week, http.StatusOK)
}

func (handler *Handler) HandleAddWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.addWeek")
	defer span.End()

	if !isJSON(r) {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var week WeekTemplate
	if err := json.NewDecoder(r.Body).Decode(&week); err != nil {
		log.Tracef("new workout week, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid workout week json")
		return
	}

	added, err := handler.service.AddWeek(ctx, week)
	if err != nil {
		log.Errorf("failed to add workout week [%s]: %s", week.Name, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	log.Debugf("new workout week added: %d [%s]", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.deleteWeek")
	defer span.End()

	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeactivateWeek(ctx, id); err != nil {
		log.Errorf("failed to delete workout week %d: %s", id, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddWeekDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.addWeekDay")
	defer span.End()

	weekID, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	if !isJSON(r) {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req AddWeekDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add week day, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid week day json")
		return
	}

	added, err := handler.service.AddDayToWeek(ctx, weekID, req)
	if err != nil {
		log.Tracef("failed to add day %d to week %d: %s", req.WorkoutDayID, weekID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleRemoveWeekDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.removeWeekDay")
	defer span.End()

	weekID, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	dayOrder, ok := pkg.PathIntVar(w, r, "dayOrder")
	if !ok {
		return
	}

	if err := handler.service.RemoveDayFromWeek(ctx, weekID, dayOrder); err != nil {
		log.Tracef("failed to remove day order %d from week %d: %s", dayOrder, weekID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{DeletedID: dayOrder}, http.StatusOK)
}
