package custom

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"
)

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.listDays")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	days, err := handler.service.ListDays(ctx, session.UserID)
	if err != nil {
		log.Errorf("list custom days for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, days, http.StatusOK)
}

func (handler *Handler) HandleSetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.setDay")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req SetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set custom day, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid custom day json")
		return
	}

	cd, err := handler.service.SetDay(ctx, session.UserID, req)
	if err != nil {
		log.Tracef("set custom day for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, cd, http.StatusOK)
}

func (handler *Handler) HandleRemoveDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.removeDay")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	dayOrder, ok := pkg.PathIntVar(w, r, "dayOrder")
	if !ok {
		return
	}

	if err := handler.service.RemoveDay(ctx, session.UserID, dayOrder); err != nil {
		log.Tracef("remove custom day %d for user %d: %s", dayOrder, session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{Deleted: dayOrder}, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.listExercises")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	configs, err := handler.service.ListExercises(ctx, session.UserID)
	if err != nil {
		log.Errorf("list custom exercises for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, configs, http.StatusOK)
}

func (handler *Handler) HandleSetExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.setExercise")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req SetExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set custom exercise, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid custom exercise json")
		return
	}

	c, err := handler.service.SetExercise(ctx, session.UserID, req)
	if err != nil {
		log.Tracef("set custom exercise for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, c, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.custom.removeExercise")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.RemoveExercise(ctx, session.UserID, id); err != nil {
		log.Tracef("remove custom exercise %d for user %d: %s", id, session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteResponse{Deleted: id}, http.StatusOK)
}
