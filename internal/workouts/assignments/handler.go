package assignments

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleMyAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assignments.mine")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	a, err := handler.service.Current(ctx, session.UserID)
	if err != nil {
		log.Tracef("get assignment for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, a, http.StatusOK)
}

func (handler *Handler) HandleMyWeekInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assignments.weekInfo")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	progress, err := handler.service.WeekProgress(ctx, session.UserID)
	if err != nil {
		log.Tracef("get week info for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleRenewMyWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assignments.renew")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	// body is optional
	var req RenewRequest
	if r.ContentLength != 0 && r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("renew week, unmarshal json params: %s", err)
			pkg.WriteBadRequest(w, "invalid renew json")
			return
		}
	}

	renewed, err := handler.service.Renew(ctx, session.UserID, req.StartDate)
	if err != nil {
		log.Tracef("renew week for user %d: %s", session.UserID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, renewed, http.StatusCreated)
}

func (handler *Handler) HandleAssignWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assignments.assign")
	defer span.End()

	userID, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req AssignWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("assign week, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid assign week json")
		return
	}

	assigned, err := handler.service.Assign(ctx, userID, req)
	if err != nil {
		log.Tracef("assign week %d to user %d: %s", req.WeekTemplateID, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, assigned, http.StatusCreated)
}
