package tracking

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"
)

type DeleteSetResponse struct {
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

func (handler *Handler) HandleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.toggleCompletion")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("toggle completion, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid toggle json")
		return
	}

	res, err := handler.service.ToggleCompletion(ctx, userID, req)
	if err != nil {
		log.Tracef("toggle completion for user %d: %s", userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, res, status)
}

func (handler *Handler) HandleMyLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.myLogs")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID

	date, err := pkg.ParseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		pkg.WriteErrorResponse(w, err)
		return
	}

	completed := true
	if completedStr := r.URL.Query().Get("completed"); completedStr != "" {
		completed, err = strconv.ParseBool(completedStr)
		if err != nil {
			pkg.WriteBadRequest(w, "invalid completed param")
			return
		}
	}

	logs, err := handler.service.MyLogs(ctx, userID, ListParams{
		Date:      date,
		Completed: completed,
	})
	if err != nil {
		log.Errorf("list logs for user %d: %s", userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (handler *Handler) HandleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.weeklySummary")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID

	weekStart, err := pkg.ParseOptionalDate(r.URL.Query().Get("week_start"))
	if err != nil {
		pkg.WriteErrorResponse(w, err)
		return
	}

	summary, err := handler.service.WeeklySummary(ctx, userID, weekStart)
	if err != nil {
		log.Errorf("weekly summary for user %d: %s", userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.get")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	l, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		log.Tracef("get log %d for user %d: %s", id, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

func (handler *Handler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.updateNotes")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update notes, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid notes json")
		return
	}

	l, err := handler.service.UpdateNotes(ctx, userID, id, req.Notes)
	if err != nil {
		log.Tracef("update notes of log %d for user %d: %s", id, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, l, http.StatusOK)
}

func (handler *Handler) HandleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.listSets")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}

	sets, err := handler.service.ListSets(ctx, userID, id)
	if err != nil {
		log.Tracef("list sets of log %d for user %d: %s", id, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, sets, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.addSet")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	id, ok := pkg.PathIntVar(w, r, "id")
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "invalid content type")
		return
	}

	var req AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		pkg.WriteBadRequest(w, "invalid set json")
		return
	}

	added, err := handler.service.AddSet(ctx, userID, id, req)
	if err != nil {
		log.Tracef("add set to log %d for user %d: %s", id, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.deleteSet")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	userID := session.UserID
	setID, ok := pkg.PathIntVar(w, r, "setId")
	if !ok {
		return
	}

	if err := handler.service.DeleteSet(ctx, userID, setID); err != nil {
		log.Tracef("delete set %d for user %d: %s", setID, userID, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	pkg.WriteJSON(w, DeleteSetResponse{DeletedID: setID}, http.StatusOK)
}
