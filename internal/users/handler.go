package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/middleware"
	"github.com/2beens/gymweeks/internal/telemetry/metrics"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	ListWithAssignment(ctx context.Context) ([]UserWithAssignment, error)
	Stats(ctx context.Context) (*Stats, error)
}

type authService interface {
	Login(ctx context.Context, userID int, role auth.Role, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	repo           usersRepo
	authService    authService
	metricsManager *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	authService authService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginsAllowedPerMin int,
) {
	mainRouter.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	mainRouter.HandleFunc("/users", middleware.AdminOnly(handler.HandleList)).Methods("GET", "OPTIONS").Name("users-list")
	mainRouter.HandleFunc("/users/stats", middleware.AdminOnly(handler.HandleStats)).Methods("GET", "OPTIONS").Name("users-stats")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/register", handler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	loginSubrouter.
		HandleFunc("/login", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.HandleLogout).
		Methods("POST", "OPTIONS").Name("logout")

	// register, login and logout are rate limited to make guessing passwords expensive
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginsAllowedPerMin, handler.metricsManager))
	loginSubrouter.Use(middleware.Cors())
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "expected application/json")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteBadRequest(w, "invalid request body")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		pkg.WriteErrorResponse(w, err)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	added, err := handler.repo.Add(ctx, User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         auth.RoleUser,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Errorf("register user [%s]: %s", req.Email, err)
		}
		span.SetStatus(codes.Error, err.Error())
		pkg.WriteErrorResponse(w, err)
		return
	}

	span.SetAttributes(attribute.Int("user.id", added.ID))
	log.Debugf("new user registered: %d", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteBadRequest(w, "expected application/json")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" {
		pkg.WriteBadRequest(w, "error, email empty")
		return
	}
	if req.Password == "" {
		pkg.WriteBadRequest(w, "error, password empty")
		return
	}

	user, err := handler.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("login, get user [%s]: %s", req.Email, err)
		pkg.WriteErrorResponse(w, err)
		return
	}
	if user == nil || !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("failed login attempt for: %s", req.Email)
		handler.metricsManager.CounterLogins.WithLabelValues("failure").Inc()
		span.SetStatus(codes.Error, "wrong credentials")
		pkg.WriteJSON(w, pkg.ErrorResponse{Error: "wrong credentials"}, http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.Login(ctx, user.ID, user.Role, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("success").Inc()
	span.SetAttributes(attribute.Int("user.id", user.ID))
	log.Tracef("login success: %d", user.ID)
	pkg.WriteJSON(w, LoginResponse{Token: token, User: *user}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := middleware.BearerToken(r)
	if authToken == "" {
		pkg.WriteJSON(w, pkg.ErrorResponse{Error: "no can do"}, http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		pkg.WriteJSON(w, pkg.ErrorResponse{Error: "no can do"}, http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		pkg.WriteJSON(w, pkg.ErrorResponse{Error: "no can do"}, http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	user, err := handler.repo.Get(ctx, session.UserID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.list")
	defer span.End()

	list, err := handler.repo.ListWithAssignment(ctx)
	if err != nil {
		log.Errorf("list users: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	span.SetAttributes(attribute.Int("users.count", len(list)))
	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.stats")
	defer span.End()

	stats, err := handler.repo.Stats(ctx)
	if err != nil {
		log.Errorf("users stats: %s", err)
		pkg.WriteErrorResponse(w, err)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}
