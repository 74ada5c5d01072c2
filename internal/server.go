package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/config"
	"github.com/2beens/gymweeks/internal/db"
	"github.com/2beens/gymweeks/internal/middleware"
	"github.com/2beens/gymweeks/internal/misc"
	"github.com/2beens/gymweeks/internal/telemetry/metrics"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/users"
	"github.com/2beens/gymweeks/internal/workouts/assignments"
	"github.com/2beens/gymweeks/internal/workouts/custom"
	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/internal/workouts/tracking"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config    *config.Config
	dbPool    *pgxpool.Pool
	weekCache *templates.WeekCache

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	Secrets                 *config.Secrets
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         secrets.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, err
		}
		log.Debugln("db schema migrated")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymweeks-backend", rdb)
	if err != nil {
		return nil, err
	}

	if secrets.JWTSecret == "" {
		return nil, errors.New("jwt secret not set")
	}

	authService := auth.NewAuthService(cfg.SessionTTL(), secrets.JWTSecret, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	if secrets.AdminEmail != "" && secrets.AdminPasswordHash != "" {
		created, err := users.NewRepo(dbPool).EnsureAdmin(ctx, secrets.AdminEmail, secrets.AdminPasswordHash)
		if err != nil {
			log.Errorf("ensure admin user [%s]: %s", secrets.AdminEmail, err)
		} else if created {
			log.Infof("admin user [%s] created", secrets.AdminEmail)
		}
	} else {
		log.Warnln("admin credentials not set, skipping admin bootstrap")
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		weekCache:   templates.NewWeekCache(cfg.TemplatesCacheSizeMB, cfg.TemplatesCacheTTLSeconds),
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(cfg.SessionTTL(), secrets.JWTSecret, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	usersHandler := users.NewHandler(users.NewRepo(s.dbPool), s.authService, s.metricsManager)
	usersHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	exercisesRepo := exercises.NewRepo(s.dbPool)
	exercisesHandler := exercises.NewHandler(exercisesRepo)
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", middleware.AdminOnly(exercisesHandler.HandleAdd)).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", middleware.AdminOnly(exercisesHandler.HandleUpdate)).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", middleware.AdminOnly(exercisesHandler.HandleDelete)).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	templatesService := templates.NewService(templates.NewRepo(s.dbPool), exercisesRepo, s.weekCache)
	templatesHandler := templates.NewHandler(templatesService)
	r.HandleFunc("/workout-days", templatesHandler.HandleListDays).Methods("GET", "OPTIONS").Name("list-days")
	r.HandleFunc("/workout-days", middleware.AdminOnly(templatesHandler.HandleAddDay)).Methods("POST", "OPTIONS").Name("new-day")
	r.HandleFunc("/workout-days/{id}", templatesHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("get-day")
	r.HandleFunc("/workout-days/{id}", middleware.AdminOnly(templatesHandler.HandleDeleteDay)).Methods("DELETE", "OPTIONS").Name("delete-day")
	r.HandleFunc("/workout-days/{id}/exercises", middleware.AdminOnly(templatesHandler.HandleAddDayExercise)).Methods("POST", "OPTIONS").Name("new-day-exercise")
	r.HandleFunc("/workout-days/{id}/exercises/{exerciseId}", middleware.AdminOnly(templatesHandler.HandleRemoveDayExercise)).Methods("DELETE", "OPTIONS").Name("remove-day-exercise")
	r.HandleFunc("/workout-weeks", templatesHandler.HandleListWeeks).Methods("GET", "OPTIONS").Name("list-weeks")
	r.HandleFunc("/workout-weeks", middleware.AdminOnly(templatesHandler.HandleAddWeek)).Methods("POST", "OPTIONS").Name("new-week")
	r.HandleFunc("/workout-weeks/{id}", templatesHandler.HandleGetWeek).Methods("GET", "OPTIONS").Name("get-week")
	r.HandleFunc("/workout-weeks/{id}", middleware.AdminOnly(templatesHandler.HandleDeleteWeek)).Methods("DELETE", "OPTIONS").Name("delete-week")
	r.HandleFunc("/workout-weeks/{id}/days", middleware.AdminOnly(templatesHandler.HandleAddWeekDay)).Methods("POST", "OPTIONS").Name("new-week-day")
	r.HandleFunc("/workout-weeks/{id}/days/{dayOrder}", middleware.AdminOnly(templatesHandler.HandleRemoveWeekDay)).Methods("DELETE", "OPTIONS").Name("remove-week-day")

	assignmentsHandler := assignments.NewHandler(
		assignments.NewService(assignments.NewRepo(s.dbPool), s.metricsManager),
	)
	r.HandleFunc("/my-assignment", assignmentsHandler.HandleMyAssignment).Methods("GET", "OPTIONS").Name("my-assignment")
	r.HandleFunc("/my-week-info", assignmentsHandler.HandleMyWeekInfo).Methods("GET", "OPTIONS").Name("my-week-info")
	r.HandleFunc("/renew-my-week", assignmentsHandler.HandleRenewMyWeek).Methods("POST", "OPTIONS").Name("renew-my-week")
	r.HandleFunc("/users/{id}/assign-week", middleware.AdminOnly(assignmentsHandler.HandleAssignWeek)).Methods("POST", "OPTIONS").Name("assign-week")

	customHandler := custom.NewHandler(custom.NewService(custom.NewRepo(s.dbPool), templatesService))
	r.HandleFunc("/my-custom-days", customHandler.HandleListDays).Methods("GET", "OPTIONS").Name("list-custom-days")
	r.HandleFunc("/my-custom-days", customHandler.HandleSetDay).Methods("POST", "OPTIONS").Name("set-custom-day")
	r.HandleFunc("/my-custom-days/{dayOrder}", customHandler.HandleRemoveDay).Methods("DELETE", "OPTIONS").Name("remove-custom-day")
	r.HandleFunc("/my-custom-exercises", customHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-custom-exercises")
	r.HandleFunc("/my-custom-exercises", customHandler.HandleSetExercise).Methods("POST", "OPTIONS").Name("set-custom-exercise")
	r.HandleFunc("/my-custom-exercises/{id}", customHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-custom-exercise")

	trackingHandler := tracking.NewHandler(
		tracking.NewService(tracking.NewRepo(s.dbPool), templatesService, s.metricsManager),
	)
	r.HandleFunc("/workouts/toggle_completion", trackingHandler.HandleToggleCompletion).Methods("POST", "OPTIONS").Name("toggle-completion")
	r.HandleFunc("/workouts/my_logs", trackingHandler.HandleMyLogs).Methods("GET", "OPTIONS").Name("my-logs")
	r.HandleFunc("/workouts/weekly_summary", trackingHandler.HandleWeeklySummary).Methods("GET", "OPTIONS").Name("weekly-summary")
	r.HandleFunc("/workouts/sets/{setId:[0-9]+}", trackingHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
	r.HandleFunc("/workouts/{id:[0-9]+}", trackingHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-log")
	r.HandleFunc("/workouts/{id:[0-9]+}/notes", trackingHandler.HandleUpdateNotes).Methods("PUT", "OPTIONS").Name("update-log-notes")
	r.HandleFunc("/workouts/{id:[0-9]+}/sets", trackingHandler.HandleListSets).Methods("GET", "OPTIONS").Name("list-sets")
	r.HandleFunc("/workouts/{id:[0-9]+}/sets", trackingHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-set")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, then release what they depend on
	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("http server: %w", err))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> graceful shutdown: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
