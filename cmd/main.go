package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/workload-planner/config"
	"github.com/yakoovad/workload-planner/internal/api"
	"github.com/yakoovad/workload-planner/internal/auth"
	"github.com/yakoovad/workload-planner/internal/db"
	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
	"github.com/yakoovad/workload-planner/internal/service"
	"github.com/yakoovad/workload-planner/pkg/logger"
	"go.uber.org/zap"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting application", zap.String("version", version))

	pool, err := newPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	log.Info("database connection established")

	migrateCtx, cancel := context.WithTimeout(ctx, cfg.Postgres.MigrateTimeout)
	err = db.Migrate(migrateCtx, pool)
	cancel()
	if err != nil {
		log.Fatal("failed to apply migrations", zap.Error(err))
	}

	location, err := cfg.Planning.Location()
	if err != nil {
		log.Fatal("invalid planning timezone", zap.Error(err))
	}

	transactor := db.NewPgxTransactor(pool)

	orgRepo := repository.NewPgxOrganizationRepository(pool)
	personRepo := repository.NewPgxPersonRepository(pool)
	teamRepo := repository.NewPgxTeamRepository(pool)
	membershipRepo := repository.NewPgxMembershipRepository(pool)
	taskRepo := repository.NewPgxTaskRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	workload := service.NewWorkloadService().WithPersonRepo(personRepo).WithMembershipRepo(membershipRepo).WithTeamRepo(teamRepo).WithTaskRepo(taskRepo).WithLocation(location)
	team := service.NewTeamService(transactor).WithTeamRepo(teamRepo).WithPersonRepo(personRepo).WithMembershipRepo(membershipRepo)
	person := service.NewPersonService(transactor).WithPersonRepo(personRepo).WithOrganizationRepo(orgRepo)
	task := service.NewTaskService().WithTaskRepo(taskRepo).WithPersonRepo(personRepo)
	authService := service.NewAuthService(tokens).WithPersonRepo(personRepo)

	if cfg.Bootstrap.Enabled() {
		if serr := person.Bootstrap(logger.WithLogger(ctx, log), cfg.Bootstrap.Organization, &model.NewPerson{
			Name:            cfg.Bootstrap.AdminName,
			Email:           cfg.Bootstrap.AdminEmail,
			Password:        cfg.Bootstrap.AdminPassword,
			WeeklyHours:     40,
			WorkloadPercent: 100,
		}); serr != nil {
			log.Fatal("failed to bootstrap organization", zap.String("error", serr.Message))
		}
	}

	healthChecker, err := api.NewHealthChecker(version, health.Config{
		Name:    "postgres",
		Timeout: 2 * time.Second,
		Check: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
	})
	if err != nil {
		log.Fatal("failed to create health checker", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true

	handler := api.NewHandler(log).
		WithWorkloadService(workload).
		WithTeamService(team).
		WithPersonService(person).
		WithTaskService(task).
		WithAuthService(authService).
		WithSessions(tokens, cfg.Auth.CookieName).
		WithRequestTimeout(cfg.HTTP.RequestTimeout).
		WithHealthChecker(healthChecker)

	handler.RegisterRoutes(e)

	go func() {
		log.Info("server starting", zap.String("addr", cfg.ServerAddr()))
		if err := e.Start(cfg.ServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
}

func newPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "parse postgres config")
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}
	return pool, nil
}
