package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/config"
	appHTTP "github.com/giu-hrms/hrms-backend-go/internal/handler/http"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/cron"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/oauth"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/giu-hrms/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/giu-hrms/hrms-backend-go/internal/service/dashboard"
	organizationService "github.com/giu-hrms/hrms-backend-go/internal/service/organization"
	performanceService "github.com/giu-hrms/hrms-backend-go/internal/service/performance"
	trainingService "github.com/giu-hrms/hrms-backend-go/internal/service/training"
	userService "github.com/giu-hrms/hrms-backend-go/internal/service/user"
	workforceService "github.com/giu-hrms/hrms-backend-go/internal/service/workforce"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	universityRepo := postgresql.NewUniversityRepository(db)
	facultyRepo := postgresql.NewFacultyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	programRepo := postgresql.NewProgramRepository(db)
	cycleRepo := postgresql.NewCycleRepository(db)
	appraisalRepo := postgresql.NewAppraisalRepository(db)
	scoreRepo := postgresql.NewScoreRepository(db)
	transactor := postgresql.NewTransactor(db)

	hub := sse.NewHub()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Info("Google sign-in disabled: no client credentials configured")
	}

	authService := serviceAuth.NewAuthService(userRepo, JWTRepository, JWTService, transactor)
	userSvc := userService.NewUserService(userRepo, hub)
	organizationSvc := organizationService.NewOrganizationService(universityRepo, facultyRepo, departmentRepo, hub)
	workforceSvc := workforceService.NewWorkforceService(employeeRepo, jobRepo, assignmentRepo, contractRepo, transactor, hub)
	trainingSvc := trainingService.NewTrainingService(programRepo, transactor, hub)
	performanceSvc := performanceService.NewPerformanceService(cycleRepo, appraisalRepo, scoreRepo, transactor, hub)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, jobRepo, programRepo, appraisalRepo, departmentRepo, cycleRepo)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL, cfg.App.Env == "production"),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewEventHandler(JWTService, hub),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewOrganizationHandler(organizationSvc),
		appHTTP.NewWorkforceHandler(workforceSvc),
		appHTTP.NewTrainingHandler(trainingSvc),
		appHTTP.NewPerformanceHandler(performanceSvc),
	)

	scheduler := cron.NewScheduler()
	cron.NewLifecycleJobs(contractRepo, programRepo, hub).RegisterJobs(scheduler, cfg.Cron.ContractExpiryInterval, cfg.Cron.TrainingStatusInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
