package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/giu-hrms/hrms-backend-go/internal/config"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/middleware"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// resource is the handler set of one CRUD table.
type resource struct {
	list, get, create, update, remove http.HandlerFunc
}

// mount registers reads for every authenticated role and writes behind
// records.manage. PUT is accepted as an alias of PATCH.
func (res resource) mount(r chi.Router) {
	r.Get("/", res.list)
	r.Get("/{id}", res.get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(user.PermissionRecordsManage))
		r.Post("/", res.create)
		r.Patch("/{id}", res.update)
		r.Put("/{id}", res.update)
		r.Delete("/{id}", res.remove)
	})
}

func NewRouter(
	app config.AppConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	eventHandler EventHandler,
	dashboardHandler DashboardHandler,
	organizationHandler OrganizationHandler,
	workforceHandler WorkforceHandler,
	trainingHandler TrainingHandler,
	performanceHandler PerformanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "giu-hrms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
			r.Post("/sign-out", authHandler.SignOut)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Route("/oauth/google", func(r chi.Router) {
				r.Get("/", authHandler.LoginWithGoogle)
				r.Get("/callback", authHandler.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Get("/me", authHandler.Me)
			})
		})

		// EventSource cannot send headers, so the stream carries its own token.
		r.Get("/events", eventHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/events/token", eventHandler.StreamToken)
			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", userHandler.ListUsers)
				r.Put("/{id}/role", userHandler.UpdateRole)
			})

			r.Route("/universities", resource{
				organizationHandler.ListUniversities,
				organizationHandler.GetUniversity,
				organizationHandler.CreateUniversity,
				organizationHandler.UpdateUniversity,
				organizationHandler.DeleteUniversity,
			}.mount)
			r.Route("/faculties", resource{
				organizationHandler.ListFaculties,
				organizationHandler.GetFaculty,
				organizationHandler.CreateFaculty,
				organizationHandler.UpdateFaculty,
				organizationHandler.DeleteFaculty,
			}.mount)
			r.Route("/departments", resource{
				organizationHandler.ListDepartments,
				organizationHandler.GetDepartment,
				organizationHandler.CreateDepartment,
				organizationHandler.UpdateDepartment,
				organizationHandler.DeleteDepartment,
			}.mount)

			r.Route("/employees", resource{
				workforceHandler.ListEmployees,
				workforceHandler.GetEmployee,
				workforceHandler.CreateEmployee,
				workforceHandler.UpdateEmployee,
				workforceHandler.DeleteEmployee,
			}.mount)
			r.Route("/jobs", resource{
				workforceHandler.ListJobs,
				workforceHandler.GetJob,
				workforceHandler.CreateJob,
				workforceHandler.UpdateJob,
				workforceHandler.DeleteJob,
			}.mount)
			r.Route("/job-assignments", resource{
				workforceHandler.ListAssignments,
				workforceHandler.GetAssignment,
				workforceHandler.CreateAssignment,
				workforceHandler.UpdateAssignment,
				workforceHandler.DeleteAssignment,
			}.mount)
			r.Route("/contracts", resource{
				workforceHandler.ListContracts,
				workforceHandler.GetContract,
				workforceHandler.CreateContract,
				workforceHandler.UpdateContract,
				workforceHandler.DeleteContract,
			}.mount)

			r.Route("/training-programs", resource{
				trainingHandler.ListPrograms,
				trainingHandler.GetProgram,
				trainingHandler.CreateProgram,
				trainingHandler.UpdateProgram,
				trainingHandler.DeleteProgram,
			}.mount)

			r.Route("/performance-cycles", resource{
				performanceHandler.ListCycles,
				performanceHandler.GetCycle,
				performanceHandler.CreateCycle,
				performanceHandler.UpdateCycle,
				performanceHandler.DeleteCycle,
			}.mount)
			r.Route("/appraisals", resource{
				performanceHandler.ListAppraisals,
				performanceHandler.GetAppraisal,
				performanceHandler.CreateAppraisal,
				performanceHandler.UpdateAppraisal,
				performanceHandler.DeleteAppraisal,
			}.mount)
			r.Route("/kpi-scores", func(r chi.Router) {
				r.Route("/scorecards", func(r chi.Router) {
					r.Get("/", performanceHandler.ListScorecards)
					r.Get("/export", performanceHandler.ExportScorecards)
					r.Get("/{employeeID}", performanceHandler.GetScorecard)
					r.Get("/{employeeID}/pdf", performanceHandler.ExportScorecardPDF)
				})
				resource{
					performanceHandler.ListScores,
					performanceHandler.GetScore,
					performanceHandler.CreateScore,
					performanceHandler.UpdateScore,
					performanceHandler.DeleteScore,
				}.mount(r)
			})
		})
	})
	return r
}
