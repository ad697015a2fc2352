package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// NewLogger builds the JSON logger in the ECS schema used for request logs.
func NewLogger(w io.Writer, app config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       app.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
		slog.String("env", app.Env),
	)
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.App.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).
				Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
				r.Get("/", h.Employee.List)
				r.Get("/departments", h.Employee.ListDepartments)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
				r.Get("/today", h.Attendance.Today)
				r.Get("/recent", h.Attendance.Recent)
				r.Get("/calendar", h.Attendance.Calendar)
				r.Get("/stats", h.Attendance.MonthlyStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/punch-in", h.Attendance.PunchIn)
					r.Post("/punch-out", h.Attendance.PunchOut)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeaveViewOwn))
				r.Get("/", h.Leave.ListRequests)
				r.Get("/{id}", h.Leave.GetRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", h.Leave.CreateRequest)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})
		})
	})
	return r
}
