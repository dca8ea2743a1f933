package http

import (
	"log/slog"
	"os"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/config"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/middleware"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Invitation InvitationHandler
	Master     MasterHandler
	Instructor InstructorHandler
	Shift      ShiftHandler
	User       UserHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "snowschool"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimitByIP(middleware.LoginLimit))
				r.Route("/line", func(r chi.Router) {
					r.Get("/login", h.Auth.LoginWithLine)
					r.Get("/callback", h.Auth.OAuthCallbackLine)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verify(jwtService.JWTAuth(), middleware.TokenFromSessionCookie))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), middleware.TokenFromSessionCookie))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Manager and above
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleManager))

				r.Route("/invitations", func(r chi.Router) {
					r.Post("/", h.Invitation.Create)
					r.Get("/", h.Invitation.List)
					r.Delete("/{token}", h.Invitation.Deactivate)
				})

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
				r.Route("/certifications", func(r chi.Router) {
					r.Post("/", h.Master.CreateCertification)
					r.Put("/{id}", h.Master.UpdateCertification)
					r.Delete("/{id}", h.Master.DeleteCertification)
				})
				r.Route("/shift-types", func(r chi.Router) {
					r.Post("/", h.Master.CreateShiftType)
					r.Put("/{id}", h.Master.UpdateShiftType)
					r.Delete("/{id}", h.Master.DeleteShiftType)
				})

				r.Route("/instructors", func(r chi.Router) {
					r.Post("/", h.Instructor.Create)
					r.Put("/{id}", h.Instructor.Update)
					r.Post("/{id}/link", h.Instructor.LinkUser)
					r.Delete("/{id}", h.Instructor.Delete)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
					r.Post("/{id}/assignments", h.Shift.Assign)
					r.Delete("/{id}/assignments/{instructorId}", h.Shift.Unassign)
				})
			})

			// Any authenticated member can read
			r.Get("/departments", h.Master.ListDepartments)
			r.Get("/departments/{id}", h.Master.GetDepartment)
			r.Get("/certifications", h.Master.ListCertifications)
			r.Get("/certifications/{id}", h.Master.GetCertification)
			r.Get("/shift-types", h.Master.ListShiftTypes)
			r.Get("/shift-types/{id}", h.Master.GetShiftType)
			r.Get("/instructors", h.Instructor.List)
			r.Get("/instructors/{id}", h.Instructor.Get)
			r.Get("/shifts", h.Shift.List)
			r.Get("/shifts/{id}", h.Shift.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleAdmin))
				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Put("/{id}/role", h.User.UpdateRole)
					r.Put("/{id}/active", h.User.SetActive)
				})
			})
		})
	})
	return r
}
