package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/job-portal/internal/application"
	"github.com/frahmantamala/job-portal/internal/auth"
	"github.com/frahmantamala/job-portal/internal/dashboard"
	"github.com/frahmantamala/job-portal/internal/job"
	"github.com/frahmantamala/job-portal/internal/transport/middleware"
	"github.com/frahmantamala/job-portal/internal/transport/swagger"
	"github.com/frahmantamala/job-portal/internal/user"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Job         *job.Handler
	Application *application.Handler
	Dashboard   *dashboard.Handler
}

// RegisterAllRoutes mounts the whole HTTP surface under /api/v1. Trailing
// slashes on the resource roots are kept for compatibility with existing
// clients of the previous deployment.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, roles *auth.RoleAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Registration and password reset are the unauthenticated write
		// endpoints: the reset link is consumed without a session, carrying
		// its own uid and token query parameters.
		r.Post("/people/register/", h.User.Register)
		r.Post("/password/reset-password/", h.Auth.ResetPassword)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Post("/password/forget-password/", h.Auth.ForgetPassword)

			pr.Group(func(sr chi.Router) {
				sr.Use(roles.RequireAccountAccess())
				sr.Get("/people/register/", h.User.ListUsers)
				sr.Get("/people/register/{id}", h.User.GetUser)
				sr.Patch("/people/register/{id}", h.User.UpdateUser)
				sr.Delete("/people/register/{id}", h.User.DeactivateUser)
				sr.Get("/people/register/{id}/profile", h.User.GetProfile)
				sr.Put("/people/register/{id}/profile", h.User.PutProfile)
			})

			pr.Route("/job", func(sr chi.Router) {
				sr.Get("/", h.Job.ListJobs)
				sr.Get("/{id}", h.Job.GetJob)

				sr.Group(func(mr chi.Router) {
					mr.Use(roles.RequireRecruiterOrStaff())
					mr.Post("/", h.Job.CreateJob)
					mr.Patch("/{id}", h.Job.UpdateJob)
					mr.Delete("/{id}", h.Job.DeleteJob)
				})
			})

			pr.Route("/application", func(sr chi.Router) {
				sr.Get("/", h.Application.ListApplications)
				sr.Get("/{id}", h.Application.GetApplication)

				sr.Group(func(cr chi.Router) {
					cr.Use(roles.RequireCandidate())
					cr.Post("/", h.Application.Apply)
				})

				sr.Group(func(mr chi.Router) {
					mr.Use(roles.RequireRecruiterOrStaff())
					mr.Patch("/{id}", h.Application.UpdateStatus)
				})
			})

			pr.Group(func(dr chi.Router) {
				dr.Use(roles.RequireRecruiterOrStaff())
				dr.Get("/recruiter-dashboard/", h.Dashboard.RecruiterStats)
			})
		})
	})
}
