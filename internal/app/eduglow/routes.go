// Package eduglow собирает HTTP-приложение: зависимости, маршруты и сервер.
package eduglow

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/forgot"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/auth/reset"
	bookingcreate "github.com/magabrotheeeer/eduglow/internal/http/handlers/bookings/create"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/health"
	studentprofile "github.com/magabrotheeeer/eduglow/internal/http/handlers/student/profile"
	studenttrials "github.com/magabrotheeeer/eduglow/internal/http/handlers/student/trials"
	teacherbookings "github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/bookings"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/profileget"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/profileupdate"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/skilladd"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/skillremove"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/stats"
	teachertrials "github.com/magabrotheeeer/eduglow/internal/http/handlers/teacher/trials"
	trialcreate "github.com/magabrotheeeer/eduglow/internal/http/handlers/trials/create"
	"github.com/magabrotheeeer/eduglow/internal/http/handlers/tutors/list"
	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/http/sessioncookie"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/services/auth"
	"github.com/magabrotheeeer/eduglow/internal/services/bookings"
	"github.com/magabrotheeeer/eduglow/internal/services/directory"
	"github.com/magabrotheeeer/eduglow/internal/services/profile"
	"github.com/magabrotheeeer/eduglow/internal/services/trials"
)

// Dependencies сервисы и middleware, из которых строятся маршруты.
type Dependencies struct {
	Auth      *auth.AuthService
	Sessions  middlewarectx.SessionResolver
	Directory *directory.Service
	Bookings  *bookings.Service
	Trials    *trials.Service
	Profile   *profile.Service

	Cookie         sessioncookie.Cookie
	Limiter        *middlewarectx.IPLimiter
	Metrics        *middlewarectx.Metrics
	AllowedOrigins []string
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Dependencies) {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   deps.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		deps.Metrics.Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.LoadSession(logger, deps.Sessions, deps.Cookie.Name))

		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/auth/register", register.New(logger, deps.Auth).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, deps.Auth, deps.Cookie).ServeHTTP)
		r.Post("/auth/reset", reset.New(logger, deps.Auth).ServeHTTP)
		r.Get("/tutors", list.New(logger, deps.Directory).ServeHTTP)
		r.Post("/trials", trialcreate.New(logger, deps.Trials).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
			r.Post("/auth/login", login.New(logger, deps.Auth, deps.Cookie).ServeHTTP)
			r.Post("/auth/forgot", forgot.New(logger, deps.Auth).ServeHTTP)
		})

		r.With(middlewarectx.RequireSession("")).Get("/me", me.New(logger, deps.Auth).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireSession(models.RoleStudent))
			r.Post("/bookings", bookingcreate.New(logger, deps.Bookings).ServeHTTP)
			r.Get("/student/profile", studentprofile.New(logger, deps.Profile).ServeHTTP)
			r.Get("/student/trials", studenttrials.New(logger, deps.Trials).ServeHTTP)
		})

		r.Route("/teacher", func(r chi.Router) {
			r.Use(middlewarectx.RequireSession(models.RoleTeacher))
			r.Get("/bookings", teacherbookings.New(logger, deps.Bookings).ServeHTTP)
			r.Get("/trials", teachertrials.New(logger, deps.Trials).ServeHTTP)
			r.Get("/profile", profileget.New(logger, deps.Profile).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, deps.Profile).ServeHTTP)
			r.Post("/skills", skilladd.New(logger, deps.Profile).ServeHTTP)
			r.Delete("/skills", skillremove.New(logger, deps.Profile).ServeHTTP)
			r.Get("/stats", stats.New(logger, deps.Trials).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
