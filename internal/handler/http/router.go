package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth           AuthHandler
	Employee       EmployeeHandler
	Shift          ShiftHandler
	Schedule       ScheduleHandler
	Unavailability UnavailabilityHandler
	Request        RequestHandler
	Claim          ClaimHandler
	Dashboard      DashboardHandler
}

func NewRouter(jwtService jwt.Service, frontendURL, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwt.TokenFromCookie, jwtauth.TokenFromHeader))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdateMe)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwt.TokenFromCookie, jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Get("/{id}", h.Schedule.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Schedule.Create)
					r.Post("/bulk", h.Schedule.BulkCreate)
					r.Get("/export", h.Schedule.Export)
					r.Put("/{id}", h.Schedule.Update)
					r.Delete("/{id}", h.Schedule.Delete)
				})
			})

			r.Route("/open-shifts", func(r chi.Router) {
				r.Get("/", h.Schedule.ListOpen)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/{id}/request", h.Request.RequestOpenShift)
				})
			})

			r.Route("/unavailabilities", func(r chi.Router) {
				r.Get("/", h.Unavailability.List)
				r.Post("/", h.Unavailability.Create)
				r.Get("/{id}", h.Unavailability.Get)
				r.Put("/{id}", h.Unavailability.Update)
				r.Delete("/{id}", h.Unavailability.Delete)
			})

			r.Route("/employee-requests", func(r chi.Router) {
				r.Get("/", h.Request.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", h.Request.Submit)
					r.Post("/{id}/swap-response", h.Request.SwapResponse)
				})
			})

			r.Route("/open-shift-requests", func(r chi.Router) {
				r.Get("/", h.Claim.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", h.Claim.Submit)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Claim.Update)
				})
			})

			r.Get("/dashboard", h.Dashboard.Stats)

			// Admin surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Post("/employees/setup-credentials", h.Employee.SetupCredentials)
				r.Put("/schedules/{id}/reassign", h.Schedule.Reassign)
				r.Post("/shift-offers", h.Request.OfferShift)
				r.Post("/employee-requests/{requestId}/{action}", h.Request.Resolve)
				r.Post("/open-shift-requests/{id}/{action}", h.Claim.Resolve)
			})
		})
	})

	return r
}
