package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/chat"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/health"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/middleware"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	CORS           middleware.CORSConfig
	RateLimitRPS   int
	RateLimitBurst int
	RequestTimeout time.Duration
}

// NewRouter assembles the console's full route tree.
func NewRouter(api *API, guard *Guard, chatHandler *chat.Handler, healthHandler *health.Handler, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("console"))
	r.Use(middleware.RequestLogger(logger))

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public surface: no session required, no session ever at risk.
		r.Group(func(r chi.Router) {
			r.With(guard.PublicOnly).Post("/auth/login", api.Login)
			r.Post("/auth/logout", api.Logout)

			r.Get("/public/events", api.PublicEvents)
			r.Get("/public/sermons", api.PublicSermons)
			r.Get("/public/schedule", api.PublicSchedule)
			r.Get("/public/settings", api.PublicSettings)

			r.Get("/bible/{version}/{book}/{chapter}", api.BibleChapter)

			r.Post("/chat", chatHandler.Respond)
			r.Get("/chat/ws", chatHandler.ServeWS)
		})

		// Console surface: every route below requires a live session.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireSession)

			r.Get("/me", api.Me)
			r.Get("/profile", api.GetProfile)
			r.Put("/profile", api.UpdateProfile)

			r.Route("/members", func(r chi.Router) {
				r.Get("/", api.ListMembers)
				r.Post("/", api.CreateMember)
				r.Get("/{id}", api.GetMember)
				r.Put("/{id}", api.UpdateMember)
				r.Delete("/{id}", api.DeleteMember)
				r.Put("/{id}/sectors", api.ReplaceMemberSectors)
				r.Put("/{id}/ministries", api.ReplaceMemberMinistries)
			})

			r.Route("/sectors", func(r chi.Router) {
				r.Get("/", api.ListSectors)
				r.Post("/", api.CreateSector)
				r.Get("/{id}", api.GetSector)
				r.Put("/{id}", api.UpdateSector)
				r.Delete("/{id}", api.DeleteSector)
			})

			r.Route("/ministries", func(r chi.Router) {
				r.Get("/", api.ListMinistries)
				r.Post("/", api.CreateMinistry)
				r.Get("/{id}", api.GetMinistry)
				r.Put("/{id}", api.UpdateMinistry)
				r.Delete("/{id}", api.DeleteMinistry)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", api.ListEvents)
				r.Post("/", api.CreateEvent)
				r.Get("/{id}", api.GetEvent)
				r.Put("/{id}", api.UpdateEvent)
				r.Delete("/{id}", api.DeleteEvent)
			})

			r.Route("/service-days", func(r chi.Router) {
				r.Get("/", api.ListServiceDays)
				r.Post("/", api.CreateServiceDay)
				r.Put("/{id}", api.UpdateServiceDay)
				r.Delete("/{id}", api.DeleteServiceDay)
			})

			r.Route("/sermons", func(r chi.Router) {
				r.Get("/", api.ListSermons)
				r.Post("/", api.CreateSermon)
				r.Get("/{id}", api.GetSermon)
				r.Put("/{id}", api.UpdateSermon)
				r.Delete("/{id}", api.DeleteSermon)
			})

			r.Route("/ebd/students", func(r chi.Router) {
				r.Get("/", api.ListEBDStudents)
				r.Post("/", api.CreateEBDStudent)
				r.Get("/{id}", api.GetEBDStudent)
				r.Put("/{id}", api.UpdateEBDStudent)
				r.Delete("/{id}", api.DeleteEBDStudent)
			})

			r.Route("/patrimonies", func(r chi.Router) {
				r.Get("/", api.ListPatrimonies)
				r.Post("/", api.CreatePatrimony)
				r.Get("/{id}", api.GetPatrimony)
				r.Put("/{id}", api.UpdatePatrimony)
				r.Delete("/{id}", api.DeletePatrimony)
			})

			r.Route("/movements", func(r chi.Router) {
				r.Get("/", api.ListMovements)
				r.Post("/", api.CreateMovement)
			})

			r.Get("/settings", api.GetSettings)
			r.Put("/settings", api.UpdateSettings)

			r.Get("/inventory", api.InventorySummary)
		})
	})

	return r
}
