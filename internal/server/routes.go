package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumematch/internal/db"
	"resumematch/internal/handlers"
	"resumematch/internal/match"
	"resumematch/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, scorer *match.Scorer) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)
	if s.Cfg.OIDCEnabled() {
		// Resolve the session user on every request so templates can show
		// the signed-in state.
		s.App.Use(authMiddleware.OptionalAuth)
	}

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(database, s.Cfg)
	jobHandler := handlers.NewJobHandler(database, s.Cfg)
	matchHandler := handlers.NewMatchHandler(database, s.Cfg, scorer)
	adminHandler := handlers.NewAdminHandler(database, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)

	// Public routes
	s.App.Get("/", jobHandler.Index)
	s.App.Get("/resumes/new", resumeHandler.New)
	s.App.Post("/resumes", resumeHandler.Create)
	s.App.Get("/resumes/:id/matches", matchHandler.Show)
	s.App.Get("/uploads/:filename", resumeHandler.Download)
	s.App.Get("/jobs/new", jobHandler.New)
	s.App.Post("/jobs", jobHandler.Create)

	// Admin view - OIDC-gated when configured, open otherwise
	if s.Cfg.OIDCEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}

		s.App.Get("/login", authHandler.LoginPage)
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)

		s.App.Get("/admin", authMiddleware.RequireAdmin, adminHandler.Index)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to protect the admin view.")
		s.App.Get("/admin", adminHandler.Index)
	}

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
