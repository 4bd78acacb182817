// Package server exposes the web surface: the HTML pages, the JSON API for
// authentication and plan generation, and the export endpoints.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/auth"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/metrics"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/planner"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/profile"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PlanGenerator produces a meal plan from a household submission.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, sub profile.Submission) (*planner.Plan, error)
}

// Server wires the HTTP surface to the planner and the auth services.
type Server struct {
	cfg      *config.Config
	planner  PlanGenerator
	identity auth.Client
	users    auth.UserStore
	sessions *auth.Sessions
	rec      *metrics.Recorder

	engine     *gin.Engine
	httpServer *http.Server
	now        func() time.Time
}

// New creates the server and registers all routes.
func New(cfg *config.Config, planGen PlanGenerator, identity auth.Client, users auth.UserStore, sessions *auth.Sessions, rec *metrics.Recorder) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Requested-With"}
	engine.Use(cors.New(corsConfig))

	engine.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	s := &Server{
		cfg:      cfg,
		planner:  planGen,
		identity: identity,
		users:    users,
		sessions: sessions,
		rec:      rec,
		engine:   engine,
		now:      time.Now,
	}

	s.httpServer = &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     engine,
		ReadTimeout: 30 * time.Second,
		// Plan generation holds the response open for the provider call.
		WriteTimeout: 5 * time.Minute,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Pages
	s.engine.GET("/", s.handleIndexPage)
	s.engine.GET("/forgot-password", s.handleForgotPasswordPage)
	s.engine.GET("/reset-password/:code", s.handleResetPasswordPage)
	s.engine.GET("/dashboard", s.requireSessionPage, s.handleDashboardPage)

	// Public API
	api := s.engine.Group("/api/v1")
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)
	api.POST("/password-reset", s.handlePasswordReset)
	api.POST("/password-reset/confirm", s.handlePasswordResetConfirm)

	// Session-guarded API
	guarded := api.Group("", s.requireSessionAPI)
	guarded.GET("/me", s.handleMe)
	guarded.POST("/plan", s.handleGeneratePlan)
	guarded.POST("/plan/export", s.handleExportPlan)
	guarded.POST("/plan/clipboard", s.handleClipboardPlan)

	// Operational endpoints
	s.engine.GET("/health", s.handleHealth)
	if s.rec != nil {
		s.engine.GET("/metrics", gin.WrapH(s.rec.Handler()))
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Starting Fuel & Conquer server on %s", s.cfg.ListenAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Stopping Fuel & Conquer server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
