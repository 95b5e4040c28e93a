package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/grachmannico95/casedesk-be/internal/config"
	"github.com/grachmannico95/casedesk-be/internal/handler"
	"github.com/grachmannico95/casedesk-be/internal/middleware"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Case   *handler.CaseHandler
	Import *handler.ImportHandler
	Health *handler.HealthHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	auth     middleware.Authenticator
	handlers Handlers
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	auth middleware.Authenticator,
	handlers Handlers,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		auth:     auth,
		handlers: handlers,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	origins := s.cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:  origins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderTraceID},
		ExposeHeaders: []string{middleware.HeaderTraceID, echo.HeaderContentDisposition},
	}))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	requireAuth := middleware.RequireAuth(s.auth)
	h := s.handlers

	api := s.echo.Group("/api")
	api.GET("/health", h.Health.Check)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me, requireAuth)

	cases := api.Group("/cases", requireAuth)
	cases.GET("", h.Case.List)
	cases.POST("", h.Case.Create)
	cases.GET("/stats", h.Case.Stats)
	cases.POST("/import", h.Case.Import)
	cases.GET("/:id", h.Case.Get)
	cases.GET("/:id/activity", h.Case.Activity)
	cases.PATCH("/:id", h.Case.Update)
	cases.PUT("/:id", h.Case.Update)
	cases.DELETE("/:id", h.Case.Delete)

	imports := api.Group("/imports", requireAuth)
	imports.POST("", h.Import.Upload)
	imports.GET("/template", h.Import.Template)
	imports.GET("/current", h.Import.Current)
	imports.DELETE("/current", h.Import.Reset)
	imports.GET("/current/errors.csv", h.Import.ErrorReport)
	imports.PUT("/current/rows/:row", h.Import.EditRow)
	imports.DELETE("/current/rows/:row", h.Import.DeleteRow)
	imports.POST("/current/submit", h.Import.Submit)
	imports.POST("/current/restart", h.Import.Restart)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
