package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	mw "github.com/DjordjeVuckovic/user-directory/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/user-directory/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	healthPath    string

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Context is cancelled when the process receives an interrupt.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return s.healthPath != "" && c.Path() == s.healthPath
	})))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	return s
}

func (s *Server) SetupErrorHandler(opts ...apperr.HandlerOption) *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler(opts...)
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.healthPath = path
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

// SetupOpenApi serves the registered swagger document under path, which must
// end with a wildcard, e.g. "/swagger/*".
func (s *Server) SetupOpenApi(path string) *Server {
	if !strings.HasSuffix(path, "*") {
		path = strings.TrimSuffix(path, "/") + "/*"
	}
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Start serves until the server context is cancelled, then shuts down gracefully.
func (s *Server) Start() error {
	defer s.cancel()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	slog.Info("Shutting down server")
	return s.Echo.Shutdown(ctx)
}
