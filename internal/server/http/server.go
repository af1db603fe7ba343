// Package http exposes the public JSON API and the marketing landing page.
package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/matchpredictor/internal/logging"
	"github.com/dmitrijs2005/matchpredictor/internal/server/auth"
	"github.com/dmitrijs2005/matchpredictor/internal/server/users"
)

//go:embed templates
var templatesFS embed.FS

type HTTPServer struct {
	address string
	users   *users.Service
	tokens  *auth.TokenService
	logger  logging.Logger
	engine  *gin.Engine
}

func NewHTTPServer(addr string, l logging.Logger, us *users.Service, ts *auth.TokenService) (*HTTPServer, error) {
	s := &HTTPServer{
		address: addr,
		logger:  l.With("module", "http_server"),
		users:   us,
		tokens:  ts,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger(), cors.Default())

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)

	s.engine = engine
	s.registerRoutes()

	return s, nil
}

func (s *HTTPServer) registerRoutes() {
	s.engine.GET("/", s.landing)
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	api.POST("/auth/signup", s.signup)
	api.POST("/auth/login", s.login)
	api.GET("/protected", s.requireAuth(), s.protected)
}

// Handler returns the root handler; used by tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// requestLogger logs every request with method, path, status, and duration.
// Health checks are skipped. Token values are never logged.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client", c.ClientIP(),
		)
	}
}
