// Package rest exposes the HTTP/JSON API: authentication endpoints, the
// per-account task CRUD, and the bearer-token identity guard in front of
// the protected routes.
package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mkarpenko/tasktrack/internal/logging"
	"github.com/mkarpenko/tasktrack/internal/server/accounts"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

type Server struct {
	address   string
	accounts  *accounts.Service
	tasks     *tasks.Service
	logger    logging.Logger
	jwtSecret []byte
	engine    *gin.Engine
}

func NewServer(address string, l logging.Logger, as *accounts.Service, ts *tasks.Service, secretKey string) *Server {
	gin.SetMode(gin.ReleaseMode)
	// Unknown body fields are client errors, not data to silently drop.
	binding.EnableDecoderDisallowUnknownFields = true

	s := &Server{
		address:   address,
		accounts:  as,
		tasks:     ts,
		logger:    l.With("module", "rest_server"),
		jwtSecret: []byte(secretKey),
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)

	auth := s.engine.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.POST("/logout", s.logout)
	auth.GET("/me", s.authenticate, s.me)

	protected := s.engine.Group("/tasks", s.authenticate)
	protected.POST("", s.createTask)
	protected.GET("", s.listTasks)
	protected.PUT("/:id", s.updateTask)
	protected.DELETE("/:id", s.deleteTask)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
