// Package httpserver exposes the account and contact services over an
// HTTP/JSON API built on gin.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
}

type ContactService interface {
	List(ctx context.Context, ownerID int64) ([]models.Contact, error)
	Create(ctx context.Context, ownerID int64, in services.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, ownerID, contactID int64, in services.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, ownerID, contactID int64) error
}

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const (
	defaultShutdownTimeout = 5 * time.Second
	healthCheckTimeout     = 2 * time.Second
)

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           UserService
	contacts        ContactService
	verifier        TokenVerifier
	db              Pinger
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

type Option func(*HTTPServer)

// WithAllowedOrigins restricts CORS to the given origins. "*" or an empty
// list allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(s *HTTPServer) { s.allowedOrigins = origins }
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *HTTPServer) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithHealthCheck makes /api/health ping the database.
func WithHealthCheck(p Pinger) Option {
	return func(s *HTTPServer) { s.db = p }
}

func NewHTTPServer(address string, l logging.Logger, us UserService, cs ContactService, v TokenVerifier, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		address:         address,
		logger:          l.With("module", "http_server"),
		users:           us,
		contacts:        cs,
		verifier:        v,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Handler builds the gin engine with all routes and middleware.
func (s *HTTPServer) Handler() *gin.Engine {
	return s.routes()
}
