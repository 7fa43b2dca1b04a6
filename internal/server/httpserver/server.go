// Package httpserver serves the member pages, the JSON API and the
// operational endpoints over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/firstweek/internal/logging"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MemberService is the subset of services.MemberService the handlers use.
type MemberService interface {
	Create(ctx context.Context, name, email string) (*models.Member, error)
	Get(ctx context.Context, id int64) (*models.Member, bool, error)
	GetAll(ctx context.Context) ([]models.Member, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports whether the backing storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	members         MemberService
	storage         Pinger
	logger          logging.Logger
	views           *views
	registry        *prometheus.Registry
	metrics         *metrics
}

func NewHTTPServer(a string, shutdownTimeout time.Duration, l logging.Logger, ms MemberService, p Pinger) (*HTTPServer, error) {
	v, err := loadViews()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	return &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		members:         ms,
		storage:         p,
		logger:          l.With("module", "http_server"),
		views:           v,
		registry:        reg,
		metrics:         m,
	}, nil
}

// Handler builds the router.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(s.collectMetrics)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
	})

	r.Route("/members", func(r chi.Router) {
		r.Get("/", s.listMembers)
		r.Get("/new", s.newMemberForm)
		r.Post("/", s.createMember)
	})

	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", s.apiListMembers)
		r.Post("/", s.apiCreateMember)
		r.Get("/{id}", s.apiGetMember)
		r.Delete("/{id}", s.apiDeleteMember)
	})

	r.Get("/health", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
