package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/textileio/go-autostaker/internal/router/controllers"
	"github.com/textileio/go-autostaker/internal/router/middlewares"
	"github.com/textileio/go-autostaker/pkg/staker"
)

// Config contains what the status router exposes and how it's rate limited.
type Config struct {
	Address string
	Pool    string
	Token   string

	MaxRPI          uint64
	RateLimInterval time.Duration
}

// ConfiguredRouter returns a fully configured Router that can be used as an http handler.
func ConfiguredRouter(coordinator staker.Coordinator, config Config) (*Router, error) {
	ctrl := controllers.NewController(coordinator, config.Address, config.Pool, config.Token)

	// General router configuration.
	router := NewRouter()
	router.Use(middlewares.CORS, middlewares.TraceID)

	rateLim, err := middlewares.RateLimitController(middlewares.RateLimiterConfig{
		MaxRPI:   config.MaxRPI,
		Interval: config.RateLimInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("creating rate limit controller middleware: %s", err)
	}

	router.Get("/status", ctrl.GetStatus, middlewares.WithLogging, middlewares.OtelHTTP("GetStatus"), rateLim)
	router.Get("/version", ctrl.Version, middlewares.WithLogging, middlewares.OtelHTTP("Version"), rateLim)

	// Prometheus scrape endpoint for every otel instrument.
	router.Handle("/metrics", promhttp.Handler())

	// Health endpoint configuration.
	router.Get("/healthz", healthHandler)
	router.Get("/health", healthHandler)

	return router, nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Router provides a nice api around mux.Router.
type Router struct {
	r *mux.Router
}

// NewRouter is a Mux HTTP router constructor.
func NewRouter() *Router {
	r := mux.NewRouter()
	r.PathPrefix("/").Methods(http.MethodOptions) // accept OPTIONS on all routes and do nothing
	return &Router{r: r}
}

// Get creates a subroute on the specified URI that only accepts GET. You can provide specific middlewares.
func (r *Router) Get(uri string, f func(http.ResponseWriter, *http.Request), mid ...mux.MiddlewareFunc) {
	sub := r.r.Path(uri).Subrouter()
	sub.HandleFunc("", f).Methods(http.MethodGet)
	sub.Use(mid...)
}

// Handle mounts h on uri for every method.
func (r *Router) Handle(uri string, h http.Handler) {
	r.r.Handle(uri, h)
}

// Use adds middlewares to all routes. Should be used when a middleware should be execute all all routes (e.g. CORS).
func (r *Router) Use(mid ...mux.MiddlewareFunc) {
	r.r.Use(mid...)
}

// Handler returns the configured router http handler.
func (r *Router) Handler() http.Handler {
	return r.r
}
