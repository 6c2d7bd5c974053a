package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"augur/internal/platform/middleware"
)

// Registrar mounts one module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// RouterConfig carries the cross-cutting pieces every route shares.
type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	Metrics        http.Handler
}

// NewRouter wires middleware, /metrics and every module's routes.
func NewRouter(cfg RouterConfig, modules ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}
