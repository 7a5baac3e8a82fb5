package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog"
)

const serviceName = "gaia-pathfinder"

type RouterOptions struct {
	// AccessLog enables one structured log line per request.
	AccessLog bool
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if opts.AccessLog {
		accessLog := httplog.NewLogger(serviceName, httplog.Options{
			JSON:    true,
			Concise: true,
		}).Output(newLogSink(h.logger))
		r.Use(httplog.RequestLogger(accessLog))
	}
	// The request origin is echoed back, which credentialed requests require.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(*http.Request, string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/invoke", h.Invoke)
	r.Get("/health", h.Health)

	return r
}
