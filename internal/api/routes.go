package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"booklib/internal/models"
)

// RouteOption configures optional route behavior.
type RouteOption func(*mux.Router)

// WithOTelMiddleware adds OpenTelemetry HTTP instrumentation middleware.
func WithOTelMiddleware(serviceName string) RouteOption {
	return func(r *mux.Router) {
		r.Use(otelmux.Middleware(serviceName,
			otelmux.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/health" &&
					r.URL.Path != "/metrics" &&
					r.URL.Path != "/api/docs"
			}),
		))
	}
}

// WithRateLimiter adds rate limiting middleware to the router.
func WithRateLimiter(middleware func(http.Handler) http.Handler) RouteOption {
	return func(r *mux.Router) {
		r.Use(middleware)
	}
}

// SetupRoutes configures the HTTP routes for the API.
func SetupRoutes(handlers *Handlers, config *models.Config, opts ...RouteOption) *mux.Router {
	router := mux.NewRouter()

	for _, opt := range opts {
		opt(router)
	}

	router.HandleFunc("/", handlers.Welcome).Methods("GET")
	router.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/docs", handlers.ServeDocs).Methods("GET")

	authors := api.PathPrefix("/authors").Subrouter()
	authors.HandleFunc("", handlers.ListAuthors).Methods("GET")
	authors.HandleFunc("", handlers.CreateAuthor).Methods("POST")
	authors.HandleFunc("/{id}", handlers.GetAuthor).Methods("GET")
	authors.HandleFunc("/{id}", handlers.UpdateAuthor).Methods("PUT")
	authors.HandleFunc("/{id}", handlers.DeleteAuthor).Methods("DELETE")

	books := api.PathPrefix("/books").Subrouter()
	// The search route must be registered before /{id} so "search" is not
	// captured as an id.
	books.HandleFunc("/search", handlers.SearchBooks).Methods("GET")
	books.HandleFunc("", handlers.ListBooks).Methods("GET")
	books.HandleFunc("", handlers.CreateBook).Methods("POST")
	books.HandleFunc("/{id}", handlers.GetBook).Methods("GET")
	books.HandleFunc("/{id}", handlers.UpdateBook).Methods("PUT")
	books.HandleFunc("/{id}", handlers.DeleteBook).Methods("DELETE")

	if config.Server.CORS.Enabled {
		router.Use(corsMiddleware(config.Server.CORS))
	}

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)
	router.Use(recoveryMiddleware)

	router.NotFoundHandler = notFoundHandler()
	router.MethodNotAllowedHandler = methodNotAllowedHandler()

	return router
}
