package app

import (
	"log/slog"
	"net/http"

	"github.com/kwokm/mk-todo/internal/config"
	"github.com/kwokm/mk-todo/internal/kv"
	"github.com/kwokm/mk-todo/internal/service/board"
	"github.com/kwokm/mk-todo/internal/service/todo"
	"github.com/kwokm/mk-todo/internal/transport/middleware"
	"github.com/kwokm/mk-todo/internal/transport/rest"
)

// NewHandler wires services, handlers and middleware over store. Stop the
// returned rate limiter on shutdown.
func NewHandler(cfg *config.Config, store kv.Store, logger *slog.Logger) (http.Handler, *middleware.RateLimiter) {
	todoSvc := todo.NewService(logger, store)
	boardSvc := board.NewService(logger, store)

	mux := rest.NewRouter(
		rest.NewTodoHandler(todoSvc, logger),
		rest.NewBoardHandler(boardSvc, logger),
		rest.NewHealthHandler(store, BuildVersion(), cfg.Storage.Driver),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Middleware(),
	)
	return chain(mux), limiter
}

// NewServer returns an http.Server for handler with the configured timeouts.
func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
