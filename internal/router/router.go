package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/banks-directory/internal/handlers"
	"github.com/GregMSThompson/banks-directory/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	bh := handlers.NewBankHandlers(deps)
	dh := handlers.NewDirectoryHandlers(deps)

	r.Mount("/banks", bh.BankRoutes())
	r.Get("/status", dh.GetStatus)
	r.Get("/status/stream", dh.StreamStatus)
	r.Post("/refresh", dh.Refresh)
	return r
}
