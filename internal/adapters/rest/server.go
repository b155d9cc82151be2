package rest

import (
	"context"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	listingHandlers *ListingHandler,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) *Server {

	r := newRouter(listingHandlers, allowedOrigins, baseLogger)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func newRouter(listingHandlers *ListingHandler,
	allowedOrigins []string,
	baseLogger core_port.LoggerPort) chi.Router {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/listings/refresh", listingHandlers.RefreshListings)

		// роуты вкладок sale/rent
		r.Get("/listings", listingHandlers.BrowseListings)
		r.Get("/listings/{listingID}", listingHandlers.GetListing)

		r.Post("/listings", listingHandlers.CreateListing)
		r.Post("/listings/{listingID}/status", listingHandlers.CycleListingStatus)
		r.Delete("/listings/{listingID}", listingHandlers.RemoveListing)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
