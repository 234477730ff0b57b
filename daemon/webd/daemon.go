package webd

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"

	"github.com/tuw-geo/equi7go/grid"
	"github.com/tuw-geo/equi7go/params"
)

// WebDaemon serves grid lookups over HTTP: coordinate conversion, tilename
// decoding and tile search. The grid is immutable, so every endpoint is
// safe under concurrent requests and search responses are cacheable by
// request body.
type WebDaemon struct {
	Config      *params.WebDaemonConfig
	logger      *slog.Logger
	grid        *grid.Grid
	searchCache *ttlcache.Cache[string, []string]
}

func NewWebDaemon(config *params.WebDaemonConfig) (*WebDaemon, error) {
	if config == nil {
		config = params.DefaultWebDaemonConfig()
	}
	g, err := grid.New(config.Sampling)
	if err != nil {
		return nil, err
	}
	return &WebDaemon{
		Config: config,
		logger: slog.With("d", "web"),
		grid:   g,
		searchCache: ttlcache.New[string, []string](
			ttlcache.WithTTL[string, []string](config.SearchCacheTTL),
		),
	}, nil
}

// Run starts the HTTP server and waits for it, returning any server error.
func (s *WebDaemon) Run() error {
	go s.searchCache.Start()
	defer s.searchCache.Stop()

	listener, err := net.Listen(s.Config.Network, s.Config.Address)
	if err != nil {
		return fmt.Errorf("webd: listen %s/%s: %w", s.Config.Network, s.Config.Address, err)
	}
	s.logger.Info("Starting web daemon",
		"network", s.Config.Network, "address", s.Config.Address,
		"sampling", s.Config.Sampling)
	return http.Serve(listener, s.NewRouter())
}

func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(loggingMiddleware)

	apiRoutes := router.NewRoute().Subrouter()

	// All API routes use permissive CORS settings.
	apiRoutes.Use(permissiveCorsMiddleware)

	// /ping is a simple server healthcheck endpoint
	apiRoutes.Path("/ping").HandlerFunc(pingPong)

	apiJSONRoutes := apiRoutes.NewRoute().Subrouter()
	apiJSONRoutes.Use(contentTypeMiddlewareFunc("application/json"))

	apiJSONRoutes.Path("/convert/lonlat").HandlerFunc(s.handleLonLatToXY).Methods(http.MethodGet)
	apiJSONRoutes.Path("/convert/xy").HandlerFunc(s.handleXYToLonLat).Methods(http.MethodGet)
	apiJSONRoutes.Path("/tiles/search").HandlerFunc(s.handleSearchTiles).Methods(http.MethodPost)
	apiJSONRoutes.Path("/tiles/{name}").HandlerFunc(s.handleDecodeTilename).Methods(http.MethodGet)

	return router
}
