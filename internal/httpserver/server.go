package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"storefront/internal/cart"
	"storefront/internal/checkout"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *logrus.Logger
}

// Deps are the collaborators the handlers need.
type Deps struct {
	Catalog  Catalog
	Carts    *cart.Manager
	Checkout *checkout.Service

	// Tracing wraps the whole handler chain in an OpenTelemetry span.
	Tracing bool
}

// New builds a Server with the storefront routes.
func New(addr string, logger *logrus.Logger, deps Deps) (*Server, error) {
	router := buildRouter(logger, deps)

	var handler http.Handler = router
	if deps.Tracing {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
