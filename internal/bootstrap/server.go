package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Domenick1991/dentaltrip/api"
	"github.com/Domenick1991/dentaltrip/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const swaggerFile = "estimator.swagger.json"

// Handlers are the route groups mounted under /api.
type Handlers struct {
	Estimates *api.EstimateHandler
	Bookings  *api.BookingHandler
	Services  *api.ServiceHandler
	Catalog   *api.CatalogHandler
	Serp      *api.SerpProxyHandler
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	healthConn *grpc.ClientConn
	httpServer *http.Server
}

// Run starts the gRPC health server and the HTTP API and blocks until ctx is
// canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	s, err := newServers(cfg, h)
	if err != nil {
		return err
	}
	defer s.healthConn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Printf("[bootstrap] http on %s, grpc on %s", cfg.HTTP.Address, cfg.GRPC.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, h Handlers) (*Servers, error) {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	conn, err := grpc.NewClient(cfg.GRPC.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial health endpoint: %w", err)
	}
	gateway := runtime.NewServeMux(runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))

	router := NewRouter(cfg.HTTP, h, gateway)

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		healthConn: conn,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewRouter builds the gin engine. healthz may be nil, in which case
// /healthz is not mounted.
func NewRouter(cfg config.HTTPConfig, h Handlers, healthz http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if healthz != nil {
		router.GET("/healthz", gin.WrapH(healthz))
	}

	if cfg.SwaggerDir != "" {
		router.StaticFile("/swagger/"+swaggerFile, filepath.Join(cfg.SwaggerDir, swaggerFile))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerFile))))
	}

	apiGroup := router.Group("/api")
	h.Catalog.Register(apiGroup)
	h.Estimates.Register(apiGroup.Group("/estimates"))
	h.Bookings.Register(apiGroup.Group("/bookings"))
	h.Services.Register(apiGroup.Group("/services"))
	h.Serp.Register(apiGroup.Group("/serp"))

	return router
}
