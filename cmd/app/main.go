package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/dentaltrip/api"
	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/bootstrap"
	"github.com/Domenick1991/dentaltrip/internal/cache"
	"github.com/Domenick1991/dentaltrip/internal/kafka"
	"github.com/Domenick1991/dentaltrip/internal/repository"
	"github.com/Domenick1991/dentaltrip/internal/serp"
	"github.com/Domenick1991/dentaltrip/internal/service/booking"
	"github.com/Domenick1991/dentaltrip/internal/service/catalog"
	"github.com/Domenick1991/dentaltrip/internal/service/estimator"
	"github.com/Domenick1991/dentaltrip/internal/service/flights"
	"github.com/Domenick1991/dentaltrip/internal/service/hotels"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Search.APIKey == "" {
		log.Printf("SERPAPI_KEY is not set; estimates will fall back to flat rates")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Estimator.SessionTTL())
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Fatalf("connect redis: %v", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Printf("kafka unavailable, booking events will fail to publish: %v", err)
	}

	searchClient := serp.NewClient(cfg.Search)
	flightService := flights.NewFlightService(searchClient, cfg.Estimator)
	hotelService := hotels.NewHotelService(searchClient, cfg.Estimator)
	estimateService := estimator.NewEstimateService(flightService, hotelService, redisCache, cfg.Estimator)

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithItemsPerPage(cfg.Bookings.ItemsPerPage),
	)
	catalogService := catalog.NewCatalogService(repository.NewServiceRepository(pool))

	if err := api.RegisterValidators(); err != nil {
		log.Fatalf("register validators: %v", err)
	}

	handlers := bootstrap.Handlers{
		Estimates: api.NewEstimateHandler(estimateService),
		Bookings:  api.NewBookingHandler(bookingService),
		Services:  api.NewServiceHandler(catalogService),
		Catalog:   api.NewCatalogHandler(),
		Serp:      api.NewSerpProxyHandler(searchClient),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
