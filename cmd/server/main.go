package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/webdev-zad/laundry-system-be/internal/api"
	health "github.com/webdev-zad/laundry-system-be/internal/api/grpc"
	config "github.com/webdev-zad/laundry-system-be/internal/config"
	db "github.com/webdev-zad/laundry-system-be/internal/db"
	kafka "github.com/webdev-zad/laundry-system-be/internal/external/kafka"
	socket "github.com/webdev-zad/laundry-system-be/internal/external/socket"
	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	services "github.com/webdev-zad/laundry-system-be/internal/services"
	tracing "github.com/webdev-zad/laundry-system-be/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	var logger *zap.Logger
	if cfg.Production() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.OtelEndpoint, "laundry", logger)
	if err != nil {
		logger.Fatal("Tracer init", zap.Error(err))
	}
	defer shutdownTracer()

	// database
	storage, err := db.NewLaundryDB(ctx, cfg.MongoURI, cfg.MongoDB, logger)
	if err != nil {
		logger.Fatal("Database connect", zap.Error(err))
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.CacheStorage
	if cfg.CacheURL != "" {
		redis, err := db.NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd)
		if err != nil {
			logger.Error("Cache is disabled", zap.Error(err))
		} else {
			cache = redis
			defer redis.Close()
		}
	}

	// events
	hub := socket.NewHub(logger, cfg.ClientURL)
	go hub.Run(ctx)
	sinks := []interf.EventSink{hub}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		events, err := kafka.NewKafkaEvents(brokers, cfg.KafkaTopic)
		if err != nil {
			logger.Error("Kafka events are disabled", zap.Error(err))
		} else {
			sinks = append(sinks, events)
			defer events.Close()
		}
	}
	dispatcher := services.NewDispatcher(logger, cfg.NotifyTimeout, sinks...)

	// services
	tokens, err := services.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("Token issuer", zap.Error(err))
	}
	s := api.Services{
		Users:     services.NewUserService(logger, storage, tokens),
		Customers: services.NewCustomerService(logger, storage, storage),
		Tasks:     services.NewTaskService(logger, storage, storage, dispatcher),
		Board:     services.NewBoardService(logger, storage, dispatcher),
		Loyalty:   services.NewLoyaltyService(logger, storage, storage, storage, cache, cfg.LoyaltyRetries),
		Catalog:   services.NewRewardCatalog(logger, storage, cache),
		Tokens:    tokens,
		Events:    hub,
	}

	// api handlers
	r := api.NewHandler(s, logger, cfg.ClientURL)
	srv := &http.Server{
		Handler:     otelhttp.NewHandler(r, "laundry"),
		Addr:        ":" + cfg.Port,
		ReadTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server started", zap.String("port", cfg.Port))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server", zap.Error(err))
		}
	}()

	// grpc health
	var healthSrv *health.HealthService
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			logger.Fatal("gRPC listen", zap.Error(err))
		}
		healthSrv = health.NewHealthService(storage, logger)
		go healthSrv.Watch(ctx, 15*time.Second)
		go func() {
			err := healthSrv.Serve(lis)
			if err != nil {
				logger.Error("gRPC server", zap.Error(err))
			}
		}()
	}

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if healthSrv != nil {
		healthSrv.Stop()
	}
	cancel()
	dispatcher.Wait()
}
