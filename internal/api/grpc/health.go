package grpc

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	grpc "google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const Service = "laundry"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Состояние сервиса по доступности хранилища
type HealthService struct {
	server *grpc.Server
	health *health.Server
	db     Pinger
	logger *zap.Logger
}

func NewHealthService(db Pinger, logger *zap.Logger) *HealthService {
	srv := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(srv, h)
	return &HealthService{srv, h, db, logger}
}

// Проверка хранилища
func (h *HealthService) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	err := h.db.Ping(ctx)
	if err != nil {
		h.logger.Warn("Store ping",
			zap.String("service", "HealthService"),
			zap.Error(err),
		)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(Service, status)
}

func (h *HealthService) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

func (h *HealthService) Serve(lis net.Listener) error {
	return h.server.Serve(lis)
}

func (h *HealthService) Stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
}
