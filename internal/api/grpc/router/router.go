// Package router assembles the gRPC server: health service, reflection and interceptors.
package router

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/nutrilog-server/internal/api/grpc/middleware"
	"github.com/dtroode/nutrilog-server/internal/logger"
)

// ReadinessChecker reports whether the service can answer requests.
type ReadinessChecker interface {
	Ready() bool
}

// Router owns the health server whose status follows a ReadinessChecker.
type Router struct {
	readiness ReadinessChecker
	health    *health.Server
	logger    *logger.Logger
}

func New(readiness ReadinessChecker, logger *logger.Logger) *Router {
	return &Router{
		readiness: readiness,
		health:    health.NewServer(),
		logger:    logger,
	}
}

// Register builds the gRPC server with logging and panic recovery interceptors,
// the grpc.health.v1 service and server reflection.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.recover)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(r.recover)),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)
	r.Refresh()

	return s
}

// Refresh sets the overall serving status from the readiness checker.
func (r *Router) Refresh() {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if r.readiness != nil && r.readiness.Ready() {
		st = healthpb.HealthCheckResponse_SERVING
	}
	r.health.SetServingStatus("", st)
}

// Monitor calls Refresh every interval until ctx is done.
func (r *Router) Monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh()
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) recover(p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}
