package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcRouter "github.com/dtroode/nutrilog-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/nutrilog-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/nutrilog-server/internal/api/http/router"
	httpServer "github.com/dtroode/nutrilog-server/internal/api/http/server"
	"github.com/dtroode/nutrilog-server/internal/config"
	"github.com/dtroode/nutrilog-server/internal/food"
	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
	"github.com/dtroode/nutrilog-server/internal/model"
	"github.com/dtroode/nutrilog-server/internal/repository/memory"
	"github.com/dtroode/nutrilog-server/internal/server"
	"github.com/dtroode/nutrilog-server/internal/service"
	storage "github.com/dtroode/nutrilog-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const healthRefreshInterval = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)
	m := metrics.New()

	var wg sync.WaitGroup

	foods, err := loadFoods(ctx, cfg, m, logger, &wg)
	if err != nil {
		logger.Fatal("failed to load food reference", "error", err, "source", cfg.Food.Source)
	}
	logger.Info("food reference loaded", "source", cfg.Food.Source, "foods", foods.Len())

	userRepo := memory.NewUserRepository()
	mealRepo := memory.NewMealRepository()
	ids := model.UUIDGenerator{}

	userService := service.NewUser(userRepo, ids, m, logger, cfg.Webhook.UserName)
	mealService := service.NewMeal(userRepo, mealRepo, foods, userService, ids, m, logger)
	statusService := service.NewStatus(userRepo, mealRepo, logger)
	healthService := service.NewHealth(userRepo, mealRepo, foods)

	handler := httpRouter.New(userService, mealService, statusService, healthService, m, buildVersion, logger).Register()

	servers := []model.Server{
		httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port)),
	}

	var grpcHealth *grpcRouter.Router
	if cfg.GRPC.Enabled {
		grpcHealth = grpcRouter.New(healthService, logger)
		servers = append(servers, grpcServer.NewGRPCServer(grpcHealth.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)))

		wg.Add(1)
		go func() {
			defer wg.Done()
			grpcHealth.Monitor(ctx, healthRefreshInterval)
		}()
	}

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	if grpcHealth != nil {
		grpcHealth.Shutdown()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// loadFoods builds the food table from the configured source. For the file
// source with watching enabled, a watcher goroutine tracked by wg keeps the
// table in sync until ctx is done.
func loadFoods(
	ctx context.Context,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *logger.Logger,
	wg *sync.WaitGroup,
) (*food.Table, error) {
	switch cfg.Food.Source {
	case config.FoodSourceFile:
		foods, err := food.LoadFile(cfg.Food.Path)
		if err != nil {
			return nil, err
		}
		table := food.NewTable(foods)

		if cfg.Food.Watch {
			w, err := food.NewWatcher(cfg.Food.Path, table, m, logger)
			if err != nil {
				return nil, err
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Run(ctx)
			}()
		}

		return table, nil

	case config.FoodSourceMinio:
		client, err := storage.Connect(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}

		foods, err := food.NewMinioSource(client).Load(ctx, cfg.Food.Path)
		if err != nil {
			return nil, err
		}
		return food.NewTable(foods), nil

	default:
		return food.Default(), nil
	}
}
