package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appnet-org/hellotime/internal/greeter"
	"github.com/appnet-org/hellotime/pkg/logging"
	"github.com/appnet-org/hellotime/pkg/rpc"
	"github.com/appnet-org/hellotime/pkg/rpc/element"
	"github.com/appnet-org/hellotime/pkg/serializer"
	pb "github.com/appnet-org/hellotime/proto/hellotime"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := logging.Init(getLoggingConfig(os.Getenv)); err != nil {
		panic(fmt.Sprintf("Failed to initialize logging: %v", err))
	}
	defer logging.Sync()

	cfg := loadConfig()
	logging.Info("Server configuration",
		zap.String("bindAddr", cfg.BindAddr),
		zap.Int("maxHandlers", cfg.MaxHandlers),
		zap.Duration("gracePeriod", cfg.GracePeriod),
		zap.String("location", cfg.Location),
		zap.String("serializer", cfg.Serializer),
		zap.String("metricsAddr", cfg.MetricsAddr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal("Server failed", zap.Error(err))
	}
}

// run serves HelloService (and optionally metrics) until ctx is cancelled.
func run(ctx context.Context, cfg *Config) error {
	codec, err := serializer.ByName(cfg.Serializer)
	if err != nil {
		return err
	}

	metrics := element.NewMetricsElement("hellotime")
	elements := []element.RPCElement{
		metrics,
		element.NewLoggingElement(cfg.VerboseTrace),
	}

	server := rpc.NewServer(cfg.BindAddr, codec, elements, rpc.WithMaxConcurrentHandlers(cfg.MaxHandlers))
	pb.RegisterHelloServiceServer(server, greeter.NewService(cfg.Location))
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.Run(gctx, cfg.GracePeriod)
		if errors.Is(err, rpc.ErrDrainTimeout) {
			logging.Warn("Forced shutdown after grace period", zap.Duration("gracePeriod", cfg.GracePeriod))
			return nil
		}
		return err
	})

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsServer := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logging.Info("Metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return metricsServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
