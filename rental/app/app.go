package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drivehub/rental-service/pkg/auth"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/drivehub/rental-service/pkg/logger"
	"github.com/drivehub/rental-service/pkg/postgres"
	"github.com/drivehub/rental-service/rental/config"
	"github.com/drivehub/rental-service/rental/internal/gateway"
	"github.com/drivehub/rental-service/rental/internal/handler"
	"github.com/drivehub/rental-service/rental/internal/repository"
	"github.com/drivehub/rental-service/rental/internal/server"
	"github.com/drivehub/rental-service/rental/internal/service"
	"github.com/drivehub/rental-service/rental/internal/storage"
	"github.com/drivehub/rental-service/rental/migrations"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	gw := gateway.NewClient(cfg.Gateway, log)
	svc := service.NewService(repo, gw, cfg, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	enq := handler.NewEnqueuer(producer)

	store, err := storage.NewLocalStore(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("storage %w", err)
	}

	h := handler.New(svc, enq, store, auth.NewManager(cfg.JWT), cfg, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
