package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/MavisWRLD/felho-beadando/internal/config"
	"github.com/MavisWRLD/felho-beadando/internal/notify"
	"github.com/MavisWRLD/felho-beadando/internal/storage"
)

func main() {
	cfg := config.Load()

	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER not set")
	}
	reader := config.NewKafkaReader(cfg.KafkaBroker, "orders", "notifier")
	defer reader.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	mailer, err := notify.NewResendMailer(cfg.EmailFrom)
	if err != nil {
		log.Fatal("Failed to init mailer:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := notify.NewConsumer(reader, mailer, storage.NewRedisAnalytics(rdb))
	consumer.Start(ctx)
}
