package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	httpapi "github.com/MavisWRLD/felho-beadando/internal/api/http"
	"github.com/MavisWRLD/felho-beadando/internal/config"
	"github.com/MavisWRLD/felho-beadando/internal/domain"
	"github.com/MavisWRLD/felho-beadando/internal/notify"
	"github.com/MavisWRLD/felho-beadando/internal/service"
	"github.com/MavisWRLD/felho-beadando/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedPizzas(domain.DefaultMenu()); err != nil {
		log.Fatal("Failed to seed pizzas:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewCatalogCache(rdb, 10*time.Minute)

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, "orders")
		defer writer.Close()
		publisher = storage.NewKafkaOrderPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, order events disabled")
	}

	var mailer service.Mailer
	if m, err := notify.NewResendMailer(cfg.EmailFrom); err != nil {
		log.Println("Mailer disabled:", err)
	} else {
		mailer = m
	}

	if cfg.S3Bucket == "" {
		log.Fatal("S3_BUCKET not set")
	}
	imageStore, err := storage.NewS3ImageStore(context.Background(), cfg.S3Bucket)
	if err != nil {
		log.Fatal("Failed to init S3:", err)
	}

	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}
	catalogSvc := service.NewCatalogService(repo, cache)
	orderSvc := service.NewOrderService(repo, qr, publisher, mailer)
	imageSvc := service.NewImageService(imageStore)

	r := mux.NewRouter()
	handler := httpapi.NewHandler(catalogSvc, orderSvc, imageSvc)
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	addr := ":" + cfg.Port
	if cfg.SSLCertPath != "" && cfg.SSLKeyPath != "" {
		log.Println("Pizza service starting with TLS on", addr)
		log.Fatal(http.ListenAndServeTLS(addr, cfg.SSLCertPath, cfg.SSLKeyPath, h))
	}

	log.Println("Pizza service starting on", addr)
	log.Fatal(http.ListenAndServe(addr, h))
}
