package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"tableside-orders/config"
	httpapi "tableside-orders/internal/api/http"
	"tableside-orders/internal/service"
	"tableside-orders/internal/storage"
)

func main() {
	_ = godotenv.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.Getenv("KAFKA_TOPIC", "order-events"))
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	stash := storage.NewRedisCartStash(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qr := service.ConfirmationQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}

	menuSvc := service.NewMenuService(repo)
	cartSvc := service.NewCartService(repo, stash)
	submitter := service.NewSubmitter(repo, publisher, qr)
	checkoutSvc := service.NewCheckoutService(repo, cartSvc, submitter)
	orderSvc := service.NewOrderService(repo, qr)

	handler := httpapi.NewHandler(menuSvc, cartSvc, checkoutSvc, orderSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
