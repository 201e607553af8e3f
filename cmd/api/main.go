package main

import (
	"context"
	"fmt"
	"log"
	"manufacturer-backend/internal/auth"
	"manufacturer-backend/internal/client"
	"manufacturer-backend/internal/config"
	"manufacturer-backend/internal/repository"
	"manufacturer-backend/internal/server"
	"manufacturer-backend/internal/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	tokens := auth.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	toolRepo := repository.NewToolRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	newsRepo := repository.NewNewsRepository(db)

	toolService := service.NewToolService(toolRepo)
	orderService := service.NewOrderService(db, orderRepo, paymentRepo)
	userService := service.NewUserService(userRepo, tokens)
	reviewService := service.NewReviewService(reviewRepo)
	newsService := service.NewNewsService(newsRepo)
	paymentService := service.NewPaymentService(stripeClient)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		tokens, userRepo,
		toolService,
		orderService,
		userService,
		reviewService,
		newsService,
		paymentService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
