package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/metrovolt-api/internal/config"
	"github.com/metrovolt-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/metrovolt-api/internal/infrastructure/jwt"
	s3infra "github.com/metrovolt-api/internal/infrastructure/s3"
	"github.com/metrovolt-api/internal/infrastructure/smtp"
	"github.com/metrovolt-api/internal/infrastructure/sns"
	transporthttp "github.com/metrovolt-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	jwtProvider := jwtinfra.NewProvider(cfg)

	// S3 store.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS ops notifier (optional — publishes nothing without a topic ARN).
	notifier, err := sns.NewNotifier(cfg)
	if err != nil {
		log.Fatalf("sns notifier: %v", err)
	}

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		VerificationRepo: dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.Verifications),
		ScooterRepo:      dynamo.NewScooterRepo(dynamoClient, cfg.DynamoTables.Scooters),
		OrderRepo:        dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders),
		ReviewRepo:       dynamo.NewReviewRepo(dynamoClient, cfg.DynamoTables.Reviews),
		BookingRepo:      dynamo.NewBookingRepo(dynamoClient, cfg.DynamoTables.Bookings),
		ContentRepo:      dynamo.NewContentRepo(dynamoClient, cfg.DynamoTables.Content),
		S3Store:          s3Store,
		Mailer:           mailer,
		Notifier:         notifier,
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
