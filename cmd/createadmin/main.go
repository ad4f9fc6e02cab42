// Command createadmin provisions an admin account directly in DynamoDB,
// bypassing the email verification flow. Intended for initial setup.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/metrovolt-api/internal/config"
	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/infrastructure/dynamo"
	"github.com/metrovolt-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	name := flag.String("name", "Admin", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required, min 6 chars)")
	flag.Parse()

	if *email == "" || len(*password) < 6 {
		log.Fatal("usage: createadmin -email admin@example.com -password <min 6 chars> [-name Admin]")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	cfg := config.Load()

	ctx := context.Background()
	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)
	users := dynamo.NewUserRepo(client, cfg.DynamoTables.Users)

	if _, err := users.GetByEmail(ctx, *email); err == nil {
		log.Fatalf("user %s already exists", *email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatalf("lookup user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Put(ctx, u); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %s created (user_id=%s)", u.Email, u.UserID)
}
