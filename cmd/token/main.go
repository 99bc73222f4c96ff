// Command token registers a user with a role and prints a bearer token for it.
//
//	go run ./cmd/token -role Client
//	go run ./cmd/token -id 2b1c... -role Owner
//
// It reads the same environment as the server and needs the postgres driver.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/beliemun/uber-backend/cmd"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	rawID := flag.String("id", "", "user id (a new one is generated when empty)")
	rawRole := flag.String("role", "Client", "Client, Owner or Driver")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if config.StorageDriver != cmd.StorageDriverPostgres {
		log.Fatalf("STORAGE_DRIVER must be %q to issue tokens", cmd.StorageDriverPostgres)
	}

	id := kernel.NewUUID()
	if *rawID != "" {
		if id, err = kernel.UUIDFromString(*rawID); err != nil {
			log.Fatalf("invalid -id: %v", err)
		}
	}
	role, err := user.ParseRole(*rawRole)
	if err != nil {
		log.Fatalf("invalid -role: %v", err)
	}
	u, err := user.NewUser(id, role)
	if err != nil {
		log.Fatalf("invalid user: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, cmd.NewPostgresStorage(gormDB), nil)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}
	defer app.Close()

	ctx := context.Background()
	if err := app.Storage().Users.Add(ctx, u); err != nil {
		log.Fatalf("register user: %v", err)
	}
	token, err := app.Tokens().Sign(ctx, u.ID())
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Printf("user:  %s (%s)\ntoken: %s\n", u.ID(), u.Role(), token)
}
