package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"chatboard/config"
	"chatboard/internal/repository"
	"chatboard/internal/services"
	"chatboard/pkg/database"
)

const usage = `
Chatboard - Store CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Create tables (postgres) or indexes (mongo)
  status      Show store connection status
  seed        Seed the store with demo users and messages

Flags:
  -timeout duration   Overall command timeout (default 30s)

Environment:
  STORE_DRIVER, MONGO_URI, MONGO_DATABASE, DB_* as for the API server.

Examples:
  go run cmd/migrate/main.go up
  STORE_DRIVER=postgres go run cmd/migrate/main.go status
  go run cmd/migrate/main.go seed
`

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "Overall command timeout")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var run func(context.Context, *config.Config, *repository.Store) error
	switch command {
	case "up":
		run = runMigrationsUp
	case "status":
		run = showStatus
	case "seed":
		run = runSeed
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}

	// Opening the store creates tables or indexes, which is all "up" needs to do.
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	if err := execute(ctx, cfg, store, run); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// execute runs a command and always closes the store afterwards. A close failure is
// logged and does not mask the command's own error.
func execute(ctx context.Context, cfg *config.Config, store *repository.Store, run func(context.Context, *config.Config, *repository.Store) error) error {
	runErr := run(ctx, cfg, store)
	if err := store.Close(context.Background()); err != nil {
		log.Printf("⚠️  Error closing store: %v", err)
	}
	return runErr
}

func runMigrationsUp(_ context.Context, cfg *config.Config, _ *repository.Store) error {
	log.Printf("🚀 Schema on %s store created", cfg.StoreDriver)
	log.Println("✅ Schema is up to date!")
	return nil
}

func showStatus(ctx context.Context, cfg *config.Config, store *repository.Store) error {
	log.Printf("🔍 Checking %s store status...", cfg.StoreDriver)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("store connection failed: %w", err)
	}
	log.Println("✅ Store connection: OK")
	return nil
}

func runSeed(ctx context.Context, cfg *config.Config, store *repository.Store) error {
	log.Println("🌱 Seeding store...")
	if cfg.StoreDriver == config.StoreMemory {
		log.Println("⚠️  The memory store is discarded when this command exits")
	}

	passwords, err := services.NewPasswordScheme(cfg)
	if err != nil {
		return err
	}
	users := services.NewUserService(store.Users, passwords, nil)
	messages := services.NewMessageService(store.Messages, store.Users, nil, nil)

	result, err := database.Seed(ctx, users, messages, database.DefaultSeedConfig())
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Println("📊 Seed Summary:")
	log.Printf("   - Users created: %d", len(result.Users))
	log.Printf("   - Users skipped: %d", len(result.SkippedUsers))
	log.Printf("   - Messages: %d", len(result.Messages))
	log.Println("✅ Seeding completed!")
	return nil
}
