package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatboard/config"
	"chatboard/internal/events"
	"chatboard/internal/handler"
	"chatboard/internal/middleware"
	"chatboard/internal/redis"
	"chatboard/internal/repository"
	"chatboard/internal/server"
	"chatboard/internal/services"
	"chatboard/internal/websocket"
	"chatboard/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	l := logger.New(cfg.AppEnv)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		l.Errorf("Failed to open %s store: %v", cfg.StoreDriver, err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			l.Warnf("Error closing store: %v", err)
		}
	}()
	l.Infof("Using %s store", cfg.StoreDriver)

	passwords, err := services.NewPasswordScheme(cfg)
	if err != nil {
		l.Errorf("%v", err)
		os.Exit(1)
	}

	hub := websocket.NewHub()
	go hub.Run(ctx)

	var (
		publisher events.Publisher = hub
		limiter   middleware.AuthLimiter
	)
	if cfg.RedisEnabled() {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			l.Errorf("%v", err)
			os.Exit(1)
		}
		defer rdb.Close()

		publisher = redis.NewPublisher(rdb)
		limiter = redis.NewRateLimiter(rdb, redis.RateLimitConfig{
			AuthLimit:  cfg.AuthRateLimit,
			AuthWindow: cfg.AuthRateWindow,
		})

		bridge := websocket.NewRedisBridge(redis.NewSubscriber(rdb), hub)
		go func() {
			if err := bridge.Run(ctx, []string{events.ChannelMessages}); err != nil {
				l.Errorf("Redis bridge stopped: %v", err)
			}
		}()
		l.Infof("Redis enabled at %s", cfg.RedisAddr)
	}

	userService := services.NewUserService(store.Users, passwords, l)
	messageService := services.NewMessageService(store.Messages, store.Users, events.NewMessagePublisher(publisher, nil), l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		User:    handler.NewUserHandler(userService),
		Message: handler.NewMessageHandler(messageService),
		Stream:  websocket.NewHandler(hub, l),
	}, limiter, store)

	if err := srv.Start(ctx); err != nil {
		l.Errorf("Server exited with error: %v", err)
	}
}
