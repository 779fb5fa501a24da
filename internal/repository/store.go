package repository

import (
	"context"
	"fmt"

	"chatboard/config"
	"chatboard/internal/domain/message"
	"chatboard/internal/domain/user"
	"chatboard/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const (
	UsersCollection    = "users"
	MessagesCollection = "messages"
)

// Store bundles the collections of one backend with its lifecycle hooks.
type Store struct {
	Users    UserRepository
	Messages MessageRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func NewMemoryStore() *Store {
	return &Store{
		Users:    NewMemoryCollection[user.User](user.FieldUsername),
		Messages: NewMemoryCollection[message.Message](),
	}
}

func NewMongoStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		Users:    NewMongoCollection[user.User](db.Collection(UsersCollection)),
		Messages: NewMongoCollection[message.Message](db.Collection(MessagesCollection)),
		ping:     func(ctx context.Context) error { return database.PingMongo(ctx, client) },
		close:    client.Disconnect,
	}
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewGormCollection[user.User](db),
		Messages: NewGormCollection[message.Message](db),
		ping:     func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
		close:    func(context.Context) error { return database.Close(db) },
	}
}

// Open connects the backend named by cfg.StoreDriver and makes sure its unique indexes exist.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		if err := EnsureMongoIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return NewMongoStore(client, cfg.MongoDatabase), nil
	case config.StorePostgres:
		db, err := database.Connect(cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		if err := InitSchema(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
