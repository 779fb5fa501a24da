package repository

import (
	"context"
	"fmt"

	"chatboard/internal/domain/message"
	"chatboard/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// InitSchema creates the users and messages tables, including the username unique index.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}, &message.Message{}); err != nil {
		return fmt.Errorf("failed to apply GORM migrations: %w", err)
	}
	return nil
}

// EnsureMongoIndexes creates the unique username index the signup pre-check relies on,
// plus a sort index on message time.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: user.FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = db.Collection(MessagesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: message.FieldMsgDateTime, Value: 1}},
		Options: options.Index().SetName("msg_date_time"),
	})
	if err != nil {
		return fmt.Errorf("failed to create messages index: %w", err)
	}
	return nil
}
