package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is a Collection backed by a MongoDB collection.
// Identity is assigned client-side as an ObjectID hex string.
type MongoCollection[T any, PT docPtr[T]] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any, PT docPtr[T]](coll *mongo.Collection) *MongoCollection[T, PT] {
	return &MongoCollection[T, PT]{coll: coll}
}

func (c *MongoCollection[T, PT]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var out T
	err := c.coll.FindOne(ctx, bsonFilter(filter)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", c.coll.Name(), err)
	}
	return &out, nil
}

func (c *MongoCollection[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	var zero T
	if PT(&doc).GetID() == "" {
		PT(&doc).SetID(primitive.NewObjectID().Hex())
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, fmt.Errorf("insert into %s: %w", c.coll.Name(), ErrDuplicateKey)
		}
		return zero, fmt.Errorf("insert into %s: %w", c.coll.Name(), err)
	}
	return doc, nil
}

func (c *MongoCollection[T, PT]) FindOneAndUpdate(ctx context.Context, filter Filter, update Filter) (*T, error) {
	if len(update) == 0 {
		return c.FindOne(ctx, filter)
	}

	var out T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := c.coll.FindOneAndUpdate(ctx, bsonFilter(filter), bson.M{"$set": bson.M(update)}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("update in %s: %w", c.coll.Name(), ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update in %s: %w", c.coll.Name(), err)
	}
	return &out, nil
}

func (c *MongoCollection[T, PT]) FindOneAndDelete(ctx context.Context, filter Filter) (*T, error) {
	var out T
	err := c.coll.FindOneAndDelete(ctx, bsonFilter(filter)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", c.coll.Name(), err)
	}
	return &out, nil
}

func (c *MongoCollection[T, PT]) Find(ctx context.Context, filter Filter, sortField string) ([]T, error) {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: 1}})
	}

	cur, err := c.coll.Find(ctx, bsonFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.coll.Name(), err)
	}

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("read cursor of %s: %w", c.coll.Name(), err)
	}
	return out, nil
}

func bsonFilter(f Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}
