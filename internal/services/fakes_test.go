package services

import (
	"context"

	"chatboard/internal/repository"
)

// faultyCollection delegates to next unless the matching func field is set.
type faultyCollection[T any] struct {
	next repository.Collection[T]

	FindOneFunc          func(ctx context.Context, filter repository.Filter) (*T, error)
	CreateFunc           func(ctx context.Context, doc T) (T, error)
	FindOneAndUpdateFunc func(ctx context.Context, filter, update repository.Filter) (*T, error)
	FindOneAndDeleteFunc func(ctx context.Context, filter repository.Filter) (*T, error)
	FindFunc             func(ctx context.Context, filter repository.Filter, sortField string) ([]T, error)
}

func (c *faultyCollection[T]) FindOne(ctx context.Context, filter repository.Filter) (*T, error) {
	if c.FindOneFunc != nil {
		return c.FindOneFunc(ctx, filter)
	}
	return c.next.FindOne(ctx, filter)
}

func (c *faultyCollection[T]) Create(ctx context.Context, doc T) (T, error) {
	if c.CreateFunc != nil {
		return c.CreateFunc(ctx, doc)
	}
	return c.next.Create(ctx, doc)
}

func (c *faultyCollection[T]) FindOneAndUpdate(ctx context.Context, filter, update repository.Filter) (*T, error) {
	if c.FindOneAndUpdateFunc != nil {
		return c.FindOneAndUpdateFunc(ctx, filter, update)
	}
	return c.next.FindOneAndUpdate(ctx, filter, update)
}

func (c *faultyCollection[T]) FindOneAndDelete(ctx context.Context, filter repository.Filter) (*T, error) {
	if c.FindOneAndDeleteFunc != nil {
		return c.FindOneAndDeleteFunc(ctx, filter)
	}
	return c.next.FindOneAndDelete(ctx, filter)
}

func (c *faultyCollection[T]) Find(ctx context.Context, filter repository.Filter, sortField string) ([]T, error) {
	if c.FindFunc != nil {
		return c.FindFunc(ctx, filter, sortField)
	}
	return c.next.Find(ctx, filter, sortField)
}
