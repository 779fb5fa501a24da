package repository

import (
	"context"
	"fmt"

	"chatboard/internal/domain/message"
	"chatboard/internal/domain/user"
	chatboard_errors "chatboard/pkg/errors"
)

// ErrDuplicateKey is returned by Create and FindOneAndUpdate when a unique index rejects the write.
var ErrDuplicateKey = fmt.Errorf("duplicate key: %w", chatboard_errors.ErrAlreadyExists)

// Filter is a field-equality predicate keyed by document field name,
// e.g. Filter{"username": "alice"}. An empty filter matches every document.
type Filter map[string]any

// Document is implemented by pointers to stored entities so a backend can assign identity.
type Document interface {
	GetID() string
	SetID(id string)
}

type docPtr[T any] interface {
	*T
	Document
}

// Collection is the document-store contract shared by every backend.
// Lookups that match nothing return (nil, nil); only store faults return an error.
type Collection[T any] interface {
	FindOne(ctx context.Context, filter Filter) (*T, error)
	Create(ctx context.Context, doc T) (T, error)
	FindOneAndUpdate(ctx context.Context, filter Filter, update Filter) (*T, error)
	FindOneAndDelete(ctx context.Context, filter Filter) (*T, error)
	Find(ctx context.Context, filter Filter, sortField string) ([]T, error)
}

type UserRepository = Collection[user.User]

type MessageRepository = Collection[message.Message]
