package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is a process-local Collection. Documents are kept as BSON maps
// so filters, updates and sorts address the same field names as the MongoDB backend.
type MemoryCollection[T any, PT docPtr[T]] struct {
	mu     sync.RWMutex
	docs   []bson.M
	unique []string
}

// NewMemoryCollection creates an empty collection enforcing uniqueness on the given fields.
func NewMemoryCollection[T any, PT docPtr[T]](uniqueFields ...string) *MemoryCollection[T, PT] {
	return &MemoryCollection[T, PT]{unique: uniqueFields}
}

func (c *MemoryCollection[T, PT]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := toDocument(filter)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(f)
	if idx < 0 {
		return nil, nil
	}
	return fromDocument[T](c.docs[idx])
}

func (c *MemoryCollection[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if PT(&doc).GetID() == "" {
		PT(&doc).SetID(primitive.NewObjectID().Hex())
	}
	d, err := toDocument(doc)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(bson.M{"_id": d["_id"]}) >= 0 || c.violatesUnique(d, -1) {
		return zero, ErrDuplicateKey
	}
	c.docs = append(c.docs, d)

	out, err := fromDocument[T](d)
	if err != nil {
		return zero, err
	}
	return *out, nil
}

func (c *MemoryCollection[T, PT]) FindOneAndUpdate(ctx context.Context, filter Filter, update Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := toDocument(filter)
	if err != nil {
		return nil, err
	}
	u, err := toDocument(update)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(f)
	if idx < 0 {
		return nil, nil
	}

	next := make(bson.M, len(c.docs[idx]))
	for k, v := range c.docs[idx] {
		next[k] = v
	}
	for k, v := range u {
		if k == "_id" {
			continue
		}
		next[k] = v
	}
	if c.violatesUnique(next, idx) {
		return nil, ErrDuplicateKey
	}
	c.docs[idx] = next
	return fromDocument[T](next)
}

func (c *MemoryCollection[T, PT]) FindOneAndDelete(ctx context.Context, filter Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := toDocument(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(f)
	if idx < 0 {
		return nil, nil
	}
	removed := c.docs[idx]
	c.docs = append(c.docs[:idx], c.docs[idx+1:]...)
	return fromDocument[T](removed)
}

func (c *MemoryCollection[T, PT]) Find(ctx context.Context, filter Filter, sortField string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := toDocument(filter)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	matched := make([]bson.M, 0, len(c.docs))
	for _, d := range c.docs {
		if matches(d, f) {
			matched = append(matched, d)
		}
	}
	c.mu.RUnlock()

	if sortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessValue(matched[i][sortField], matched[j][sortField])
		})
	}

	out := make([]T, 0, len(matched))
	for _, d := range matched {
		v, err := fromDocument[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// indexOf must be called with c.mu held.
func (c *MemoryCollection[T, PT]) indexOf(filter bson.M) int {
	for i, d := range c.docs {
		if matches(d, filter) {
			return i
		}
	}
	return -1
}

// violatesUnique must be called with c.mu held. skip is the index of the document being replaced.
func (c *MemoryCollection[T, PT]) violatesUnique(d bson.M, skip int) bool {
	for _, field := range c.unique {
		value, ok := d[field]
		if !ok {
			continue
		}
		for i, other := range c.docs {
			if i != skip && reflect.DeepEqual(other[field], value) {
				return true
			}
		}
	}
	return false
}

func matches(d, filter bson.M) bool {
	for k, want := range filter {
		got, ok := d[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// lessValue orders the scalar types a BSON round trip produces. Missing values sort first.
func lessValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	switch av := a.(type) {
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toDocument(v any) (bson.M, error) {
	if f, ok := v.(Filter); ok {
		if len(f) == 0 {
			return bson.M{}, nil
		}
		v = map[string]any(f)
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return d, nil
}

func fromDocument[T any](d bson.M) (*T, error) {
	raw, err := bson.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}
