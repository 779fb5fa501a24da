package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCollection is a Collection backed by one SQL table.
// Document field names in filters are mapped to columns through the db naming strategy.
type GormCollection[T any, PT docPtr[T]] struct {
	db *gorm.DB
}

func NewGormCollection[T any, PT docPtr[T]](db *gorm.DB) *GormCollection[T, PT] {
	return &GormCollection[T, PT]{db: db}
}

func (c *GormCollection[T, PT]) where(tx *gorm.DB, filter Filter) *gorm.DB {
	if len(filter) == 0 {
		return tx
	}
	return tx.Where(toColumns(c.db.NamingStrategy, filter))
}

func (c *GormCollection[T, PT]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var out T
	err := c.where(c.db.WithContext(ctx), filter).First(&out).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one: %w", err)
	}
	return &out, nil
}

func (c *GormCollection[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	var zero T
	if PT(&doc).GetID() == "" {
		PT(&doc).SetID(uuid.NewString())
	}
	res := c.db.WithContext(ctx).Create(PT(&doc))
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return zero, fmt.Errorf("create: %w", ErrDuplicateKey)
		}
		return zero, fmt.Errorf("create: %w", res.Error)
	}
	return doc, nil
}

// FindOneAndUpdate locks the matched row so the update applies to exactly the document it found.
func (c *GormCollection[T, PT]) FindOneAndUpdate(ctx context.Context, filter Filter, update Filter) (*T, error) {
	var out *T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		err := c.where(tx.Clauses(clause.Locking{Strength: "UPDATE"}), filter).First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if len(update) > 0 {
			if err := tx.Model(PT(&current)).Updates(toColumns(c.db.NamingStrategy, update)).Error; err != nil {
				return err
			}
		}

		var updated T
		if err := tx.Where("id = ?", PT(&current).GetID()).First(&updated).Error; err != nil {
			return err
		}
		out = &updated
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update: %w", err)
	}
	return out, nil
}

func (c *GormCollection[T, PT]) FindOneAndDelete(ctx context.Context, filter Filter) (*T, error) {
	var out *T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		err := c.where(tx.Clauses(clause.Locking{Strength: "UPDATE"}), filter).First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(PT(&current)).Error; err != nil {
			return err
		}
		out = &current
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("delete: %w", err)
	}
	return out, nil
}

func (c *GormCollection[T, PT]) Find(ctx context.Context, filter Filter, sortField string) ([]T, error) {
	q := c.where(c.db.WithContext(ctx), filter)
	if sortField != "" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: columnName(c.db.NamingStrategy, sortField)}})
	}

	out := make([]T, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	return out, nil
}
