package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"
)

// Sentinel errors shared by every repository. Handlers map these to HTTP
// status codes with errors.Is.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
)

// Repository is the persistence contract shared by every resource type.
// All operations touch exactly one logical resource; there are no
// multi-document transactions.
type Repository[T any] interface {
	GetAll() ([]T, error)
	GetByID(id int64) (*T, error)
	Create(entity *T) error
	Update(id int64, fields map[string]interface{}) error
	Delete(id int64) error
}

// GormRepository is the gorm-backed Repository implementation. Domain
// repositories embed it and add their own finders.
type GormRepository[T any] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over the collection mapped by T.
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// GetAll returns every stored resource in natural store order.
func (r *GormRepository[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	return entities, nil
}

// GetByID returns the resource with the given id, or ErrNotFound.
func (r *GormRepository[T]) GetByID(id int64) (*T, error) {
	entity := new(T)
	if err := r.db.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch record %d: %w", id, err)
	}
	return entity, nil
}

// Create inserts a new resource. The id must already be assigned; inserting
// an existing id fails with ErrDuplicateID.
func (r *GormRepository[T]) Create(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update merges the given fields into the stored resource. Fields not named
// in the map are left untouched; an absent id yields ErrNotFound, never an
// insert.
func (r *GormRepository[T]) Update(id int64, fields map[string]interface{}) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	assignments, err := encodeDocumentFields(fields)
	if err != nil {
		return fmt.Errorf("failed to update record %d: %w", id, err)
	}
	if err := r.db.Model(new(T)).Where("id = ?", id).Updates(assignments).Error; err != nil {
		return fmt.Errorf("failed to update record %d: %w", id, err)
	}
	return nil
}

// encodeDocumentFields JSON-encodes map, slice and struct values in a field
// map. Map-based Updates skips gorm's field serializers, so document-shaped
// values must reach the driver as text. Scalars, byte slices and time values
// pass through untouched.
func encodeDocumentFields(fields map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		rv := reflect.ValueOf(value)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				break
			}
			rv = rv.Elem()
		}

		switch rv.Kind() {
		case reflect.Map, reflect.Slice, reflect.Struct:
			if _, ok := value.([]byte); ok {
				out[name] = value
				continue
			}
			if _, ok := value.(time.Time); ok {
				out[name] = value
				continue
			}
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("cannot encode field %q: %w", name, err)
			}
			out[name] = string(raw)
		default:
			out[name] = value
		}
	}
	return out, nil
}

// Delete removes the resource with the given id, or returns ErrNotFound.
// Deleting twice is safe: the second call reports ErrNotFound.
func (r *GormRepository[T]) Delete(id int64) error {
	res := r.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
