package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity is a list member keyed by an immutable id.
type Entity[T any] interface {
	Key() string
	With(field string, value any) (T, error)
}

// Add appends a blank entity built by newFn under a fresh id and returns the
// new list together with the entity. items is not modified.
func Add[T Entity[T]](items []T, newFn func(id string) T) ([]T, T) {
	id := newID(items)
	entity := newFn(id)
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, entity)
	return out, entity
}

// Update replaces one field of the entity with the given id. An unknown id
// yields an equal copy and no error; a rejected field or value yields the
// unchanged copy and a *FieldError.
func Update[T Entity[T]](items []T, id, field string, value any) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)
	for i, item := range out {
		if item.Key() != id {
			continue
		}
		updated, err := item.With(field, value)
		if err != nil {
			return out, err
		}
		out[i] = updated
		break
	}
	return out, nil
}

// Remove drops the entity with the given id, keeping survivor order.
func Remove[T Entity[T]](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() != id {
			out = append(out, item)
		}
	}
	return out
}

// Find returns the entity with the given id.
func Find[T Entity[T]](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// CheckIDs rejects empty or repeated ids inside one collection.
func CheckIDs[T Entity[T]](kind string, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		id := item.Key()
		if id == "" {
			return fmt.Errorf("%s[%d]: empty id", kind, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s[%d]: duplicate id %q", kind, i, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func newID[T Entity[T]](items []T) string {
	for {
		id := uuid.NewString()
		if _, taken := Find(items, id); !taken {
			return id
		}
	}
}
