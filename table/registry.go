package table

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrTableNotFound is returned by Registry.Get for an unknown key.
	ErrTableNotFound = errors.New("table not found")
	// ErrDuplicateKey is returned when two tables share a URI key.
	ErrDuplicateKey = errors.New("duplicate table key")
)

// Registry indexes tables by URI key.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Register adds tables. Nothing is added when any key is already taken.
func (r *Registry) Register(tables ...*Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		if t == nil {
			return errors.New("register nil table")
		}
		if _, ok := r.tables[t.Key()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, t.Key())
		}
		if _, ok := seen[t.Key()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, t.Key())
		}
		seen[t.Key()] = struct{}{}
	}
	for _, t := range tables {
		r.tables[t.Key()] = t
	}
	return nil
}

// Get returns the table registered under key.
func (r *Registry) Get(key string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tables[key]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTableNotFound, key)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
