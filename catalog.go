/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/suparena/aliasstore/errors"
)

// Catalog is a thread-safe collection of named stores.
// Stores of different value types can live side by side; the typed helpers
// below check the value type on retrieval.
type Catalog struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewCatalog creates and returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		stores: make(map[string]any),
	}
}

// RegisterStore stores s under name.
func RegisterStore[V any](c *Catalog, name string, s *Store[V]) error {
	if s == nil {
		return errors.NewValidationError("store", "cannot register a nil store")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.stores[name]; exists {
		return errors.NewAlreadyExistsError("store", name)
	}
	c.stores[name] = s
	return nil
}

// GetStore retrieves the store registered under name. It fails if the
// store holds a different value type.
func GetStore[V any](c *Catalog, name string) (*Store[V], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, exists := c.stores[name]
	if !exists {
		return nil, errors.NewNotFoundError("store", name)
	}
	s, ok := raw.(*Store[V])
	if !ok {
		var zero V
		return nil, errors.NewValidationError("store", fmt.Sprintf("store %q does not hold %T values", name, zero))
	}
	return s, nil
}

// RemoveStore deletes the store registered under name.
func (c *Catalog) RemoveStore(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.stores[name]; !exists {
		return errors.NewNotFoundError("store", name)
	}
	delete(c.stores, name)
	return nil
}

// ListStores returns all registered store names, sorted.
func (c *Catalog) ListStores() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.stores))
}
