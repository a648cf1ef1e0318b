/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the seed.Supplier interface for testing
package mock

import (
	"context"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/suparena/aliasstore/storagemodels"
)

// Supplier is a mock implementation of seed.Supplier[V] for testing
type Supplier[V any] struct {
	mu        sync.RWMutex
	manifest  *storagemodels.Manifest[V]
	supplyErr error
	calls     int
}

// New creates a new mock Supplier with an empty manifest
func New[V any]() *Supplier[V] {
	return &Supplier[V]{
		manifest: storagemodels.NewManifest[V](),
	}
}

// WithOrigin appends an origin entry to the manifest
func (m *Supplier[V]) WithOrigin(key string, value V) *Supplier[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manifest.Origins.Set(key, value)
	return m
}

// WithAliases appends aliases to the group of origin
func (m *Supplier[V]) WithAliases(origin string, aliases ...string) *Supplier[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, _ := m.manifest.Aliases.Get(origin)
	m.manifest.Aliases.Set(origin, append(existing, aliases...))
	return m
}

// WithManifest replaces the whole manifest
func (m *Supplier[V]) WithManifest(manifest *storagemodels.Manifest[V]) *Supplier[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manifest = manifest
	return m
}

// WithSupplyError makes Supply return an error
func (m *Supplier[V]) WithSupplyError(err error) *Supplier[V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.supplyErr = err
	return m
}

// Supply returns a copy of the configured manifest
func (m *Supplier[V]) Supply(ctx context.Context) (*storagemodels.Manifest[V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.supplyErr != nil {
		return nil, m.supplyErr
	}
	if m.manifest == nil {
		return nil, nil
	}
	return copyManifest(m.manifest), nil
}

// Helper methods for testing

// Calls returns how many times Supply was called
func (m *Supplier[V]) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Reset clears the manifest, the injected error and the call counter
func (m *Supplier[V]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manifest = storagemodels.NewManifest[V]()
	m.supplyErr = nil
	m.calls = 0
}

func copyManifest[V any](src *storagemodels.Manifest[V]) *storagemodels.Manifest[V] {
	dst := &storagemodels.Manifest[V]{
		Version: src.Version,
		Updated: src.Updated,
	}
	if src.Origins != nil {
		dst.Origins = orderedmap.New[string, V]()
		for pair := src.Origins.Oldest(); pair != nil; pair = pair.Next() {
			dst.Origins.Set(pair.Key, pair.Value)
		}
	}
	if src.Aliases != nil {
		dst.Aliases = orderedmap.New[string, []string]()
		for pair := src.Aliases.Oldest(); pair != nil; pair = pair.Next() {
			dst.Aliases.Set(pair.Key, append([]string(nil), pair.Value...))
		}
	}
	return dst
}
