/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/suparena/aliasstore/aliasmap"
	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/seed"
	"github.com/suparena/aliasstore/storagemodels"
)

// Store is a thread-safe alias map keyed by string. Every operation holds the
// store lock for its whole duration, so batch alias calls are atomic with
// respect to other goroutines.
type Store[V any] struct {
	mu sync.RWMutex
	m  *aliasmap.Map[string, V]
}

// NewStore creates a Store seeded with origin keys in the given order
func NewStore[V any](seed ...aliasmap.Pair[string, V]) *Store[V] {
	return &Store[V]{
		m: aliasmap.New(seed...),
	}
}

// NewStoreFromSupplier builds a Store from the manifest a supplier returns.
// Origins are added in manifest order, then every alias group is registered.
// Any rejected alias fails the whole build.
func NewStoreFromSupplier[V any](ctx context.Context, s seed.Supplier[V]) (*Store[V], error) {
	manifest, err := s.Supply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to supply manifest: %w", err)
	}
	if manifest == nil {
		return nil, errors.NewValidationError("", "supplier returned no manifest")
	}

	manifest.Normalize()
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	m := aliasmap.New[string, V]()
	for pair := manifest.Origins.Oldest(); pair != nil; pair = pair.Next() {
		m.Set(pair.Key, pair.Value)
	}
	for pair := manifest.Aliases.Oldest(); pair != nil; pair = pair.Next() {
		if err := m.AddAlias(pair.Key, pair.Value...); err != nil {
			return nil, fmt.Errorf("failed to register aliases for %q: %w", pair.Key, err)
		}
	}

	return &Store[V]{m: m}, nil
}

// Get returns the value key resolves to
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

// GetOr returns the value key resolves to, or def
func (s *Store[V]) GetOr(key string, def V) V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.GetOr(key, def)
}

// Contains reports whether key is an origin or alias
func (s *Store[V]) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Contains(key)
}

// IsAlias reports whether key is a registered alias
func (s *Store[V]) IsAlias(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.IsAlias(key)
}

// OriginOf returns the origin key that key resolves through
func (s *Store[V]) OriginOf(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.OriginOf(key)
}

// Len returns the number of keys, origin and alias
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Set assigns value to key; see aliasmap.Map.Set
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Set(key, value)
}

// AddAlias registers aliases against origin; see aliasmap.Map.AddAlias
func (s *Store[V]) AddAlias(origin string, aliases ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.AddAlias(origin, aliases...)
}

// RemoveAlias removes aliases; see aliasmap.Map.RemoveAlias
func (s *Store[V]) RemoveAlias(aliases ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveAlias(aliases...)
}

// Pop removes key and returns its value; see aliasmap.Map.Pop
func (s *Store[V]) Pop(key string) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Pop(key)
}

// Keys returns every key in insertion order
func (s *Store[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Keys()
}

// Values returns the values of origin keys in order
func (s *Store[V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Values()
}

// Items returns every key with its resolved value
func (s *Store[V]) Items() []aliasmap.Pair[string, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Items()
}

// OriginKeys returns the keys that are not aliases
func (s *Store[V]) OriginKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.OriginKeys()
}

// Aliases returns every alias in creation order
func (s *Store[V]) Aliases() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Aliases()
}

// AliasedKeys returns the origin keys that have aliases, with their aliases
func (s *Store[V]) AliasedKeys() []aliasmap.AliasGroup[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.AliasedKeys()
}

// Snapshot returns an independent copy of the underlying map
func (s *Store[V]) Snapshot() *aliasmap.Map[string, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Clone()
}

// Equal compares the visible items of two stores
func (s *Store[V]) Equal(other *Store[V]) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.Snapshot().Equal(other.Snapshot())
}

func (s *Store[V]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.String()
}

// Stream delivers the items of a snapshot on a channel in key order. The
// channel is closed when the snapshot is exhausted or ctx is done.
func (s *Store[V]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[V] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.BufferSize < 0 {
		options.BufferSize = 0
	}

	snapshot := s.Snapshot()
	total := snapshot.Len()
	if options.OriginsOnly {
		total = len(snapshot.OriginKeys())
	}

	resultChan := make(chan storagemodels.StreamResult[V], options.BufferSize)

	go func() {
		defer close(resultChan)

		progress := storagemodels.StreamProgress{StartTime: time.Now()}
		for key, value := range snapshot.All() {
			alias := snapshot.IsAlias(key)
			if alias && options.OriginsOnly {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case resultChan <- storagemodels.StreamResult[V]{
				Key:   key,
				Value: value,
				Alias: alias,
				Meta: storagemodels.StreamMeta{
					Index:     progress.ItemsProcessed,
					Total:     total,
					Timestamp: time.Now(),
				},
			}:
				progress.ItemsProcessed++
				if options.ProgressHandler != nil {
					options.ProgressHandler(progress)
				}
			}
		}
	}()

	return resultChan
}
