/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package aliasmap

import (
	stderrors "errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/suparena/aliasstore/errors"
)

// Pair is a key and the value it resolves to.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// AliasGroup is an origin key together with the aliases registered against it.
type AliasGroup[K comparable] struct {
	Origin  K
	Aliases []K
}

// Map is an insertion-ordered map in which alias keys resolve to the value of
// an origin key. A Map is not safe for concurrent use; see aliasstore.Store.
type Map[K comparable, V any] struct {
	// every visible key, origin and alias, in insertion order
	values *orderedmap.OrderedMap[K, V]
	// alias -> origin; never chains
	aliasOf map[K]K
	// alias creation order, untouched by redirection
	aliasOrder *orderedmap.OrderedMap[K, struct{}]
}

// New creates a Map seeded with origin keys in the given order.
func New[K comparable, V any](seed ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		values:     orderedmap.New[K, V](),
		aliasOf:    make(map[K]K),
		aliasOrder: orderedmap.New[K, struct{}](),
	}
	for _, p := range seed {
		m.values.Set(p.Key, p.Value)
	}
	return m
}

// Len returns the number of keys, origin and alias.
func (m *Map[K, V]) Len() int {
	return m.values.Len()
}

// Get returns the value a key resolves to.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.values.Get(key)
}

// GetOr returns the value a key resolves to, or def if the key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.values.Get(key); ok {
		return v
	}
	return def
}

// Contains reports whether key is present as an origin or an alias.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.values.Get(key)
	return ok
}

// IsAlias reports whether key is a registered alias.
func (m *Map[K, V]) IsAlias(key K) bool {
	_, ok := m.aliasOf[key]
	return ok
}

// OriginOf returns the origin key that key resolves through. An origin key
// resolves to itself.
func (m *Map[K, V]) OriginOf(key K) (K, bool) {
	if origin, ok := m.aliasOf[key]; ok {
		return origin, true
	}
	if m.Contains(key) {
		return key, true
	}
	var zero K
	return zero, false
}

// Set assigns value to key. A new key becomes an origin key appended to the
// end of the order. Assigning to an existing origin or to one of its aliases
// updates the origin and every alias of it, keeping all positions.
func (m *Map[K, V]) Set(key K, value V) {
	if origin, ok := m.aliasOf[key]; ok {
		key = origin
	}
	m.values.Set(key, value)
	for _, alias := range m.AliasesOf(key) {
		m.values.Set(alias, value)
	}
}

// AddAlias registers each alias against origin. origin may itself be an
// alias, in which case the new aliases point at its origin key.
//
// A missing origin fails the whole call with a KeyNotFoundError. Otherwise
// every alias is processed in order: an alias equal to origin or naming an
// existing origin key is rejected with an InvalidAliasError, a new alias is
// appended to the key order, and an existing alias is redirected in place.
// Rejections are joined into the returned error.
func (m *Map[K, V]) AddAlias(origin K, aliases ...K) error {
	target, ok := m.OriginOf(origin)
	if !ok {
		return errors.NewKeyNotFoundError(origin)
	}
	value, _ := m.values.Get(target)

	var errs []error
	for _, alias := range aliases {
		switch {
		case alias == origin:
			errs = append(errs, errors.NewInvalidAliasError(origin, alias, errors.ReasonSelfAlias))
		case m.isOrigin(alias):
			errs = append(errs, errors.NewInvalidAliasError(origin, alias, errors.ReasonOriginClash))
		default:
			if _, exists := m.aliasOf[alias]; !exists {
				m.aliasOrder.Set(alias, struct{}{})
			}
			m.aliasOf[alias] = target
			m.values.Set(alias, value)
		}
	}
	return stderrors.Join(errs...)
}

// RemoveAlias removes each alias. Keys that are not registered aliases are
// reported with an AliasNotFoundError and skipped; the rest are removed.
func (m *Map[K, V]) RemoveAlias(aliases ...K) error {
	var errs []error
	for _, alias := range aliases {
		if !m.IsAlias(alias) {
			errs = append(errs, errors.NewAliasNotFoundError(alias))
			continue
		}
		m.dropAlias(alias)
	}
	return stderrors.Join(errs...)
}

// Pop removes key and returns its value. Popping an origin key also removes
// every alias pointing at it; popping an alias removes only that alias.
func (m *Map[K, V]) Pop(key K) (V, error) {
	value, ok := m.values.Get(key)
	if !ok {
		var zero V
		return zero, errors.NewKeyNotFoundError(key)
	}

	if m.IsAlias(key) {
		m.dropAlias(key)
		return value, nil
	}

	for _, alias := range m.AliasesOf(key) {
		m.dropAlias(alias)
	}
	m.values.Delete(key)
	return value, nil
}

// Clear removes every key.
func (m *Map[K, V]) Clear() {
	m.values = orderedmap.New[K, V]()
	m.aliasOf = make(map[K]K)
	m.aliasOrder = orderedmap.New[K, struct{}]()
}

// Clone returns a copy with the same keys, values, and alias bookkeeping.
// Values themselves are not copied.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V]()
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		c.values.Set(pair.Key, pair.Value)
	}
	for pair := m.aliasOrder.Oldest(); pair != nil; pair = pair.Next() {
		c.aliasOrder.Set(pair.Key, struct{}{})
		c.aliasOf[pair.Key] = m.aliasOf[pair.Key]
	}
	return c
}

// Iter yields every key in insertion order. The map must not be modified
// during iteration.
func (m *Map[K, V]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// All yields every key with its resolved value in insertion order. The map
// must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns every key, origin and alias, in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the values of origin keys only, in origin key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.values.Len()-len(m.aliasOf))
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if !m.IsAlias(pair.Key) {
			values = append(values, pair.Value)
		}
	}
	return values
}

// Items returns every key with its resolved value in insertion order.
func (m *Map[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Pair[K, V]{Key: pair.Key, Value: pair.Value})
	}
	return items
}

// OriginKeys returns the keys that are not aliases, in insertion order.
func (m *Map[K, V]) OriginKeys() []K {
	keys := make([]K, 0, m.values.Len()-len(m.aliasOf))
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if !m.IsAlias(pair.Key) {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}

// Aliases returns every alias in creation order, regardless of origin.
func (m *Map[K, V]) Aliases() []K {
	aliases := make([]K, 0, m.aliasOrder.Len())
	for pair := m.aliasOrder.Oldest(); pair != nil; pair = pair.Next() {
		aliases = append(aliases, pair.Key)
	}
	return aliases
}

// AliasesOf returns the aliases of origin in creation order, not in the
// order they were pointed at origin.
func (m *Map[K, V]) AliasesOf(origin K) []K {
	var aliases []K
	for pair := m.aliasOrder.Oldest(); pair != nil; pair = pair.Next() {
		if m.aliasOf[pair.Key] == origin {
			aliases = append(aliases, pair.Key)
		}
	}
	return aliases
}

// AliasedKeys returns one group per origin key that has at least one alias,
// in origin key order. Each group lists its aliases in creation order; an
// alias redirected from another origin keeps the slot it was first created in.
func (m *Map[K, V]) AliasedKeys() []AliasGroup[K] {
	byOrigin := make(map[K][]K)
	for pair := m.aliasOrder.Oldest(); pair != nil; pair = pair.Next() {
		origin := m.aliasOf[pair.Key]
		byOrigin[origin] = append(byOrigin[origin], pair.Key)
	}

	groups := make([]AliasGroup[K], 0, len(byOrigin))
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if aliases, ok := byOrigin[pair.Key]; ok {
			groups = append(groups, AliasGroup[K]{Origin: pair.Key, Aliases: aliases})
		}
	}
	return groups
}

// Equal reports whether both maps expose the same keys with deeply equal
// values. Order and alias bookkeeping are ignored.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	return m.EqualFunc(other, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// EqualFunc is like Equal but compares values with eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(V, V) bool) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || m.Len() != other.Len() {
		return false
	}
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		v, ok := other.values.Get(pair.Key)
		if !ok || !eq(pair.Value, v) {
			return false
		}
	}
	return true
}

// String renders every item in insertion order, e.g.
// AliasMap([(".yaml", {yaml safe_load r}), (".yml", {yaml safe_load r})]).
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("AliasMap([")
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Prev() != nil {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%#v, %v)", pair.Key, pair.Value)
	}
	b.WriteString("])")
	return b.String()
}

func (m *Map[K, V]) isOrigin(key K) bool {
	return m.Contains(key) && !m.IsAlias(key)
}

func (m *Map[K, V]) dropAlias(alias K) {
	m.values.Delete(alias)
	m.aliasOrder.Delete(alias)
	delete(m.aliasOf, alias)
}
