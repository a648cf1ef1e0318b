/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/suparena/aliasstore/errors"
)

// CurrentManifestVersion is the manifest version written by default.
const CurrentManifestVersion = "1"

// Manifest is the seed document for a store: its origin entries in order and
// the aliases to register against them.
type Manifest[V any] struct {
	// Version of the manifest layout. Empty means CurrentManifestVersion.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Updated is an optional RFC 3339 timestamp of the last edit.
	Updated *strfmt.DateTime `json:"updated,omitempty" yaml:"updated,omitempty"`
	// Origins maps each origin key to its value; document order is kept.
	Origins *orderedmap.OrderedMap[string, V] `json:"origins" yaml:"origins"`
	// Aliases maps an origin key to the aliases registered against it.
	Aliases *orderedmap.OrderedMap[string, []string] `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// NewManifest returns an empty manifest at the current version.
func NewManifest[V any]() *Manifest[V] {
	return &Manifest[V]{
		Version: CurrentManifestVersion,
		Origins: orderedmap.New[string, V](),
		Aliases: orderedmap.New[string, []string](),
	}
}

// Normalize fills in defaults left out of a decoded document.
func (m *Manifest[V]) Normalize() {
	if m.Version == "" {
		m.Version = CurrentManifestVersion
	}
	if m.Origins == nil {
		m.Origins = orderedmap.New[string, V]()
	}
	if m.Aliases == nil {
		m.Aliases = orderedmap.New[string, []string]()
	}
}

// Validate checks the manifest against the rules a store enforces when it is
// seeded: at least one origin, alias groups only for declared keys.
func (m *Manifest[V]) Validate() error {
	if m.Version != CurrentManifestVersion {
		return errors.NewValidationError("version", fmt.Sprintf("unsupported manifest version %q", m.Version))
	}
	if m.Origins == nil || m.Origins.Len() == 0 {
		return errors.NewValidationError("origins", "at least one origin key is required")
	}
	if m.Aliases == nil {
		return nil
	}

	declared := make(map[string]bool, m.Origins.Len())
	for pair := m.Origins.Oldest(); pair != nil; pair = pair.Next() {
		declared[pair.Key] = true
	}
	for pair := m.Aliases.Oldest(); pair != nil; pair = pair.Next() {
		if !declared[pair.Key] {
			return errors.NewValidationError("aliases", fmt.Sprintf("alias group for undeclared origin %q", pair.Key))
		}
		if len(pair.Value) == 0 {
			return errors.NewValidationError("aliases", fmt.Sprintf("empty alias group for %q", pair.Key))
		}
	}
	return nil
}
