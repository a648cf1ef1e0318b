/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package file provides a seed.Supplier that reads manifests from disk
package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/registry"
	"github.com/suparena/aliasstore/storagemodels"
)

// Supplier reads a manifest file. The format and optional compression are
// chosen from the file extensions, e.g. "loaders.yml.zst".
type Supplier[V any] struct {
	path string
}

// New creates a Supplier for the manifest at path
func New[V any](path string) *Supplier[V] {
	return &Supplier[V]{path: path}
}

// Path returns the manifest path
func (s *Supplier[V]) Path() string {
	return s.path
}

// Supply opens and decodes the manifest
func (s *Supplier[V]) Supply(ctx context.Context) (*storagemodels.Manifest[V], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", s.path, err)
	}
	defer f.Close()

	return Decode[V](f, s.path)
}

// Decode reads a manifest from r. name is only used for its extensions and
// in error messages.
func Decode[V any](r io.Reader, name string) (*storagemodels.Manifest[V], error) {
	formatExt, codecExt := registry.SplitExt(name)

	if codecExt != "" {
		codec, err := registry.LookupCodec(codecExt)
		if err != nil {
			return nil, err
		}
		rc, err := codec.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s stream %s: %w", codec.Name, name, err)
		}
		defer rc.Close()
		r = rc
	}

	format, err := registry.LookupFormat(formatExt)
	if err != nil {
		return nil, err
	}

	var m storagemodels.Manifest[V]
	if err := format.Decode(r, &m); err != nil {
		if err == io.EOF {
			return nil, errors.NewValidationError("", fmt.Sprintf("manifest %s is empty", name))
		}
		return nil, fmt.Errorf("failed to parse %s manifest %s: %w", format.Name, name, err)
	}

	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", name, err)
	}
	return &m, nil
}
