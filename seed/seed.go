/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"

	"github.com/suparena/aliasstore/storagemodels"
)

// Supplier provides the manifest a store is seeded from.
type Supplier[V any] interface {
	Supply(ctx context.Context) (*storagemodels.Manifest[V], error)
}

// SupplierFunc adapts a function to the Supplier interface.
type SupplierFunc[V any] func(ctx context.Context) (*storagemodels.Manifest[V], error)

// Supply calls f(ctx).
func (f SupplierFunc[V]) Supply(ctx context.Context) (*storagemodels.Manifest[V], error) {
	return f(ctx)
}
