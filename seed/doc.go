/*
Package seed defines where a store's initial contents come from.

The main interface is Supplier[V], which hands out a manifest of origin
entries and alias groups:

	type Supplier[V any] interface {
	    Supply(ctx context.Context) (*storagemodels.Manifest[V], error)
	}

Implementations:
  - file: reads a YAML or JSON manifest from disk, optionally compressed
  - mock: in-memory supplier for testing

Origins are applied in manifest order, which becomes the key order of the
store, and alias groups are applied after all origins.
*/
package seed
