/*
Package aliasstore provides insertion-ordered maps whose entries can be reached
through alternative names, together with the plumbing to seed them from
manifest files and share them safely between goroutines.

The core type lives in the aliasmap package. This package wraps it for
concurrent use and groups named stores in a catalog:
  - Store: a mutex-guarded aliasmap.Map keyed by string
  - Catalog: named stores of any value type, retrieved with type checks
  - NewStoreFromSupplier: builds a store from a seed.Supplier manifest
  - Stream: channel-based iteration over a store snapshot

Basic Usage:

	// Build a store from a manifest on disk
	store, err := aliasstore.NewStoreFromSupplier[Loader](ctx, file.New[Loader]("loaders.yaml"))
	if err != nil {
		return err
	}

	// Aliases resolve to the value of their origin key
	store.AddAlias(".yaml", ".yml")
	loader, _ := store.Get(".yml")

	// Share it under a name
	catalog := aliasstore.NewCatalog()
	aliasstore.RegisterStore(catalog, "loaders", store)
	loaders, _ := aliasstore.GetStore[Loader](catalog, "loaders")

For more information, see the documentation at https://github.com/suparena/aliasstore
*/
package aliasstore
