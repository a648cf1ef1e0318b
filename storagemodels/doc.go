/*
Package storagemodels defines the data structures used throughout AliasStore.

Key Types:

Manifest:
The seed document a store is built from. Origins keep document order, which
becomes the key order of the store:

	version: "1"
	updated: "2025-06-01T10:00:00Z"
	origins:
	  .json: {import_mod: json, callable: load, read_mode: r}
	  .yaml: {import_mod: yaml, callable: safe_load, read_mode: r}
	  .toml: {import_mod: tomli, callable: load, read_mode: r}
	aliases:
	  .yaml: [.yml]

The same layout is accepted as JSON.

StreamResult:
Items delivered by Store.Stream:

	type StreamResult[V any] struct {
	    Key   string     // origin or alias key
	    Value V          // resolved value
	    Alias bool       // whether Key is an alias
	    Meta  StreamMeta // position in the snapshot
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(16),
	    WithOriginsOnly(),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
