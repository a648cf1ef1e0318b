/*
Package registry maps file extensions to the formats and codecs AliasStore
uses to read seed manifests.

Both registries are alias maps, so one entry can be reached under several
extensions while only one value is kept.

Format Registry:
Maps a document extension to a decoder:

	registry.RegisterFormat(".toml", registry.Format{
	    Name:   "toml",
	    Decode: decodeTOML,
	})
	registry.RegisterFormatAlias(".toml", ".tml")

Built-in: .json, .yaml (alias .yml).

Codec Registry:
Maps a compression suffix to a decompressing reader:

	c, err := registry.LookupCodec(".zstd") // same codec as ".zst"
	rc, err := c.NewReader(file)

Built-in: .gz (alias .gzip), .zst (alias .zstd), .xz, .lz4.

Extensions are matched case-insensitively with a leading dot. The registries
are thread-safe and are normally populated during initialization, typically
in init() functions.
*/
package registry
