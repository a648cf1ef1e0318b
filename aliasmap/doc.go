/*
Package aliasmap provides an insertion-ordered map whose keys come in two
classes: origin keys, which own a value, and alias keys, which resolve to the
value of an origin key.

A typical use is looking up one resource under several equivalent names
while keeping a single authoritative value:

	m := aliasmap.New(
	    aliasmap.Pair[string, Loader]{Key: ".json", Value: jsonLoader},
	    aliasmap.Pair[string, Loader]{Key: ".yaml", Value: yamlLoader},
	)
	_ = m.AddAlias(".yaml", ".yml")

	m.Keys()        // [.json .yaml .yml]
	m.Values()      // [jsonLoader yamlLoader], aliases suppressed
	m.AliasedKeys() // [{.yaml [.yml]}]

Ordering:
  - Keys, Items, All and Iter follow insertion order of every key.
  - Values and OriginKeys follow the same order but skip aliases.
  - Aliases follows alias creation order across all origins.
  - Redirecting an existing alias to another origin keeps both its key
    position and its creation position.

Removal:
  - RemoveAlias removes aliases only and reports anything else as
    AliasNotFound.
  - Pop on an origin key cascades to every alias of that origin.

Batches passed to AddAlias and RemoveAlias are processed best-effort: every
key is attempted and the failures come back joined in one error. Use the
helpers in the errors package to match them.

A Map is meant for single-goroutine use. Wrap it in aliasstore.Store when it
is shared.
*/
package aliasmap
