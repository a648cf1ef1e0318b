/*
Package processor implements the aliasmap command line tool.

The tool seeds an alias map from a manifest file and prints views of it.
The manifest is chosen with --manifest or the ALIASMAP_MANIFEST environment
variable; its format and optional compression follow the file extensions
registered in the registry package.

Manifest:

	version: "1"
	origins:
	  .toml: {import_mod: tomli, callable: load}
	  .yaml: {import_mod: yaml, callable: safe_load}
	aliases:
	  .yaml: [.yml]

Commands:

	aliasmap -m loaders.yaml keys          # .toml .yaml .yml
	aliasmap -m loaders.yaml groups        # .yaml: .yml
	aliasmap -m loaders.yaml resolve .yml  # .yml => .yaml: map[...]
	aliasmap -m loaders.yaml inspect .yml
	aliasmap formats
	aliasmap --version
*/
package processor
