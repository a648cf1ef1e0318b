/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/joho/godotenv"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EnvAliasPrefix marks a .env variable that lists aliases instead of an
// origin, e.g. ALIAS_.yaml=.yml,.yl
const EnvAliasPrefix = "ALIAS_"

// envDocument mirrors the origins and aliases sections of a manifest so a
// .env file decodes like any other format.
type envDocument struct {
	Origins *orderedmap.OrderedMap[string, string]   `json:"origins"`
	Aliases *orderedmap.OrderedMap[string, []string] `json:"aliases"`
}

// decodeEnv reads a .env file as a manifest. Every variable becomes an origin
// key with a string value, in document order, except ALIAS_<origin> variables
// which hold a comma separated alias group.
func decodeEnv(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return io.EOF
	}

	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return err
	}

	doc := envDocument{
		Origins: orderedmap.New[string, string](),
		Aliases: orderedmap.New[string, []string](),
	}
	for _, key := range envKeyOrder(data) {
		value, ok := values[key]
		if !ok {
			continue
		}
		if origin, found := strings.CutPrefix(key, EnvAliasPrefix); found {
			doc.Aliases.Set(origin, splitList(value))
			continue
		}
		doc.Origins.Set(key, value)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// envKeyOrder returns variable names in the order they first appear.
// godotenv hands back a plain map, so order is recovered from the source.
func envKeyOrder(data []byte) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		idx := strings.IndexAny(line, "=:")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
