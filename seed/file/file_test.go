/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package file_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/aliasstore/errors"
	"github.com/suparena/aliasstore/seed/file"
	"github.com/suparena/aliasstore/storagemodels"
)

type loader struct {
	ImportMod string `json:"import_mod" yaml:"import_mod"`
	Callable  string `json:"callable" yaml:"callable"`
	ReadMode  string `json:"read_mode" yaml:"read_mode"`
}

const loadersYAML = `version: "1"
updated: "2025-06-01T10:00:00Z"
origins:
  .toml: {import_mod: tomli, callable: load, read_mode: r}
  .json: {import_mod: json, callable: load, read_mode: r}
  .yaml: {import_mod: yaml, callable: safe_load, read_mode: r}
aliases:
  .yaml: [.yml]
  .toml: [.tml, .tommy]
`

const loadersJSON = `{
  "origins": {
    ".yaml": {"import_mod": "yaml", "callable": "safe_load", "read_mode": "r"},
    ".json": {"import_mod": "json", "callable": "load", "read_mode": "r"}
  },
  "aliases": {".yaml": [".yml"]}
}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func originKeys[V any](m *storagemodels.Manifest[V]) []string {
	var keys []string
	for pair := m.Origins.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func TestSupplyYAML(t *testing.T) {
	path := writeFile(t, "loaders.yaml", []byte(loadersYAML))

	m, err := file.New[loader](path).Supply(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, []string{".toml", ".json", ".yaml"}, originKeys(m))

	yml, ok := m.Aliases.Get(".yaml")
	require.True(t, ok)
	assert.Equal(t, []string{".yml"}, yml)

	toml, ok := m.Origins.Get(".toml")
	require.True(t, ok)
	assert.Equal(t, loader{ImportMod: "tomli", Callable: "load", ReadMode: "r"}, toml)

	require.NotNil(t, m.Updated)
	assert.True(t, time.Time(*m.Updated).Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))
}

func TestSupplyJSON(t *testing.T) {
	path := writeFile(t, "loaders.json", []byte(loadersJSON))

	m, err := file.New[loader](path).Supply(context.Background())
	require.NoError(t, err)

	// version defaults when omitted
	assert.Equal(t, storagemodels.CurrentManifestVersion, m.Version)
	assert.Equal(t, []string{".yaml", ".json"}, originKeys(m))
	assert.Nil(t, m.Updated)
}

func TestSupplyEnv(t *testing.T) {
	doc := "toml=tomli\n" +
		"json=json\n" +
		"yaml=yaml\n" +
		"ALIAS_yaml=yml\n" +
		"ALIAS_toml=tml,tommy\n"
	path := writeFile(t, ".env", []byte(doc))

	m, err := file.New[string](path).Supply(context.Background())
	require.NoError(t, err)

	assert.Equal(t, storagemodels.CurrentManifestVersion, m.Version)
	assert.Equal(t, []string{"toml", "json", "yaml"}, originKeys(m))

	toml, ok := m.Aliases.Get("toml")
	require.True(t, ok)
	assert.Equal(t, []string{"tml", "tommy"}, toml)

	t.Run("UndeclaredAliasOrigin", func(t *testing.T) {
		path := writeFile(t, "loaders.env", []byte("json=json\nALIAS_yaml=yml\n"))

		_, err := file.New[string](path).Supply(context.Background())
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("Empty", func(t *testing.T) {
		path := writeFile(t, "loaders.env", []byte("# nothing here\n"))

		_, err := file.New[string](path).Supply(context.Background())
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSupplyCompressed(t *testing.T) {
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write([]byte(loadersYAML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var zst bytes.Buffer
	enc, err := zstd.NewWriter(&zst)
	require.NoError(t, err)
	_, err = enc.Write([]byte(loadersJSON))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	tests := []struct {
		name string
		data []byte
		keys []string
	}{
		{name: "loaders.yml.gz", data: gz.Bytes(), keys: []string{".toml", ".json", ".yaml"}},
		{name: "loaders.json.zstd", data: zst.Bytes(), keys: []string{".yaml", ".json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.data)

			m, err := file.New[loader](path).Supply(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.keys, originKeys(m))
		})
	}
}

func TestSupplyErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFile", func(t *testing.T) {
		_, err := file.New[loader](filepath.Join(t.TempDir(), "nope.yaml")).Supply(ctx)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, os.ErrNotExist))
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		path := writeFile(t, "loaders.toml", []byte("x = 1"))

		_, err := file.New[loader](path).Supply(ctx)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		path := writeFile(t, "loaders.yaml", nil)

		_, err := file.New[loader](path).Supply(ctx)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("NoOrigins", func(t *testing.T) {
		path := writeFile(t, "loaders.yaml", []byte("version: \"1\"\norigins: {}\n"))

		_, err := file.New[loader](path).Supply(ctx)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("UndeclaredAliasOrigin", func(t *testing.T) {
		doc := "origins:\n  .json: {import_mod: json}\naliases:\n  .yaml: [.yml]\n"
		path := writeFile(t, "loaders.yaml", []byte(doc))

		_, err := file.New[loader](path).Supply(ctx)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), ".yaml")
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		doc := "version: \"2\"\norigins:\n  .json: {import_mod: json}\n"
		path := writeFile(t, "loaders.yaml", []byte(doc))

		_, err := file.New[loader](path).Supply(ctx)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, "loaders.json", []byte(`{"origins": [`))

		_, err := file.New[loader](path).Supply(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse json manifest")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		path := writeFile(t, "loaders.yaml", []byte(loadersYAML))
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := file.New[loader](path).Supply(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeUsesNameForFormat(t *testing.T) {
	m, err := file.Decode[map[string]any](strings.NewReader(loadersJSON), "inline.JSON")
	require.NoError(t, err)
	assert.Equal(t, []string{".yaml", ".json"}, originKeys(m))
}
