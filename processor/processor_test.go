/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/aliasstore/errors"
)

const testManifest = `version: "1"
origins:
  .toml: {import_mod: tomli, callable: load}
  .json: {import_mod: json, callable: load}
  .yaml: {import_mod: yaml, callable: safe_load}
aliases:
  .toml: [.tml, .tommy]
  .yaml: [.yml]
`

func writeManifest(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "loaders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := Run(args, &out)
	return out.String(), err
}

func TestRunViews(t *testing.T) {
	manifest := writeManifest(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "keys",
			args: []string{"--manifest", manifest, "keys"},
			want: ".toml\n.json\n.yaml\n.tml\n.tommy\n.yml\n",
		},
		{
			name: "origins",
			args: []string{"-m", manifest, "origins"},
			want: ".toml\n.json\n.yaml\n",
		},
		{
			name: "aliases",
			args: []string{"-m", manifest, "aliases"},
			want: ".tml -> .toml\n.tommy -> .toml\n.yml -> .yaml\n",
		},
		{
			name: "groups",
			args: []string{"-m", manifest, "groups"},
			want: ".toml: .tml, .tommy\n.yaml: .yml\n",
		},
		{
			name: "resolve",
			args: []string{"-m", manifest, "resolve", ".yml", ".json"},
			want: ".yml => .yaml: map[callable:safe_load import_mod:yaml]\n" +
				".json => .json: map[callable:load import_mod:json]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunManifestFromEnv(t *testing.T) {
	t.Setenv("ALIASMAP_MANIFEST", writeManifest(t))

	out, err := run(t, "origins")
	require.NoError(t, err)
	assert.Equal(t, ".toml\n.json\n.yaml\n", out)
}

func TestRunResolveMissing(t *testing.T) {
	out, err := run(t, "-m", writeManifest(t), "resolve", ".tml", ".ini")
	require.Error(t, err)
	assert.True(t, errors.IsKeyNotFound(err))
	assert.Contains(t, out, ".tml => .toml")
}

func TestRunInspect(t *testing.T) {
	manifest := writeManifest(t)

	out, err := run(t, "-m", manifest, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "AliasedKeys")
	assert.Contains(t, out, `Origin: (string) (len=5) ".toml"`)

	out, err = run(t, "-m", manifest, "inspect", ".tommy")
	require.NoError(t, err)
	assert.Contains(t, out, `.tommy: `)
	assert.Contains(t, out, `"tomli"`)

	_, err = run(t, "-m", manifest, "inspect", ".ini")
	assert.True(t, errors.IsKeyNotFound(err))
}

func TestRunFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "formats:\n")
	assert.Contains(t, out, "  .yaml\tyaml\t(.yml)")
	assert.Contains(t, out, "codecs:\n")
	assert.Contains(t, out, ".zst")
}

func TestRunVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "AliasStore aliasmap version")
}

func TestRunErrors(t *testing.T) {
	t.Setenv("ALIASMAP_MANIFEST", "")

	t.Run("NoCommand", func(t *testing.T) {
		_, err := run(t)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("NoManifest", func(t *testing.T) {
		_, err := run(t, "keys")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("ResolveWithoutKeys", func(t *testing.T) {
		_, err := run(t, "-m", writeManifest(t), "resolve")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		_, err := run(t, "frobnicate")
		require.Error(t, err)
	})

	t.Run("Help", func(t *testing.T) {
		out, err := run(t, "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "resolve")
	})
}
