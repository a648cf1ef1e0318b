/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/suparena/aliasstore/aliasmap"
	"github.com/suparena/aliasstore/errors"
)

// DecodeFunc decodes one document read from r into v.
type DecodeFunc func(r io.Reader, v any) error

// Format describes how to decode documents stored under a file extension.
type Format struct {
	Name   string
	Decode DecodeFunc
}

// Entry describes a registered extension, the name of what it maps to, and
// the aliases that resolve to it.
type Entry struct {
	Ext     string
	Name    string
	Aliases []string
}

var (
	formats  = aliasmap.New[string, Format]()
	formatMu sync.RWMutex
)

func init() {
	RegisterFormat(".json", Format{Name: "json", Decode: decodeJSON})
	RegisterFormat(".yaml", Format{Name: "yaml", Decode: decodeYAML})
	RegisterFormat(".env", Format{Name: "env", Decode: decodeEnv})
	if err := RegisterFormatAlias(".yaml", ".yml"); err != nil {
		panic(err)
	}
}

// RegisterFormat registers a format for a file extension.
// If a format or alias already uses the extension, it panics to prevent accidental overrides.
func RegisterFormat(ext string, f Format) {
	ext = NormalizeExt(ext)

	formatMu.Lock()
	defer formatMu.Unlock()
	if formats.Contains(ext) {
		panic(fmt.Sprintf("format registry: extension %q already registered", ext))
	}
	formats.Set(ext, f)
}

// RegisterFormatAlias makes each alias extension resolve to the format of ext.
func RegisterFormatAlias(ext string, aliases ...string) error {
	formatMu.Lock()
	defer formatMu.Unlock()
	return formats.AddAlias(NormalizeExt(ext), normalizeAll(aliases)...)
}

// UnregisterFormatAlias removes alias extensions.
func UnregisterFormatAlias(aliases ...string) error {
	formatMu.Lock()
	defer formatMu.Unlock()
	return formats.RemoveAlias(normalizeAll(aliases)...)
}

// LookupFormat returns the format registered for ext or one of its aliases.
func LookupFormat(ext string) (Format, error) {
	formatMu.RLock()
	defer formatMu.RUnlock()

	f, ok := formats.Get(NormalizeExt(ext))
	if !ok {
		return Format{}, errors.NewNotFoundError("format", ext)
	}
	return f, nil
}

// Formats lists registered formats in registration order.
func Formats() []Entry {
	formatMu.RLock()
	defer formatMu.RUnlock()
	return entries(formats, func(f Format) string { return f.Name })
}

// NormalizeExt lowercases ext and makes sure it starts with a dot.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func normalizeAll(exts []string) []string {
	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = NormalizeExt(ext)
	}
	return out
}

func entries[V any](m *aliasmap.Map[string, V], name func(V) string) []Entry {
	origins := m.OriginKeys()
	out := make([]Entry, 0, len(origins))
	for _, ext := range origins {
		v, _ := m.Get(ext)
		out = append(out, Entry{Ext: ext, Name: name(v), Aliases: m.AliasesOf(ext)})
	}
	return out
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func decodeYAML(r io.Reader, v any) error {
	return yaml.NewDecoder(r).Decode(v)
}
