/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"github.com/suparena/aliasstore/aliasmap"
	"github.com/suparena/aliasstore/errors"
)

// NewReaderFunc wraps a compressed stream with a decompressing reader.
type NewReaderFunc func(r io.Reader) (io.ReadCloser, error)

// Codec describes the compression used for a file extension.
type Codec struct {
	Name      string
	NewReader NewReaderFunc
}

var (
	codecs  = aliasmap.New[string, Codec]()
	codecMu sync.RWMutex
)

func init() {
	RegisterCodec(".gz", Codec{Name: "gzip", NewReader: newGzipReader})
	RegisterCodec(".zst", Codec{Name: "zstd", NewReader: newZstdReader})
	RegisterCodec(".xz", Codec{Name: "xz", NewReader: newXzReader})
	RegisterCodec(".lz4", Codec{Name: "lz4", NewReader: newLz4Reader})

	if err := RegisterCodecAlias(".gz", ".gzip"); err != nil {
		panic(err)
	}
	if err := RegisterCodecAlias(".zst", ".zstd"); err != nil {
		panic(err)
	}
}

// RegisterCodec registers a codec for a file extension.
// If a codec or alias already uses the extension, it panics to prevent accidental overrides.
func RegisterCodec(ext string, c Codec) {
	ext = NormalizeExt(ext)

	codecMu.Lock()
	defer codecMu.Unlock()
	if codecs.Contains(ext) {
		panic(fmt.Sprintf("codec registry: extension %q already registered", ext))
	}
	codecs.Set(ext, c)
}

// RegisterCodecAlias makes each alias extension resolve to the codec of ext.
func RegisterCodecAlias(ext string, aliases ...string) error {
	codecMu.Lock()
	defer codecMu.Unlock()
	return codecs.AddAlias(NormalizeExt(ext), normalizeAll(aliases)...)
}

// LookupCodec returns the codec registered for ext or one of its aliases.
func LookupCodec(ext string) (Codec, error) {
	codecMu.RLock()
	defer codecMu.RUnlock()

	c, ok := codecs.Get(NormalizeExt(ext))
	if !ok {
		return Codec{}, errors.NewNotFoundError("codec", ext)
	}
	return c, nil
}

// Codecs lists registered codecs in registration order.
func Codecs() []Entry {
	codecMu.RLock()
	defer codecMu.RUnlock()
	return entries(codecs, func(c Codec) string { return c.Name })
}

// SplitExt returns the document format extension of path and, when the file
// carries a registered compression suffix, the codec extension.
// "seed.yml.zst" gives (".yml", ".zst"); "seed.json" gives (".json", "").
func SplitExt(path string) (format, codec string) {
	ext := filepath.Ext(path)

	codecMu.RLock()
	compressed := codecs.Contains(NormalizeExt(ext))
	codecMu.RUnlock()

	if !compressed {
		return NormalizeExt(ext), ""
	}
	return NormalizeExt(filepath.Ext(strings.TrimSuffix(path, ext))), NormalizeExt(ext)
}

func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return gz, nil
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

func newXzReader(r io.Reader) (io.ReadCloser, error) {
	conf := xz.ReaderConfig{}
	if err := conf.Verify(); err != nil {
		return nil, err
	}
	x, err := conf.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(x), nil
}

func newLz4Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
