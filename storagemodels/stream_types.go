package storagemodels

import (
	"time"
)

// StreamResult represents a single item in a stream with metadata
type StreamResult[V any] struct {
	Key   string     // The key as seen by callers, origin or alias
	Value V          // The resolved value
	Alias bool       // Whether Key is an alias
	Meta  StreamMeta // Metadata about this item
}

// StreamMeta contains metadata about a streamed item
type StreamMeta struct {
	Index     int64     // Item index in stream (0-based)
	Total     int       // Items in the snapshot being streamed
	Timestamp time.Time // When item was emitted
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize      int                  // Channel buffer size (default: 100)
	OriginsOnly     bool                 // Skip alias keys
	ProgressHandler func(StreamProgress) // Optional progress callback
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	ItemsProcessed int64     // Total items processed
	StartTime      time.Time // When streaming started
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithOriginsOnly streams origin keys only
func WithOriginsOnly() StreamOption {
	return func(opts *StreamOptions) {
		opts.OriginsOnly = true
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		opts.ProgressHandler = handler
	}
}
