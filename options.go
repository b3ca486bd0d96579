package hashdemo

import (
	"github.com/benx3/double-hash-demo/blobstore"
	"github.com/benx3/double-hash-demo/codec"
	"github.com/benx3/double-hash-demo/persistence"
)

type options struct {
	logger       *Logger
	codec        codec.Codec
	compression  persistence.Compression
	blobStore    blobstore.BlobStore
	snapshotName string
	autoSave     bool
}

// Option configures Store construction.
type Option func(*options)

// WithLogger configures the structured logger. Pass nil to keep the
// default, which discards all output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used. Existing snapshot files are
// self-describing and load with whatever codec their header names.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures snapshot payload compression.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBlobStore configures where snapshots are stored and enables
// persistence. Without a blob store the Store is purely in-memory.
func WithBlobStore(bs blobstore.BlobStore) Option {
	return func(o *options) {
		o.blobStore = bs
	}
}

// WithSnapshotName overrides the snapshot blob name.
func WithSnapshotName(name string) Option {
	return func(o *options) {
		o.snapshotName = name
	}
}

// WithAutoSave persists a snapshot after every successful mutation.
// It has no effect without a blob store.
func WithAutoSave(enabled bool) Option {
	return func(o *options) {
		o.autoSave = enabled
	}
}
