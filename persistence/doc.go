// Package persistence owns the on-disk encoding of table snapshots.
//
// A snapshot file is self-describing: a fixed header records the codec and
// compression used to encode the payload, plus a CRC32 of the compressed
// bytes. Loading verifies the frame before any decoding happens, so a
// corrupt or truncated file is rejected with a useful error instead of
// garbage state.
//
// The Manager reads and writes snapshots through a blobstore.BlobStore, so
// the same code persists to the local filesystem, memory (tests), or
// S3-compatible object storage.
package persistence
