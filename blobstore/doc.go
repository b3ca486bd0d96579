// Package blobstore abstracts where snapshot files live.
//
// The persistence layer reads and writes whole snapshot blobs through the
// BlobStore interface; implementations cover the local filesystem, an
// in-memory store for tests, and S3-compatible object storage (see the
// minio subpackage).
package blobstore
