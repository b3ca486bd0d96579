package persistence

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/benx3/double-hash-demo/blobstore"
	"github.com/benx3/double-hash-demo/codec"
	"github.com/benx3/double-hash-demo/hashtable"
)

// ErrSnapshotNotFound is returned by Load when no snapshot blob exists.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DefaultSnapshotName is the blob name used when none is configured.
const DefaultSnapshotName = "catalog.snapshot"

// Options configures a Manager.
type Options struct {
	// Store is where snapshot blobs live. Required.
	Store blobstore.BlobStore

	// Name is the blob name for the snapshot. Defaults to DefaultSnapshotName.
	Name string

	// Codec serializes the snapshot payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression for the payload. Defaults to CompressionZstd.
	Compression Compression
}

// Manager persists table snapshots through a blob store.
//
// The manager consumes only the table's Snapshot export contract; the table
// knows nothing about files, codecs, or compression.
type Manager struct {
	store       blobstore.BlobStore
	name        string
	codec       codec.Codec
	compression Compression
}

// NewManager creates a Manager with the given options.
func NewManager(opts Options) (*Manager, error) {
	if opts.Store == nil {
		return nil, errors.New("persistence: blob store is required")
	}
	if opts.Name == "" {
		opts.Name = DefaultSnapshotName
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Compression == "" {
		opts.Compression = CompressionZstd
	}
	if !opts.Compression.valid() {
		return nil, fmt.Errorf("persistence: %w: %q", ErrUnknownCompression, opts.Compression)
	}

	return &Manager{
		store:       opts.Store,
		name:        opts.Name,
		codec:       opts.Codec,
		compression: opts.Compression,
	}, nil
}

// Save exports the table and writes its snapshot blob atomically.
func (m *Manager) Save(ctx context.Context, tbl *hashtable.Table) error {
	payload, err := m.codec.Marshal(tbl.Snapshot())
	if err != nil {
		return fmt.Errorf("persistence: encode snapshot: %w", err)
	}

	compressed, err := compress(m.compression, payload)
	if err != nil {
		return fmt.Errorf("persistence: compress snapshot: %w", err)
	}

	frame, err := encodeFrame(m.codec.Name(), m.compression, compressed)
	if err != nil {
		return err
	}

	if err := m.store.Put(ctx, m.name, frame); err != nil {
		return fmt.Errorf("persistence: write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot blob and reconstructs the table from it.
//
// The header is verified (magic, version, checksum) and the codec and
// compression are selected by the names recorded in it. Structural
// validation of the snapshot itself (capacity vs slot count, live count)
// happens during reconstruction.
func (m *Manager) Load(ctx context.Context) (*hashtable.Table, error) {
	blob, err := m.store.Open(ctx, m.name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, m.name)
		}
		return nil, fmt.Errorf("persistence: open snapshot: %w", err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		return nil, fmt.Errorf("persistence: read snapshot: %w", err)
	}

	codecName, compression, compressed, err := decodeFrame(data)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	payload, err := decompress(compression, compressed)
	if err != nil {
		return nil, fmt.Errorf("persistence: decompress snapshot: %w", err)
	}

	var snap hashtable.Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("persistence: decode snapshot: %w", err)
	}

	tbl, err := hashtable.FromSnapshot(&snap)
	if err != nil {
		return nil, fmt.Errorf("persistence: invalid snapshot: %w", err)
	}
	return tbl, nil
}

// Exists reports whether a snapshot blob is present.
func (m *Manager) Exists(ctx context.Context) (bool, error) {
	blob, err := m.store.Open(ctx, m.name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	_ = blob.Close()
	return true, nil
}

// Delete removes the snapshot blob. Deleting a missing snapshot is not an
// error.
func (m *Manager) Delete(ctx context.Context) error {
	return m.store.Delete(ctx, m.name)
}

// Frame layout, little endian:
//
//	magic    uint32
//	version  uint32
//	codec    uint16 length + bytes
//	compress uint16 length + bytes
//	length   uint64 (compressed payload)
//	checksum uint32 (CRC32 of compressed payload)
//	payload  []byte

func encodeFrame(codecName string, compression Compression, payload []byte) ([]byte, error) {
	var buf bytes.Buffer

	writeUint32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}
	writeString := func(s string) error {
		if len(s) > math.MaxUint16 {
			return fmt.Errorf("persistence: header string too long: %d bytes", len(s))
		}
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(len(s)))
		buf.Write(b[:])
		buf.WriteString(s)
		return nil
	}

	writeUint32(MagicNumber)
	writeUint32(Version)
	if err := writeString(codecName); err != nil {
		return nil, err
	}
	if err := writeString(string(compression)); err != nil {
		return nil, err
	}

	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(payload)))
	buf.Write(b[:])
	writeUint32(Checksum(payload))
	buf.Write(payload)

	return buf.Bytes(), nil
}

func decodeFrame(data []byte) (codecName string, compression Compression, payload []byte, err error) {
	r := bytes.NewReader(data)

	readUint32 := func() (uint32, error) {
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(b[:]), nil
	}
	readString := func() (string, error) {
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", err
		}
		s := make([]byte, binary.LittleEndian.Uint16(b[:]))
		if _, err := io.ReadFull(r, s); err != nil {
			return "", err
		}
		return string(s), nil
	}

	truncated := func(err error) error {
		return fmt.Errorf("persistence: truncated snapshot header: %w", err)
	}

	magic, err := readUint32()
	if err != nil {
		return "", "", nil, truncated(err)
	}
	if magic != MagicNumber {
		return "", "", nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}

	version, err := readUint32()
	if err != nil {
		return "", "", nil, truncated(err)
	}
	if version != Version {
		return "", "", nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	if codecName, err = readString(); err != nil {
		return "", "", nil, truncated(err)
	}
	name, err := readString()
	if err != nil {
		return "", "", nil, truncated(err)
	}
	compression = Compression(name)
	if !compression.valid() {
		return "", "", nil, fmt.Errorf("%w: %q", ErrUnknownCompression, compression)
	}

	var lb [8]byte
	if _, err = io.ReadFull(r, lb[:]); err != nil {
		return "", "", nil, truncated(err)
	}
	length := binary.LittleEndian.Uint64(lb[:])

	sum, err := readUint32()
	if err != nil {
		return "", "", nil, truncated(err)
	}

	if uint64(r.Len()) != length {
		return "", "", nil, fmt.Errorf("persistence: payload length %d does not match header %d", r.Len(), length)
	}
	payload = make([]byte, length)
	if _, err = io.ReadFull(r, payload); err != nil {
		return "", "", nil, truncated(err)
	}

	if actual := Checksum(payload); actual != sum {
		return "", "", nil, &ChecksumMismatchError{Expected: sum, Actual: actual}
	}

	return codecName, compression, payload, nil
}
