package persistence

import "errors"

const (
	// MagicNumber identifies snapshot files (ASCII: "DHT1").
	MagicNumber = 0x44485431
	// Version is the current file format version.
	Version = 1
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported snapshot version")
	ErrUnknownCodec       = errors.New("unknown codec in snapshot header")
	ErrUnknownCompression = errors.New("unknown compression in snapshot header")
)
