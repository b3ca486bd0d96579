package persistence

import (
	"errors"
	"fmt"
	"hash/crc32"
)

// Snapshot integrity uses CRC32 (IEEE polynomial): fast, hardware
// accelerated, and good at catching storage corruption. It is not
// cryptographic; it detects accidents, not tampering.

// Checksum returns the CRC32 checksum of data.
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch reports whether err is a checksum mismatch.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
