package hashdemo

import (
	"errors"

	"github.com/benx3/double-hash-demo/hashtable"
	"github.com/benx3/double-hash-demo/persistence"
)

// ErrNoPersistence is returned by Save when no blob store was configured.
var ErrNoPersistence = errors.New("no blob store configured")

// Re-exported sentinels so callers rarely need to import the subpackages.
var (
	ErrTableFull        = hashtable.ErrTableFull
	ErrSnapshotNotFound = persistence.ErrSnapshotNotFound
)

// IsNotFound reports whether err means the key has no live entry.
func IsNotFound(err error) bool {
	return hashtable.IsNotFound(err)
}

// IsDuplicateKey reports whether err means the key is already present.
func IsDuplicateKey(err error) bool {
	var dup *hashtable.DuplicateKeyError
	return errors.As(err, &dup)
}
