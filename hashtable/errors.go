package hashtable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New for non-positive capacities.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrTableFull is returned by Insert when the live entry count has
	// reached capacity. No probing is attempted in that case.
	ErrTableFull = errors.New("hash table is full")
)

// DuplicateKeyError is returned by Insert when a live entry with the same
// key already occupies a slot on the probe path.
type DuplicateKeyError struct {
	Key           string
	ProbeSequence []int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// NotFoundError is returned by Search and Delete when no live entry with the
// given key exists. ProbeSequence holds the walk that established the miss.
type NotFoundError struct {
	Key           string
	ProbeSequence []int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

// InsertFailedError is returned when probing exhausts all capacity attempts
// without landing. With the full-table check in place this cannot happen; if
// it does, a table invariant has been violated.
type InsertFailedError struct {
	Key           string
	ProbeSequence []int
}

func (e *InsertFailedError) Error() string {
	return fmt.Sprintf("insert of key %q exhausted all probe attempts", e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
