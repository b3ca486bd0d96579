package hashdemo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/benx3/double-hash-demo/hashtable"
	"github.com/benx3/double-hash-demo/model"
	"github.com/benx3/double-hash-demo/persistence"
)

// Store is the session facade over one hash table.
//
// The table itself assumes exclusive single-threaded access; Store supplies
// the mutual exclusion, structured logging, and optional snapshot
// persistence around it. Each Store owns its table outright; there is no
// shared or package-level instance.
type Store struct {
	mu       sync.Mutex
	table    *hashtable.Table
	manager  *persistence.Manager
	logger   *Logger
	autoSave bool
}

// New creates a Store with an empty table of the given capacity.
func New(capacity int, optFns ...Option) (*Store, error) {
	tbl, err := hashtable.New(capacity)
	if err != nil {
		return nil, err
	}
	return newStore(tbl, optFns)
}

// Open loads the table from an existing snapshot, or creates an empty one
// with the given capacity when no snapshot exists yet. It requires a blob
// store to be configured.
func Open(ctx context.Context, capacity int, optFns ...Option) (*Store, error) {
	s, err := New(capacity, optFns...)
	if err != nil {
		return nil, err
	}
	if s.manager == nil {
		return nil, ErrNoPersistence
	}

	tbl, err := s.manager.Load(ctx)
	switch {
	case err == nil:
		s.table = tbl
		s.logger.Info("loaded snapshot",
			"capacity", tbl.Capacity(),
			"entries", tbl.Len())
	case errors.Is(err, persistence.ErrSnapshotNotFound):
		s.logger.Info("no snapshot found, starting empty", "capacity", capacity)
	default:
		return nil, err
	}

	return s, nil
}

func newStore(tbl *hashtable.Table, optFns []Option) (*Store, error) {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store{
		table:    tbl,
		logger:   opts.logger,
		autoSave: opts.autoSave,
	}

	if opts.blobStore != nil {
		m, err := persistence.NewManager(persistence.Options{
			Store:       opts.blobStore,
			Name:        opts.snapshotName,
			Codec:       opts.codec,
			Compression: opts.compression,
		})
		if err != nil {
			return nil, err
		}
		s.manager = m
	}

	return s, nil
}

// Insert adds a product, keyed by its code.
//
// On success the result carries the landing position and the full probe
// walk. With auto-save enabled the new state is persisted before returning;
// a failed save returns an error even though the in-memory insert took
// effect.
func (s *Store) Insert(ctx context.Context, p model.Product) (*hashtable.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithOp("insert").WithKey(p.Code)

	res, err := s.table.Insert(p)
	if err != nil {
		log.Warn("insert failed", "error", err)
		return nil, err
	}

	log.Info("inserted",
		"position", res.Position,
		"probes", len(res.ProbeSequence),
		"collisions", len(res.ProbeSequence)-1)

	if err := s.maybeSave(ctx); err != nil {
		return nil, fmt.Errorf("insert succeeded but snapshot save failed: %w", err)
	}
	return res, nil
}

// Search looks up a live product by key.
func (s *Store) Search(key string) (*hashtable.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithOp("search").WithKey(key)

	res, err := s.table.Search(key)
	if err != nil {
		log.Debug("search missed", "error", err)
		return nil, err
	}

	log.Debug("found",
		"position", res.Position,
		"probes", len(res.ProbeSequence))
	return res, nil
}

// Delete tombstones the live entry with the given key.
func (s *Store) Delete(ctx context.Context, key string) (*hashtable.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithOp("delete").WithKey(key)

	res, err := s.table.Delete(key)
	if err != nil {
		log.Warn("delete failed", "error", err)
		return nil, err
	}

	log.Info("deleted",
		"position", res.Position,
		"probes", len(res.ProbeSequence))

	if err := s.maybeSave(ctx); err != nil {
		return nil, fmt.Errorf("delete succeeded but snapshot save failed: %w", err)
	}
	return res, nil
}

// Entries returns all live products in ascending slot order.
func (s *Store) Entries() []hashtable.PositionedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Entries()
}

// SlotStates returns the state of every slot in index order.
func (s *Store) SlotStates() []hashtable.SlotState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.SlotStates()
}

// Stats returns occupancy and collision statistics.
func (s *Store) Stats() hashtable.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Stats()
}

// CollisionLog returns a copy of the collision log, most recent last.
func (s *Store) CollisionLog() []hashtable.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.CollisionLog()
}

// Capacity returns the table's fixed capacity.
func (s *Store) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Capacity()
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Len()
}

// Save persists a snapshot now, regardless of the auto-save setting.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// maybeSave persists after a mutation when auto-save is on.
// Caller must hold s.mu.
func (s *Store) maybeSave(ctx context.Context) error {
	if !s.autoSave || s.manager == nil {
		return nil
	}
	return s.save(ctx)
}

func (s *Store) save(ctx context.Context) error {
	if s.manager == nil {
		return ErrNoPersistence
	}
	if err := s.manager.Save(ctx, s.table); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
		return err
	}
	s.logger.Debug("snapshot saved", "entries", s.table.Len())
	return nil
}
