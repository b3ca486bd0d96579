package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) BlobStore{
		"Memory": func(t *testing.T) BlobStore {
			return NewMemoryStore()
		},
		"Local": func(t *testing.T) BlobStore {
			s, err := NewLocalStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("PutOpenRoundTrip", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Put(ctx, "snapshot.bin", []byte("hello")))

				blob, err := s.Open(ctx, "snapshot.bin")
				require.NoError(t, err)
				defer blob.Close()

				assert.Equal(t, int64(5), blob.Size())
				data, err := io.ReadAll(blob)
				require.NoError(t, err)
				assert.Equal(t, []byte("hello"), data)
			})

			t.Run("PutReplaces", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Put(ctx, "a", []byte("one")))
				require.NoError(t, s.Put(ctx, "a", []byte("two")))

				blob, err := s.Open(ctx, "a")
				require.NoError(t, err)
				defer blob.Close()

				data, err := io.ReadAll(blob)
				require.NoError(t, err)
				assert.Equal(t, []byte("two"), data)
			})

			t.Run("OpenMissing", func(t *testing.T) {
				s := newStore(t)
				_, err := s.Open(ctx, "nope")
				assert.True(t, errors.Is(err, ErrNotFound))
			})

			t.Run("DeleteIsIdempotent", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Put(ctx, "a", []byte("x")))
				require.NoError(t, s.Delete(ctx, "a"))
				require.NoError(t, s.Delete(ctx, "a"))

				_, err := s.Open(ctx, "a")
				assert.True(t, errors.Is(err, ErrNotFound))
			})

			t.Run("List", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Put(ctx, "snap-1", []byte("x")))
				require.NoError(t, s.Put(ctx, "snap-2", []byte("y")))
				require.NoError(t, s.Put(ctx, "other", []byte("z")))

				names, err := s.List(ctx, "snap-")
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"snap-1", "snap-2"}, names)
			})
		})
	}
}
