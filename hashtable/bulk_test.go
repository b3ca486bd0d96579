package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benx3/double-hash-demo/testutil"
)

func TestBulkFill(t *testing.T) {
	const capacity = 97

	rng := testutil.NewRNG(42)
	products := rng.Products(capacity - 7)

	tbl, err := New(capacity)
	require.NoError(t, err)

	positions := make(map[string]int, len(products))
	for _, p := range products {
		res, err := tbl.Insert(p)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(res.ProbeSequence), capacity)
		positions[p.Code] = res.Position
	}
	require.Equal(t, len(products), tbl.Len())

	// Every inserted key is found at its landing position, and the search
	// walk never exceeds the insert walk.
	for _, p := range products {
		res, err := tbl.Search(p.Code)
		require.NoError(t, err)
		assert.Equal(t, positions[p.Code], res.Position)
		assert.Equal(t, p, res.Product)
	}

	stats := tbl.Stats()
	assert.Equal(t, len(products), stats.Occupied)
	assert.Equal(t, 0, stats.Tombstoned)
	assert.Equal(t, capacity-len(products), stats.Empty)

	// Every collision record's count matches its probe walk.
	for _, rec := range tbl.CollisionLog() {
		assert.Equal(t, len(rec.ProbeSequence)-1, rec.CollisionCount)
		assert.Len(t, rec.Calculation.Steps, len(rec.ProbeSequence))
	}
}

func TestBulkDeleteAndReinsert(t *testing.T) {
	const capacity = 53

	rng := testutil.NewRNG(7)
	products := rng.Products(40)

	tbl, err := New(capacity)
	require.NoError(t, err)
	for _, p := range products {
		_, err := tbl.Insert(p)
		require.NoError(t, err)
	}

	// Delete every other product, then verify the rest stay reachable even
	// when their probe paths cross tombstones.
	for i := 0; i < len(products); i += 2 {
		_, err := tbl.Delete(products[i].Code)
		require.NoError(t, err)
	}
	for i, p := range products {
		_, err := tbl.Search(p.Code)
		if i%2 == 0 {
			assert.True(t, IsNotFound(err), "deleted key %s still found", p.Code)
		} else {
			assert.NoError(t, err, "live key %s lost", p.Code)
		}
	}

	// Deleted keys can come back; their tombstoned slots are reusable.
	for i := 0; i < len(products); i += 2 {
		_, err := tbl.Insert(products[i])
		require.NoError(t, err)
	}
	require.Equal(t, len(products), tbl.Len())
}
